package posts

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestFromDocuments_OrdersByDateDescending(t *testing.T) {
	svc := NewService(nil)

	docs := []*interfaces.Document{
		testDocument("2022-03-26-wealth.md", "Wealth", "2022-03-26"),
		testDocument("2022-08-28-silent-majority.md", "The Silent Majority", "2022-08-28"),
		testDocument("2022-04-23-stray-thoughts.md", "Stray Thoughts", "2022-04-23"),
	}

	collection, err := svc.FromDocuments(docs)
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}

	got := make([]string, 0, len(collection.Posts))
	for _, post := range collection.Posts {
		got = append(got, post.Slug)
	}
	want := []string{"silent-majority", "stray-thoughts", "wealth"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestFromDocuments_SameInstantFallsBackToTitle(t *testing.T) {
	svc := NewService(nil)

	docs := []*interfaces.Document{
		testDocument("2022-04-23-zebra.md", "Zebra", "2022-04-23"),
		testDocument("2022-04-23-aardvark.md", "Aardvark", "2022-04-23"),
	}

	collection, err := svc.FromDocuments(docs)
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	if collection.Posts[0].Title != "Aardvark" || collection.Posts[1].Title != "Zebra" {
		t.Fatalf("expected title tiebreak, got %s then %s", collection.Posts[0].Title, collection.Posts[1].Title)
	}
}

func TestFromDocuments_SlugConflict(t *testing.T) {
	svc := NewService(nil)

	first := testDocument("a/2022-04-23-duplicate.md", "First", "2022-04-23")
	second := testDocument("b/2022-08-28-duplicate.md", "Second", "2022-08-28")

	_, err := svc.FromDocuments([]*interfaces.Document{first, second})
	if !errors.Is(err, ErrSlugConflict) {
		t.Fatalf("expected ErrSlugConflict, got %v", err)
	}
}

func TestFromDocuments_BuildsTerms(t *testing.T) {
	svc := NewService(nil)

	one := testDocument("2022-08-28-one.md", "One", "2022-08-28")
	one.FrontMatter.Categories = []string{"Politics"}
	one.FrontMatter.Tags = []string{"history", "essays"}
	two := testDocument("2022-04-23-two.md", "Two", "2022-04-23")
	two.FrontMatter.Categories = []string{"politics"}
	two.FrontMatter.Tags = []string{"History"}

	collection, err := svc.FromDocuments([]*interfaces.Document{one, two})
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}

	if len(collection.Categories) != 1 {
		t.Fatalf("expected one category term, got %d", len(collection.Categories))
	}
	category := collection.Categories[0]
	if category.Slug != "politics" {
		t.Fatalf("expected normalized category slug, got %q", category.Slug)
	}
	if len(category.Posts) != 2 {
		t.Fatalf("expected both posts filed under politics, got %d", len(category.Posts))
	}
	if category.Kind != KindCategory {
		t.Fatalf("unexpected term kind %q", category.Kind)
	}

	if len(collection.Tags) != 2 {
		t.Fatalf("expected two tag terms, got %d", len(collection.Tags))
	}
	history := collection.Tag("history")
	if history == nil || len(history.Posts) != 2 {
		t.Fatalf("expected history tag with two posts, got %#v", history)
	}
	// Term posts keep collection order: newest first.
	if history.Posts[0].Slug != "one" {
		t.Fatalf("expected newest post first within the term, got %s", history.Posts[0].Slug)
	}
}

func TestFromDocuments_DeterministicIdentity(t *testing.T) {
	svc := NewService(nil)

	doc := testDocument("2022-04-23-stable.md", "Stable", "2022-04-23")
	first, err := svc.FromDocuments([]*interfaces.Document{doc})
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	second, err := svc.FromDocuments([]*interfaces.Document{testDocument("2022-04-23-stable.md", "Stable", "2022-04-23")})
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	if first.Posts[0].ID != second.Posts[0].ID {
		t.Fatalf("expected stable identity for the same source path")
	}
}

func TestCollectionLookups(t *testing.T) {
	svc := NewService(nil)

	doc := testDocument("2022-04-23-lookup.md", "Lookup", "2022-04-23")
	doc.FrontMatter.Categories = []string{"economics"}

	collection, err := svc.FromDocuments([]*interfaces.Document{doc})
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}

	if collection.BySlug("lookup") == nil {
		t.Fatalf("expected BySlug to find the post")
	}
	if collection.BySlug("missing") != nil {
		t.Fatalf("expected BySlug miss to return nil")
	}
	if collection.Category("economics") == nil {
		t.Fatalf("expected Category to find the term")
	}
	if collection.Tag("economics") != nil {
		t.Fatalf("expected Tag miss to return nil")
	}
}

func testDocument(path, title, date string) *interfaces.Document {
	published, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	slug := slugFromPath(path)
	return &interfaces.Document{
		FilePath: path,
		Slug:     slug,
		FrontMatter: interfaces.FrontMatter{
			Title: title,
			Date:  published,
		},
		Body:         []byte("body"),
		BodyHTML:     []byte("<p>body</p>"),
		LastModified: published,
		Checksum:     []byte{0x01},
	}
}

func slugFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".md")
	if len(base) > 11 && base[4] == '-' && base[7] == '-' && base[10] == '-' {
		return base[11:]
	}
	return base
}
