package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/pkg/storage"
)

func TestBuildGeneratesPagesAndArtifacts(t *testing.T) {
	env := newBuildEnv(t)

	result, err := env.service.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Index, two posts, one category, one tag.
	if result.PagesBuilt != 5 {
		t.Fatalf("expected 5 pages built, got %d", result.PagesBuilt)
	}
	if result.PagesSkipped != 0 {
		t.Fatalf("expected no skips on first build, got %d", result.PagesSkipped)
	}
	if result.PostCount != 2 {
		t.Fatalf("expected 2 posts, got %d", result.PostCount)
	}
	if result.FeedsBuilt != 2 {
		t.Fatalf("expected RSS and Atom feeds, got %d", result.FeedsBuilt)
	}

	for _, path := range []string{
		"dist/index.html",
		"dist/silent-majority/index.html",
		"dist/stray-thoughts/index.html",
		"dist/category/politics/index.html",
		"dist/tag/history/index.html",
		"dist/feed.xml",
		"dist/feed.atom.xml",
		"dist/sitemap.xml",
		"dist/robots.txt",
		"dist/.generator-manifest.json",
	} {
		if _, ok := env.store.File(path); !ok {
			t.Fatalf("expected artifact %s, have %v", path, env.store.Paths())
		}
	}

	html, _ := env.store.File("dist/silent-majority/index.html")
	if !strings.Contains(string(html), "/silent-majority/") {
		t.Fatalf("unexpected post page content: %s", html)
	}
}

func TestBuildIncrementalSkipsUnchangedPages(t *testing.T) {
	env := newBuildEnv(t)

	if _, err := env.service.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("first Build: %v", err)
	}

	second, err := env.service.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	if second.PagesBuilt != 0 {
		t.Fatalf("expected all pages skipped, built %d", second.PagesBuilt)
	}
	if second.PagesSkipped != 5 {
		t.Fatalf("expected 5 pages skipped, got %d", second.PagesSkipped)
	}

	forced, err := env.service.Build(context.Background(), BuildOptions{Force: true})
	if err != nil {
		t.Fatalf("forced Build: %v", err)
	}
	if forced.PagesBuilt != 5 {
		t.Fatalf("expected force to rebuild everything, built %d", forced.PagesBuilt)
	}

	// Sitemap still lists every page even when nothing was re-rendered.
	sitemap, _ := env.store.File("dist/sitemap.xml")
	for _, route := range []string{"/silent-majority/", "/stray-thoughts/", "/category/politics/", "/tag/history/"} {
		if !strings.Contains(string(sitemap), route) {
			t.Fatalf("expected sitemap to list %s, got %s", route, sitemap)
		}
	}
}

func TestBuildContentChangeInvalidatesPage(t *testing.T) {
	env := newBuildEnv(t)

	if _, err := env.service.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("first Build: %v", err)
	}

	env.documents.docs[0].Checksum = []byte{0xde, 0xad}
	result, err := env.service.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	// The edited post plus every listing that embeds it: index, category, tag.
	if result.PagesBuilt != 4 {
		t.Fatalf("expected 4 pages rebuilt after edit, got %d", result.PagesBuilt)
	}
	if result.PagesSkipped != 1 {
		t.Fatalf("expected the untouched post skipped, got %d", result.PagesSkipped)
	}
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	env := newBuildEnv(t)

	result, err := env.service.Build(context.Background(), BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !result.DryRun {
		t.Fatalf("expected dry run result")
	}
	if result.PagesBuilt != 5 {
		t.Fatalf("expected pages rendered in dry run, got %d", result.PagesBuilt)
	}
	if paths := env.store.Paths(); len(paths) != 0 {
		t.Fatalf("expected no artifacts written, got %v", paths)
	}
}

func TestBuildRecordsHistory(t *testing.T) {
	env := newBuildEnv(t)
	recorder := &stubRecorder{}
	env.service.(*service).deps.History = recorder

	result, err := env.service.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(recorder.records) != 1 {
		t.Fatalf("expected one history record, got %d", len(recorder.records))
	}
	record := recorder.records[0]
	if record.ID != result.BuildID {
		t.Fatalf("expected record to carry the build id")
	}
	if !record.Succeeded {
		t.Fatalf("expected successful record, got failure %q", record.Failure)
	}
	if record.PagesBuilt != result.PagesBuilt {
		t.Fatalf("expected record pages %d, got %d", result.PagesBuilt, record.PagesBuilt)
	}
}

func TestBuildRendererFailureSurfacesPage(t *testing.T) {
	env := newBuildEnv(t)
	env.service.(*service).deps.Renderer = &stubRenderer{err: errors.New("boom")}

	result, err := env.service.Build(context.Background(), BuildOptions{})
	if err == nil {
		t.Fatalf("expected build error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected renderer error surfaced, got %v", err)
	}
	if result == nil || len(result.Errors) == 0 {
		t.Fatalf("expected errors collected on the result")
	}

	// Failed builds must not persist a manifest that would mask the failure.
	if _, ok := env.store.File("dist/.generator-manifest.json"); ok {
		t.Fatalf("expected no manifest after a failed build")
	}
}

func TestBuildWithoutRenderer(t *testing.T) {
	env := newBuildEnv(t)
	env.service.(*service).deps.Renderer = nil

	if _, err := env.service.Build(context.Background(), BuildOptions{}); !errors.Is(err, errRendererRequired) {
		t.Fatalf("expected errRendererRequired, got %v", err)
	}
}

func TestClean(t *testing.T) {
	env := newBuildEnv(t)

	if _, err := env.service.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := env.service.Clean(context.Background()); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if paths := env.store.Paths(); len(paths) != 0 {
		t.Fatalf("expected output removed, got %v", paths)
	}
}

func TestDisabledService(t *testing.T) {
	svc := NewDisabledService()

	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled from Build, got %v", err)
	}
	if err := svc.Clean(context.Background()); !errors.Is(err, ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled from Clean, got %v", err)
	}
}

type buildEnv struct {
	service   Service
	store     *storage.MemoryProvider
	documents *stubDocuments
}

func newBuildEnv(t *testing.T) *buildEnv {
	t.Helper()

	documents := &stubDocuments{docs: []*interfaces.Document{
		fixtureDoc("2022-08-28-silent-majority.md", "The Silent Majority", "2022-08-28", []string{"politics"}, []string{"history"}),
		fixtureDoc("2022-04-23-stray-thoughts.md", "Stray Thoughts", "2022-04-23", nil, []string{"history"}),
	}}

	store := storage.NewMemory()
	svc := NewService(Config{
		OutputDir:       "dist",
		BaseURL:         "https://example.com",
		SiteTitle:       "Example Blog",
		SiteDescription: "Articles about examples",
		Incremental:     true,
		CopyAssets:      true,
		GenerateSitemap: true,
		GenerateRobots:  true,
		GenerateFeeds:   true,
		Workers:         1,
	}, Dependencies{
		Documents: documents,
		Posts:     posts.NewService(nil),
		Renderer:  &stubRenderer{},
		Storage:   store,
	})

	return &buildEnv{service: svc, store: store, documents: documents}
}

func fixtureDoc(path, title, date string, categories, tags []string) *interfaces.Document {
	published, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	slug := strings.TrimSuffix(path, ".md")[11:]
	return &interfaces.Document{
		FilePath: path,
		Slug:     slug,
		FrontMatter: interfaces.FrontMatter{
			Title:      title,
			Date:       published,
			Categories: categories,
			Tags:       tags,
		},
		Body:         []byte("body"),
		BodyHTML:     []byte("<p>body</p>"),
		LastModified: published,
		Checksum:     []byte{0x01, 0x02},
	}
}

type stubDocuments struct {
	docs []*interfaces.Document
	err  error
}

func (s *stubDocuments) Load(_ context.Context, path string, _ interfaces.LoadOptions) (*interfaces.Document, error) {
	for _, doc := range s.docs {
		if doc.FilePath == path {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document %s not found", path)
}

func (s *stubDocuments) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.docs, nil
}

func (s *stubDocuments) Render(_ context.Context, markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return markdown, nil
}

func (s *stubDocuments) RenderDocument(_ context.Context, doc *interfaces.Document, _ interfaces.ParseOptions) ([]byte, error) {
	return doc.BodyHTML, nil
}

type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *stubRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	ctx, ok := data.(TemplateContext)
	if !ok {
		return "", fmt.Errorf("unexpected data type %T", data)
	}
	return fmt.Sprintf("<html><!-- %s --><body>%s</body></html>", name, ctx.Page.Route), nil
}

func (r *stubRenderer) RenderString(content string, _ any, _ ...io.Writer) (string, error) {
	return content, nil
}

type stubRecorder struct {
	records []BuildRecord
	err     error
}

func (s *stubRecorder) RecordBuild(_ context.Context, record BuildRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}
