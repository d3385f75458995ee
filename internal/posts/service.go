package posts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Service assembles loaded documents into an ordered Collection.
type Service struct {
	logger interfaces.Logger
}

// NewService constructs a post collection service.
func NewService(provider interfaces.LoggerProvider) *Service {
	return &Service{
		logger: logging.PostsLogger(provider),
	}
}

// FromDocuments converts parsed documents into posts, normalises slugs,
// rejects duplicates, and returns the collection in publish order.
func (s *Service) FromDocuments(docs []*interfaces.Document) (*Collection, error) {
	collection := &Collection{
		Posts: make([]*Post, 0, len(docs)),
	}

	seen := map[string]string{}
	for _, doc := range docs {
		if doc == nil {
			return nil, ErrNilDocument
		}
		post, err := s.fromDocument(doc)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[post.Slug]; ok {
			return nil, fmt.Errorf("%w: %q claimed by both %s and %s", ErrSlugConflict, post.Slug, previous, post.SourcePath)
		}
		seen[post.Slug] = post.SourcePath
		collection.Posts = append(collection.Posts, post)
	}

	SortPosts(collection.Posts)
	collection.Categories = buildTerms(KindCategory, collection.Posts, func(p *Post) []string { return p.Categories })
	collection.Tags = buildTerms(KindTag, collection.Posts, func(p *Post) []string { return p.Tags })

	s.logger.Debug("posts.collection.built",
		"posts", len(collection.Posts),
		"categories", len(collection.Categories),
		"tags", len(collection.Tags),
	)
	return collection, nil
}

func (s *Service) fromDocument(doc *interfaces.Document) (*Post, error) {
	raw := strings.TrimSpace(doc.Slug)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s", ErrSlugRequired, doc.FilePath)
	}
	normalized, err := NormalizeSlug(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrSlugInvalid, raw, doc.FilePath)
	}

	fm := doc.FrontMatter
	return &Post{
		ID:           identity.PostUUID(doc.FilePath),
		Slug:         normalized,
		Title:        fm.Title,
		Author:       fm.Author,
		Summary:      fm.Summary,
		PublishedAt:  fm.Date,
		Categories:   cleanTerms(fm.Categories),
		Tags:         cleanTerms(fm.Tags),
		Flags:        cleanTerms(fm.Flags),
		Draft:        fm.Draft,
		Body:         doc.Body,
		HTML:         doc.BodyHTML,
		SourcePath:   doc.FilePath,
		Checksum:     doc.Checksum,
		LastModified: doc.LastModified,
		Extra:        fm.Custom,
	}, nil
}

// SortPosts orders posts by publish date descending. Posts sharing an
// instant fall back to title, then slug, keeping the ordering total.
func SortPosts(list []*Post) {
	sort.SliceStable(list, func(i, j int) bool {
		left, right := list[i], list[j]
		if !left.PublishedAt.Equal(right.PublishedAt) {
			return left.PublishedAt.After(right.PublishedAt)
		}
		if left.Title != right.Title {
			return left.Title < right.Title
		}
		return left.Slug < right.Slug
	})
}

func buildTerms(kind TermKind, list []*Post, pick func(*Post) []string) []*Term {
	bySlug := map[string]*Term{}
	for _, post := range list {
		for _, name := range pick(post) {
			termSlug, err := NormalizeSlug(name)
			if err != nil || termSlug == "" {
				continue
			}
			term := bySlug[termSlug]
			if term == nil {
				term = &Term{
					ID:   identity.TermUUID(string(kind), termSlug),
					Kind: kind,
					Name: name,
					Slug: termSlug,
				}
				bySlug[termSlug] = term
			}
			term.Posts = append(term.Posts, post)
		}
	}

	terms := make([]*Term, 0, len(bySlug))
	for _, term := range bySlug {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Slug < terms[j].Slug
	})
	return terms
}

func cleanTerms(values []string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
