package posts

import (
	"time"

	"github.com/google/uuid"
)

// Post is the canonical record for one published article.
type Post struct {
	ID           uuid.UUID      `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Author       string         `json:"author,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	PublishedAt  time.Time      `json:"published_at"`
	Categories   []string       `json:"categories,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Flags        []string       `json:"flags,omitempty"`
	Draft        bool           `json:"draft"`
	Body         []byte         `json:"-"`
	HTML         []byte         `json:"-"`
	SourcePath   string         `json:"source_path"`
	Checksum     []byte         `json:"-"`
	LastModified time.Time      `json:"last_modified"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// TermKind distinguishes the two taxonomy dimensions.
type TermKind string

const (
	KindCategory TermKind = "category"
	KindTag      TermKind = "tag"
)

// Term is one taxonomy entry (a category or a tag) with the posts filed
// under it, already in collection order.
type Term struct {
	ID    uuid.UUID `json:"id"`
	Kind  TermKind  `json:"kind"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Posts []*Post   `json:"-"`
}

// Collection is the fully ordered post set for one build. Posts are sorted
// by publish date descending; same-instant posts order by title then slug so
// repeated builds are byte-for-byte identical.
type Collection struct {
	Posts      []*Post `json:"posts"`
	Categories []*Term `json:"categories"`
	Tags       []*Term `json:"tags"`
}

// Category looks up a category term by slug.
func (c *Collection) Category(slug string) *Term {
	return findTerm(c.Categories, slug)
}

// Tag looks up a tag term by slug.
func (c *Collection) Tag(slug string) *Term {
	return findTerm(c.Tags, slug)
}

// BySlug looks up a post by slug.
func (c *Collection) BySlug(slug string) *Post {
	for _, post := range c.Posts {
		if post.Slug == slug {
			return post
		}
	}
	return nil
}

func findTerm(terms []*Term, slug string) *Term {
	for _, term := range terms {
		if term.Slug == slug {
			return term
		}
	}
	return nil
}
