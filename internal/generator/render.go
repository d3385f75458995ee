package generator

import (
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/posts"
	gotheme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
)

// PageKind identifies which template family renders a page.
type PageKind string

const (
	KindPost     PageKind = "post"
	KindIndex    PageKind = "index"
	KindCategory PageKind = "category"
	KindTag      PageKind = "tag"
)

// PageData contains the resolved dependencies for a single output page.
type PageData struct {
	Kind     PageKind
	Route    string
	Template string
	Post     *posts.Post
	Term     *posts.Term
	Posts    []*posts.Post
	Metadata DependencyMetadata
}

// DependencyMetadata captures the change-detection inputs for one page.
type DependencyMetadata struct {
	Hash         string
	LastModified time.Time
}

// PageID derives the stable identifier used for manifest bookkeeping.
func (d *PageData) PageID() uuid.UUID {
	if d == nil {
		return uuid.Nil
	}
	if d.Post != nil {
		return d.Post.ID
	}
	if d.Term != nil {
		return d.Term.ID
	}
	return indexPageID
}

// TemplateContext captures the data contract passed to TemplateRenderer implementations.
type TemplateContext struct {
	Site    SiteMetadata
	Page    PageRenderingContext
	Build   BuildMetadata
	Theme   ThemeContext
	Helpers TemplateHelpers
}

// SiteMetadata exposes site-wide information required by templates.
type SiteMetadata struct {
	BaseURL     string
	Title       string
	Description string
	Author      string
	Metadata    map[string]any
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
	Options     BuildOptions
}

// PageRenderingContext exposes the page being rendered plus the collection
// for navigation (recent posts, category/tag indexes).
type PageRenderingContext struct {
	Kind       PageKind
	Route      string
	Post       *posts.Post
	Term       *posts.Term
	Posts      []*posts.Post
	Collection *posts.Collection
	Metadata   DependencyMetadata
}

// ThemeContext surfaces go-theme selection data to templates.
type ThemeContext struct {
	Name      string
	Variant   string
	Tokens    map[string]string
	CSSVars   map[string]string
	Partials  map[string]string
	AssetURL  func(string) string
	Template  func(string, string) string
	Selection *gotheme.Selection
}

func buildThemeContext(selection *gotheme.Selection, cfg ThemeConfig) ThemeContext {
	empty := ThemeContext{
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
		AssetURL: func(string) string { return "" },
		Template: func(_ string, fallback string) string { return fallback },
	}
	if selection == nil {
		return empty
	}

	return ThemeContext{
		Name:      selection.Theme,
		Variant:   selection.Variant,
		Tokens:    selection.Tokens(),
		CSSVars:   selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials:  selection.Partials(nil),
		AssetURL:  func(key string) string { url, _ := selection.Asset(key); return url },
		Template:  selection.Template,
		Selection: selection,
	}
}

// TemplateHelpers exposes convenience helpers for template authors.
type TemplateHelpers struct {
	baseURL string
}

func newTemplateHelpers(baseURL string) TemplateHelpers {
	return TemplateHelpers{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured site base URL.
func (h TemplateHelpers) BaseURL() string {
	return h.baseURL
}

// WithBaseURL prefixes the provided path with the configured base URL.
func (h TemplateHelpers) WithBaseURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return h.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if h.baseURL == "" {
		return path
	}
	return h.baseURL + path
}

// RenderedPage captures the rendered HTML output for a page.
type RenderedPage struct {
	PageID   uuid.UUID
	Kind     PageKind
	Route    string
	Output   string
	Template string
	HTML     string
	Metadata DependencyMetadata
	Duration time.Duration
	Checksum string
}

// RenderDiagnostic records rendering timing and errors for individual pages.
type RenderDiagnostic struct {
	PageID   uuid.UUID
	Kind     PageKind
	Route    string
	Template string
	Duration time.Duration
	Skipped  bool
	Err      error
}

type renderOutcome struct {
	page       RenderedPage
	diagnostic RenderDiagnostic
	err        error
	skipped    bool
}
