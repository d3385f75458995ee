package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents so hosts can share a
// single instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// DocumentService exposes the file workflows the build pipeline depends on:
// loading Markdown documents from disk and converting their bodies into HTML.
type DocumentService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Slug         string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// incremental builds can detect changes without re-rendering unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from the header block of a Markdown
// article. Title and Date are required; everything else is optional. Unknown
// keys survive in Custom and the full key set is mirrored in Raw so header
// round-trips preserve author intent.
type FrontMatter struct {
	Title      string         `yaml:"title" json:"title"`
	Slug       string         `yaml:"slug" json:"slug"`
	Summary    string         `yaml:"summary" json:"summary"`
	Author     string         `yaml:"author" json:"author"`
	Date       time.Time      `yaml:"-" json:"date"`
	Categories []string       `yaml:"categories" json:"categories"`
	Tags       []string       `yaml:"tags" json:"tags"`
	Flags      []string       `yaml:"flags" json:"flags"`
	Draft      bool           `yaml:"draft" json:"draft"`
	Custom     map[string]any `yaml:",inline" json:"custom"`
	Raw        map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive     *bool
	Pattern       string
	IncludeDrafts bool
	Parser        ParseOptions
}
