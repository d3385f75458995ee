package staticcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-blog/internal/generator"
)

const (
	buildSiteMessageType   = "blog.static.build"
	previewPostMessageType = "blog.static.preview"
	cleanSiteMessageType   = "blog.static.clean"
)

// ResultCallback receives build results produced by generator operations. The
// callback is optional and invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a full generator build.
type BuildSiteCommand struct {
	Force          bool           `json:"force,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	IncludeDrafts  bool           `json:"include_drafts,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (BuildSiteCommand) Validate() error { return nil }

// PreviewCallback receives the rendered HTML of a single document.
type PreviewCallback func(PreviewEnvelope)

// PreviewEnvelope carries the rendered output of a preview request.
type PreviewEnvelope struct {
	Path        string
	Slug        string
	Title       string
	Checksum    []byte
	FrontMatter map[string]any
	Body        []byte
	HTML        []byte
	Metadata    map[string]any
}

// PreviewPostCommand renders one Markdown document without writing artifacts.
type PreviewPostCommand struct {
	Path            string          `json:"path"`
	PreviewCallback PreviewCallback `json:"-"`
}

// Type implements command.Message.
func (PreviewPostCommand) Type() string { return previewPostMessageType }

// Validate ensures the document path is present.
func (m PreviewPostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Path) == "" {
		errs["path"] = validation.NewError("blog.static.preview.path_required", "path is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand clears generator artifacts from the configured storage backend.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }

// FeatureGates exposes runtime switches used to guard handler execution.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return false
	}
	return g.GeneratorEnabled()
}
