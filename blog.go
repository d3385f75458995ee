package blog

import (
	"github.com/goliatone/go-blog/internal/archive"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// DocumentService exports the Markdown document service contract.
type DocumentService = interfaces.DocumentService

// Document exports the parsed Markdown document type.
type Document = interfaces.Document

// LoadOptions exports the document loading options.
type LoadOptions = interfaces.LoadOptions

// PostService exports the post collection service.
type PostService = posts.Service

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// ArchiveService exports the build history service.
type ArchiveService = archive.Service

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build result.
type BuildResult = generator.BuildResult

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Documents returns the configured document service.
func (m *Module) Documents() DocumentService {
	return m.container.DocumentService()
}

// Posts returns the configured post collection service.
func (m *Module) Posts() *PostService {
	return m.container.PostService()
}

// Generator returns the configured static site generator.
func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

// Archive returns the build history service, or nil when the feature is disabled.
func (m *Module) Archive() *ArchiveService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ArchiveService()
}
