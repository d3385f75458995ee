// Package di wires the blog module's services together. Hosts construct a
// Container through blog.New and override individual dependencies with the
// With* options.
package di

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goliatone/go-blog/internal/archive"
	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/console"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/templates"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/pkg/storage"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// Container holds the wired blog services.
type Container struct {
	cfg runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	documents      interfaces.DocumentService
	postsService   *posts.Service
	renderer       interfaces.TemplateRenderer
	storageProv    interfaces.StorageProvider
	assets         generator.AssetResolver
	bunDB          *bun.DB
	archiveRepo    archive.Repository
	archiveSvc     *archive.Service
	generatorSvc   generator.Service
}

// Option overrides a container dependency before wiring.
type Option func(*Container)

// WithLoggerProvider injects a custom logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithStorage injects the storage provider used for build artifacts.
func WithStorage(sp interfaces.StorageProvider) Option {
	return func(c *Container) {
		c.storageProv = sp
	}
}

// WithRenderer injects the template renderer used by the generator.
func WithRenderer(tr interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.renderer = tr
	}
}

// WithDocumentService injects a custom document service.
func WithDocumentService(svc interfaces.DocumentService) Option {
	return func(c *Container) {
		c.documents = svc
	}
}

// WithAssetResolver injects the theme asset resolver.
func WithAssetResolver(resolver generator.AssetResolver) Option {
	return func(c *Container) {
		c.assets = resolver
	}
}

// WithBunDB injects an existing bun database for the archive.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithArchiveRepository injects a custom archive repository.
func WithArchiveRepository(repo archive.Repository) Option {
	return func(c *Container) {
		c.archiveRepo = repo
	}
}

// NewContainer validates the configuration and wires the blog services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureDocuments(); err != nil {
		return nil, err
	}
	c.postsService = posts.NewService(c.loggerProvider)
	if err := c.configureRenderer(); err != nil {
		return nil, err
	}
	c.configureStorage()
	if err := c.configureArchive(); err != nil {
		return nil, err
	}
	c.configureGenerator()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.cfg.Features.Logger {
		c.loggerProvider = noopProvider{}
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.cfg.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.cfg.Logging.Level,
			Format:    c.cfg.Logging.Format,
			AddSource: c.cfg.Logging.AddSource,
			Focus:     c.cfg.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure gologger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		level := consoleLevel(c.cfg.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureDocuments() error {
	if c.documents != nil {
		return nil
	}
	svc, err := markdown.NewService(markdown.Config{
		BasePath:  c.cfg.Content.Dir,
		Pattern:   c.cfg.Content.Pattern,
		Recursive: c.cfg.Content.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: c.cfg.Content.Parser.Extensions,
			Sanitize:   c.cfg.Content.Parser.Sanitize,
			HardWraps:  c.cfg.Content.Parser.HardWraps,
			SafeMode:   c.cfg.Content.Parser.SafeMode,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("di: configure markdown service: %w", err)
	}
	c.documents = svc
	return nil
}

func (c *Container) configureRenderer() error {
	if c.renderer != nil {
		return nil
	}
	templatesDir := strings.TrimSpace(c.cfg.Generator.TemplatesDir)
	if templatesDir == "" && strings.TrimSpace(c.cfg.Theme.Path) != "" {
		templatesDir = c.cfg.Theme.Path
	}
	if templatesDir == "" {
		return nil
	}
	renderer, err := templates.NewHTMLRenderer(templatesDir)
	if err != nil {
		return fmt.Errorf("di: configure template renderer: %w", err)
	}
	c.renderer = renderer
	return nil
}

func (c *Container) configureStorage() {
	if c.storageProv != nil {
		return
	}
	outputDir := strings.TrimSpace(c.cfg.Generator.OutputDir)
	if outputDir == "" {
		return
	}
	// Root the provider at the output dir itself; incoming artifact paths
	// carry the same prefix and are trimmed against it.
	c.storageProv = storage.NewFilesystem(outputDir, outputDir)
}

func (c *Container) configureArchive() error {
	if !c.cfg.Features.Archive {
		return nil
	}
	if c.archiveRepo == nil {
		if c.bunDB == nil {
			driver := strings.TrimSpace(c.cfg.Archive.Driver)
			if driver == "" {
				driver = "sqlite3"
			}
			sqlDB, err := sql.Open(driver, c.cfg.Archive.DSN)
			if err != nil {
				return fmt.Errorf("di: open archive database: %w", err)
			}
			c.bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
			c.bunDB.SetMaxOpenConns(1)
		}
		repo := archive.NewBunRepository(c.bunDB)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			return err
		}
		c.archiveRepo = repo
	}
	svc, err := archive.NewService(c.archiveRepo, logging.ArchiveLogger(c.loggerProvider))
	if err != nil {
		return err
	}
	c.archiveSvc = svc
	return nil
}

func (c *Container) configureGenerator() {
	if !c.cfg.Features.Generator || !c.cfg.Generator.Enabled {
		c.generatorSvc = generator.NewDisabledService()
		return
	}
	assets := c.assets
	if assets == nil {
		if strings.TrimSpace(c.cfg.Theme.Path) != "" {
			assets = generator.FSAssetResolver{}
		} else {
			assets = generator.NoOpAssetResolver{}
		}
	}
	var history generator.BuildRecorder
	if c.archiveSvc != nil {
		history = c.archiveSvc
	}
	c.generatorSvc = generator.NewService(generator.Config{
		OutputDir:       c.cfg.Generator.OutputDir,
		BaseURL:         c.cfg.Site.BaseURL,
		SiteTitle:       c.cfg.Site.Title,
		SiteDescription: c.cfg.Site.Description,
		SiteAuthor:      c.cfg.Site.Author,
		CleanBuild:      c.cfg.Generator.CleanBuild,
		Incremental:     c.cfg.Generator.Incremental,
		CopyAssets:      c.cfg.Generator.CopyAssets,
		GenerateSitemap: c.cfg.Generator.GenerateSitemap,
		GenerateRobots:  c.cfg.Generator.GenerateRobots,
		GenerateFeeds:   c.cfg.Generator.GenerateFeeds,
		Workers:         c.cfg.Generator.Workers,
		Theme: generator.ThemeConfig{
			Name:              c.cfg.Theme.Name,
			Version:           c.cfg.Theme.Version,
			Path:              c.cfg.Theme.Path,
			Variant:           c.cfg.Theme.Variant,
			CSSVariablePrefix: c.cfg.Theme.CSSVariablePrefix,
		},
		Templates: generator.TemplateSet{
			Index:    c.cfg.Generator.Templates.Index,
			Post:     c.cfg.Generator.Templates.Post,
			Category: c.cfg.Generator.Templates.Category,
			Tag:      c.cfg.Generator.Templates.Tag,
		},
	}, generator.Dependencies{
		Documents: c.documents,
		Posts:     c.postsService,
		Renderer:  c.renderer,
		Storage:   c.storageProv,
		Assets:    assets,
		History:   history,
		Logger:    logging.GeneratorLogger(c.loggerProvider),
	})
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DocumentService returns the configured document service.
func (c *Container) DocumentService() interfaces.DocumentService {
	return c.documents
}

// PostService returns the post collection service.
func (c *Container) PostService() *posts.Service {
	return c.postsService
}

// TemplateRenderer returns the configured template renderer, if any.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.renderer
}

// StorageProvider returns the artifact storage provider.
func (c *Container) StorageProvider() interfaces.StorageProvider {
	return c.storageProv
}

// ArchiveService returns the build history service, or nil when disabled.
func (c *Container) ArchiveService() *archive.Service {
	return c.archiveSvc
}

// GeneratorService returns the static site generator.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

// BunDB exposes the archive database handle for advanced integrations.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
