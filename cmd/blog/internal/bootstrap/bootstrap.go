package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/goliatone/go-blog"
	staticcmd "github.com/goliatone/go-blog/internal/commands/static"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures configuration for blog CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	OutputDir      string
	TemplatesDir   string
	ThemePath      string
	ThemeName      string
	ThemeVariant   string
	BaseURL        string
	SiteTitle      string
	ArchiveDSN     string
	ArchiveEnabled bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the services CLI commands use.
type Module struct {
	Module    *blog.Module
	Generator blog.GeneratorService
	Documents blog.DocumentService
	Logger    interfaces.Logger
	Gates     staticcmd.FeatureGates
}

// BuildModule constructs a blog module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()

	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive

	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Generator.OutputDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.TemplatesDir); trimmed != "" {
		cfg.Generator.TemplatesDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ThemePath); trimmed != "" {
		cfg.Theme.Path = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ThemeName); trimmed != "" {
		cfg.Theme.Name = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ThemeVariant); trimmed != "" {
		cfg.Theme.Variant = trimmed
	}
	if trimmed := strings.TrimSpace(opts.BaseURL); trimmed != "" {
		cfg.Site.BaseURL = trimmed
	}
	if trimmed := strings.TrimSpace(opts.SiteTitle); trimmed != "" {
		cfg.Site.Title = trimmed
	}

	cfg.Features.Archive = opts.ArchiveEnabled
	cfg.Archive.Enabled = opts.ArchiveEnabled
	if trimmed := strings.TrimSpace(opts.ArchiveDSN); trimmed != "" {
		cfg.Archive.DSN = trimmed
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	logger := logging.GeneratorLogger(module.Container().LoggerProvider())
	generatorEnabled := cfg.Features.Generator && cfg.Generator.Enabled

	return &Module{
		Module:    module,
		Generator: module.Generator(),
		Documents: module.Documents(),
		Logger:    logger,
		Gates: staticcmd.FeatureGates{
			GeneratorEnabled: func() bool { return generatorEnabled },
		},
	}, nil
}
