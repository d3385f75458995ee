// Package runtimeconfig holds the aggregate configuration for the blog
// module. Fields intentionally use simple types so host applications can
// unmarshal them from flags, environment, or config files.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("blog config: content directory is required")
var ErrGeneratorOutputDirRequired = errors.New("blog config: generator output directory is required when generator is enabled")
var ErrThemePathRequired = errors.New("blog config: theme path is required when a theme name is set")
var ErrArchiveDSNRequired = errors.New("blog config: archive DSN is required when archive is enabled")
var ErrWorkersInvalid = errors.New("blog config: generator workers must be zero or positive")
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the blog module.
type Config struct {
	Site      SiteConfig
	Content   ContentConfig
	Generator GeneratorConfig
	Theme     ThemeConfig
	Archive   ArchiveConfig
	Commands  CommandsConfig
	Logging   LoggingConfig
	Features  Features
}

// SiteConfig carries site-wide metadata rendered into templates and feeds.
type SiteConfig struct {
	BaseURL     string
	Title       string
	Description string
	Author      string
}

// ContentConfig captures filesystem and parser behaviour for Markdown ingestion.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
	Parser    ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static site generator.
type GeneratorConfig struct {
	Enabled         bool
	OutputDir       string
	TemplatesDir    string
	CleanBuild      bool
	Incremental     bool
	CopyAssets      bool
	GenerateSitemap bool
	GenerateRobots  bool
	GenerateFeeds   bool
	Workers         int
	Templates       TemplateSetConfig
}

// TemplateSetConfig names the templates used per page kind.
type TemplateSetConfig struct {
	Index    string
	Post     string
	Category string
	Tag      string
}

// ThemeConfig points at the active theme bundle.
type ThemeConfig struct {
	Name              string
	Version           string
	Path              string
	Variant           string
	CSSVariablePrefix string
}

// ArchiveConfig controls build history persistence.
type ArchiveConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Generator bool
	Archive   bool
	Logger    bool
}

// DefaultConfig returns opinionated defaults for a filesystem-backed blog.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title: "Blog",
		},
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Generator: GeneratorConfig{
			Enabled:         true,
			OutputDir:       "dist",
			CleanBuild:      false,
			Incremental:     true,
			CopyAssets:      true,
			GenerateSitemap: true,
			GenerateRobots:  true,
			GenerateFeeds:   true,
			Workers:         0,
		},
		Theme: ThemeConfig{},
		Archive: ArchiveConfig{
			Driver: "sqlite3",
			DSN:    "file:blog-archive.db?cache=shared",
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Generator: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Features.Generator && cfg.Generator.Enabled {
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
	}
	if cfg.Generator.Workers < 0 {
		return ErrWorkersInvalid
	}
	if strings.TrimSpace(cfg.Theme.Name) != "" && strings.TrimSpace(cfg.Theme.Path) == "" {
		return ErrThemePathRequired
	}
	if cfg.Features.Archive && strings.TrimSpace(cfg.Archive.DSN) == "" {
		return ErrArchiveDSNRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
