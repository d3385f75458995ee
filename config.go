package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired         = runtimeconfig.ErrContentDirRequired
	ErrGeneratorOutputDirRequired = runtimeconfig.ErrGeneratorOutputDirRequired
	ErrThemePathRequired          = runtimeconfig.ErrThemePathRequired
	ErrArchiveDSNRequired         = runtimeconfig.ErrArchiveDSNRequired
	ErrWorkersInvalid             = runtimeconfig.ErrWorkersInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	SiteConfig        = runtimeconfig.SiteConfig
	ContentConfig     = runtimeconfig.ContentConfig
	ParserConfig      = runtimeconfig.ParserConfig
	GeneratorConfig   = runtimeconfig.GeneratorConfig
	TemplateSetConfig = runtimeconfig.TemplateSetConfig
	ThemeConfig       = runtimeconfig.ThemeConfig
	ArchiveConfig     = runtimeconfig.ArchiveConfig
	CommandsConfig    = runtimeconfig.CommandsConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
	Features          = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
