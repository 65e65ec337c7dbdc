package pagebuilder

import "github.com/turningtides/go-pagebuilder/internal/runtimeconfig"

var (
	ErrDefaultLanguageRequired  = runtimeconfig.ErrDefaultLanguageRequired
	ErrDefaultLanguageUnlisted  = runtimeconfig.ErrDefaultLanguageUnlisted
	ErrStorageProviderUnknown   = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDialectUnknown    = runtimeconfig.ErrStorageDialectUnknown
	ErrStorageDSNRequired       = runtimeconfig.ErrStorageDSNRequired
	ErrCacheTTLInvalid          = runtimeconfig.ErrCacheTTLInvalid
	ErrCacheRequiresBunStorage  = runtimeconfig.ErrCacheRequiresBunStorage
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrManifestsFeatureRequired = runtimeconfig.ErrManifestsFeatureRequired
	ErrTemplateVersionRequired  = runtimeconfig.ErrTemplateVersionRequired
	ErrTemplateLayoutIncomplete = runtimeconfig.ErrTemplateLayoutIncomplete
)

type (
	Config          = runtimeconfig.Config
	StorageConfig   = runtimeconfig.StorageConfig
	CacheConfig     = runtimeconfig.CacheConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
	Features        = runtimeconfig.Features
	TemplatesConfig = runtimeconfig.TemplatesConfig
	LayoutConfig    = runtimeconfig.LayoutConfig
	BrandkitConfig  = runtimeconfig.BrandkitConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
