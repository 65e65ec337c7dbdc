package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDefaultLanguageRequired   = errors.New("pagebuilder config: default language is required")
	ErrDefaultLanguageUnlisted   = errors.New("pagebuilder config: default language must be part of the configured languages")
	ErrStorageProviderUnknown    = errors.New("pagebuilder config: storage provider is invalid")
	ErrStorageDialectUnknown     = errors.New("pagebuilder config: storage dialect is invalid")
	ErrStorageDSNRequired        = errors.New("pagebuilder config: storage dsn is required for the bun provider")
	ErrCacheTTLInvalid           = errors.New("pagebuilder config: cache ttl must be positive when cache is enabled")
	ErrCacheRequiresBunStorage   = errors.New("pagebuilder config: repository cache requires the bun storage provider")
	ErrLoggingProviderRequired   = errors.New("pagebuilder config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown    = errors.New("pagebuilder config: logging provider is invalid")
	ErrLoggingLevelInvalid       = errors.New("pagebuilder config: logging level is invalid")
	ErrLoggingFormatInvalid      = errors.New("pagebuilder config: logging format is invalid")
	ErrManifestsFeatureRequired  = errors.New("pagebuilder config: manifests feature must be enabled to load catalog manifests")
	ErrTemplateVersionRequired   = errors.New("pagebuilder config: default template version is required")
	ErrTemplateLayoutIncomplete  = errors.New("pagebuilder config: default template layout requires type, container width and spacing")
)

// Config aggregates feature flags and adapter bindings for the page builder.
type Config struct {
	DefaultLanguage string
	Languages       []string
	Storage         StorageConfig
	Cache           CacheConfig
	Logging         LoggingConfig
	Features        Features
	Templates       TemplatesConfig
	Brandkit        BrandkitConfig
}

// StorageConfig selects where composed templates are persisted.
type StorageConfig struct {
	Provider string
	Dialect  string
	DSN      string
}

// CacheConfig toggles the repository cache in front of bun storage.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// LoggingConfig selects the logger provider used by the module.
type LoggingConfig struct {
	Provider string
	Level    string
	Format   string
}

// Features toggles optional behaviour.
type Features struct {
	Logger    bool
	Metrics   bool
	Manifests bool
}

// TemplatesConfig controls template defaults and extra block catalogs.
type TemplatesConfig struct {
	DefaultLayout    LayoutConfig
	DefaultVersion   string
	CatalogManifests []string
}

// LayoutConfig mirrors the template layout descriptor.
type LayoutConfig struct {
	Type           string
	ContainerWidth string
	Spacing        string
}

// BrandkitConfig points at brand kit sources resolved by name.
type BrandkitConfig struct {
	ManifestDir  string
	ThemeVariant string
}

// DefaultConfig returns defaults for an in-memory page builder.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: "en",
		Languages:       []string{"en"},
		Storage: StorageConfig{
			Provider: "memory",
			Dialect:  "sqlite",
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{},
		Templates: TemplatesConfig{
			DefaultLayout: LayoutConfig{
				Type:           "full-width",
				ContainerWidth: "1200px",
				Spacing:        "normal",
			},
			DefaultVersion: "1.0.0",
		},
		Brandkit: BrandkitConfig{
			ThemeVariant: "default",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	lang := strings.TrimSpace(cfg.DefaultLanguage)
	if lang == "" {
		return ErrDefaultLanguageRequired
	}
	if len(cfg.Languages) > 0 && !containsFold(cfg.Languages, lang) {
		return fmt.Errorf("%w: %s", ErrDefaultLanguageUnlisted, lang)
	}

	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case "", "memory":
	case "bun":
		if dialect := normalize(cfg.Storage.Dialect); !isSupportedDialect(dialect) {
			return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, cfg.Storage.Dialect)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}

	if cfg.Cache.Enabled {
		if provider != "bun" {
			return ErrCacheRequiresBunStorage
		}
		if cfg.Cache.TTL <= 0 {
			return ErrCacheTTLInvalid
		}
	}

	if len(cfg.Templates.CatalogManifests) > 0 && !cfg.Features.Manifests {
		return ErrManifestsFeatureRequired
	}
	if strings.TrimSpace(cfg.Templates.DefaultVersion) == "" {
		return ErrTemplateVersionRequired
	}
	layout := cfg.Templates.DefaultLayout
	if strings.TrimSpace(layout.Type) == "" || strings.TrimSpace(layout.ContainerWidth) == "" || strings.TrimSpace(layout.Spacing) == "" {
		return ErrTemplateLayoutIncomplete
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
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

// StorageProvider returns the normalized storage provider, defaulting to memory.
func (cfg Config) StorageProvider() string {
	if provider := normalize(cfg.Storage.Provider); provider != "" {
		return provider
	}
	return "memory"
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}

func isSupportedDialect(dialect string) bool {
	switch dialect {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
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
