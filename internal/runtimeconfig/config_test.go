package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/turningtides/go-pagebuilder/internal/runtimeconfig"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.StorageProvider() != "memory" {
		t.Fatalf("expected memory provider, got %q", cfg.StorageProvider())
	}
}

func TestConfigValidate_RequiresDefaultLanguage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLanguage = "  "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultLanguageRequired) {
		t.Fatalf("expected ErrDefaultLanguageRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresDefaultLanguageInLanguages(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLanguage = "es"
	cfg.Languages = []string{"en", "fr"}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultLanguageUnlisted) {
		t.Fatalf("expected ErrDefaultLanguageUnlisted, got %v", err)
	}

	cfg.Languages = []string{"EN", "ES"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected case-insensitive match, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "redis"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_BunStorageRequiresDialectAndDSN(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Storage.Dialect = "mysql"
	cfg.Storage.DSN = "file::memory:"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageDialectUnknown) {
		t.Fatalf("expected ErrStorageDialectUnknown, got %v", err)
	}

	cfg.Storage.Dialect = "postgres"
	cfg.Storage.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigValidate_CacheRequiresBunAndPositiveTTL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCacheRequiresBunStorage) {
		t.Fatalf("expected ErrCacheRequiresBunStorage, got %v", err)
	}

	cfg.Storage = runtimeconfig.StorageConfig{Provider: "bun", Dialect: "sqlite", DSN: "file::memory:"}
	cfg.Cache.TTL = 0
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCacheTTLInvalid) {
		t.Fatalf("expected ErrCacheTTLInvalid, got %v", err)
	}

	cfg.Cache.TTL = time.Second
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfigValidate_CatalogManifestsRequireFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Templates.CatalogManifests = []string{"blocks.yaml"}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrManifestsFeatureRequired) {
		t.Fatalf("expected ErrManifestsFeatureRequired, got %v", err)
	}
}

func TestConfigValidate_TemplateDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Templates.DefaultVersion = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrTemplateVersionRequired) {
		t.Fatalf("expected ErrTemplateVersionRequired, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Templates.DefaultLayout.Spacing = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrTemplateLayoutIncomplete) {
		t.Fatalf("expected ErrTemplateLayoutIncomplete, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevelAndFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
