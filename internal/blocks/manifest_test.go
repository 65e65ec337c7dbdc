package blocks

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/turningtides/go-pagebuilder/internal/validation"
	"github.com/turningtides/go-pagebuilder/pkg/testsupport"
)

const validManifest = `
version: "1"
blocks:
  - type: DONATION_PANEL
    name: Donation Panel
    category: conversion
    defaultSettings:
      layout:
        columns: 2
      style:
        textColor: "#111111"
        padding: 2rem
    variants:
      - id: compact
        layoutOverrides:
          columns: 1
    previewData:
      title: Donate
      content: Support our partners.
`

func TestParseManifestYAML(t *testing.T) {
	configs, err := ParseManifest([]byte(validManifest))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("expected one config, got %d", len(configs))
	}
	config := configs[0]
	if config.Type != "DONATION_PANEL" || config.Name != "Donation Panel" {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.DefaultSettings.Style["textColor"] != "#111111" {
		t.Fatalf("expected style decoded, got %v", config.DefaultSettings.Style)
	}
	if len(config.Variants) != 1 || config.Variants[0].LayoutOverrides["columns"] != float64(1) {
		t.Fatalf("expected variant decoded, got %+v", config.Variants)
	}

	registry, err := DefaultRegistry().Extend(configs...)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if !registry.Has("DONATION_PANEL") {
		t.Fatalf("expected manifest block registered")
	}
}

func TestParseManifestJSON(t *testing.T) {
	data := []byte(`{"blocks":[{"type":"MAP","name":"Map","defaultSettings":{"layout":{"height":"400px"}}}]}`)
	configs, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if configs[0].DefaultSettings.Layout["height"] != "400px" {
		t.Fatalf("unexpected layout %v", configs[0].DefaultSettings.Layout)
	}
}

func TestParseManifestRejectsSchemaViolations(t *testing.T) {
	data := []byte(`{"blocks":[{"type":"lowercase","name":""}]}`)
	_, err := ParseManifest(data)
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected schema validation error, got %v", err)
	}
	if len(validation.Issues(err)) == 0 {
		t.Fatalf("expected issues to be reported")
	}
}

func TestParseManifestEmpty(t *testing.T) {
	if _, err := ParseManifest(nil); !errors.Is(err, ErrManifestEmpty) {
		t.Fatalf("expected ErrManifestEmpty, got %v", err)
	}
}

func TestLoadManifestFile(t *testing.T) {
	fsys := fstest.MapFS{"catalog.yaml": {Data: []byte(validManifest)}}
	configs, err := LoadManifestFile(fsys, "catalog.yaml")
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("expected one config, got %d", len(configs))
	}
	if _, err := LoadManifestFile(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseManifestFixtureExtendsCatalog(t *testing.T) {
	data, err := testsupport.LoadFixture("testdata/partner_blocks.yaml")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	configs, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("expected two configs, got %d", len(configs))
	}

	registry, err := DefaultRegistry().Extend(configs...)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if registry.Len() != DefaultRegistry().Len()+2 {
		t.Fatalf("expected catalog to grow by two, got %d", registry.Len())
	}
	merged := MergeSettings(mustLookup(t, registry, "PULL_QUOTE"), "highlighted", nil, nil)
	if merged.Style["textColor"] != "#0e7490" || merged.Style["padding"] != "1.5rem" {
		t.Fatalf("expected variant override over defaults, got %v", merged.Style)
	}
}

func mustLookup(t *testing.T, registry *Registry, blockType string) BlockConfig {
	t.Helper()
	config, ok := registry.Lookup(blockType)
	if !ok {
		t.Fatalf("expected %s registered", blockType)
	}
	return config
}
