package blocks

import (
	"errors"
	"testing"

	"github.com/turningtides/go-pagebuilder/internal/identity"
)

func heroConfig() BlockConfig {
	return BlockConfig{
		Type: "HERO",
		Name: "Hero",
		DefaultSettings: DefaultSettings{
			Layout:  Category{"height": "80vh"},
			Style:   Category{"color": "black"},
			Content: Category{},
		},
		Variants: []Variant{
			{ID: "inverted", StyleOverrides: Category{"color": "white"}},
		},
		PreviewData: PreviewData{Content: "preview", Metadata: map[string]any{"k": "v"}},
	}
}

func TestNewRegistryAssignsDeterministicIDs(t *testing.T) {
	registry, err := NewRegistry(heroConfig())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	config, ok := registry.Lookup("HERO")
	if !ok {
		t.Fatalf("expected HERO to be registered")
	}
	if config.ID != identity.BlockConfigUUID("HERO") {
		t.Fatalf("expected deterministic id, got %s", config.ID)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	cases := []struct {
		name    string
		configs []BlockConfig
		want    error
	}{
		{
			name:    "missing type",
			configs: []BlockConfig{{Name: "x"}},
			want:    ErrBlockTypeRequired,
		},
		{
			name:    "missing name",
			configs: []BlockConfig{{Type: "X"}},
			want:    ErrBlockNameRequired,
		},
		{
			name:    "duplicate type",
			configs: []BlockConfig{heroConfig(), heroConfig()},
			want:    ErrDuplicateBlockType,
		},
		{
			name: "blank variant id",
			configs: []BlockConfig{{
				Type: "X", Name: "x", Variants: []Variant{{ID: " "}},
			}},
			want: ErrVariantIDRequired,
		},
		{
			name: "duplicate variant",
			configs: []BlockConfig{{
				Type: "X", Name: "x", Variants: []Variant{{ID: "a"}, {ID: "a"}},
			}},
			want: ErrDuplicateVariant,
		},
		{
			name: "variant introduces category",
			configs: []BlockConfig{{
				Type: "X", Name: "x",
				Variants: []Variant{{ID: "a", LayoutOverrides: Category{"columns": 2}}},
			}},
			want: ErrVariantIncompatible,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.configs...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("expected RegistrationError, got %T", err)
			}
		})
	}
}

func TestRegistryLookupReturnsCopies(t *testing.T) {
	registry := MustNewRegistry(heroConfig())

	config, _ := registry.Lookup("HERO")
	config.DefaultSettings.Style["color"] = "red"
	config.Variants[0].StyleOverrides["color"] = "red"
	config.PreviewData.Metadata["k"] = "changed"

	fresh, _ := registry.Lookup("HERO")
	if fresh.DefaultSettings.Style["color"] != "black" {
		t.Fatalf("expected registry defaults untouched, got %v", fresh.DefaultSettings.Style)
	}
	if fresh.Variants[0].StyleOverrides["color"] != "white" {
		t.Fatalf("expected registry variant untouched, got %v", fresh.Variants[0].StyleOverrides)
	}
	if fresh.PreviewData.Metadata["k"] != "v" {
		t.Fatalf("expected registry preview metadata untouched")
	}
}

func TestRegistryIgnoresCallerMutationAfterConstruction(t *testing.T) {
	config := heroConfig()
	registry := MustNewRegistry(config)
	config.DefaultSettings.Style["color"] = "green"

	stored, _ := registry.Lookup("HERO")
	if stored.DefaultSettings.Style["color"] != "black" {
		t.Fatalf("expected registry to own its copy, got %v", stored.DefaultSettings.Style)
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry := MustNewRegistry(heroConfig())
	if _, ok := registry.Lookup("UNKNOWN"); ok {
		t.Fatalf("expected unknown block type lookup to fail")
	}
	if registry.Has("hero") {
		t.Fatalf("expected block types to be case sensitive")
	}
	var nilRegistry *Registry
	if _, ok := nilRegistry.Lookup("HERO"); ok {
		t.Fatalf("expected nil registry lookup to fail")
	}
}

func TestRegistryVariant(t *testing.T) {
	registry := MustNewRegistry(heroConfig())
	variant, ok := registry.Variant("HERO", "inverted")
	if !ok || variant.StyleOverrides["color"] != "white" {
		t.Fatalf("expected inverted variant, got %+v (ok=%v)", variant, ok)
	}
	if _, ok := registry.Variant("HERO", "nonexistent"); ok {
		t.Fatalf("expected nonexistent variant to be missing")
	}
}

func TestRegistryExtendLeavesReceiverUntouched(t *testing.T) {
	base := MustNewRegistry(heroConfig())
	extended, err := base.Extend(BlockConfig{Type: "FOOTER", Name: "Footer"})
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if base.Len() != 1 || extended.Len() != 2 {
		t.Fatalf("expected base=1 extended=2, got %d and %d", base.Len(), extended.Len())
	}
	if got := extended.Types(); got[0] != "FOOTER" || got[1] != "HERO" {
		t.Fatalf("expected sorted types, got %v", got)
	}
	if _, err := base.Extend(heroConfig()); !errors.Is(err, ErrDuplicateBlockType) {
		t.Fatalf("expected duplicate error on extend, got %v", err)
	}
}
