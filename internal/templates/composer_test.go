package templates

import (
	"errors"
	"reflect"
	"testing"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
)

func TestCreateTemplateFromBlocksPopulatesTemplate(t *testing.T) {
	composer := newTestComposer(heroRegistry())

	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{
		Name:     "Spring Appeal",
		Category: "campaign",
		Tags:     []string{"appeal"},
		Author:   Author{ID: "author-1", Name: "Ana"},
	}, []BlockRequest{
		{BlockType: "HERO"},
		{BlockType: "FOOTER"},
	}, "kit-1")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if template.ID != sequentialUUIDs(1)() {
		t.Fatalf("expected generated id, got %s", template.ID)
	}
	if template.Slug != "spring-appeal" {
		t.Fatalf("expected slug spring-appeal, got %q", template.Slug)
	}
	if template.Layout != DefaultLayout() {
		t.Fatalf("expected default layout, got %+v", template.Layout)
	}
	if template.BrandkitID != "kit-1" || template.BrandkitSettings != DefaultBrandkitSettings() {
		t.Fatalf("unexpected brand kit fields %q %+v", template.BrandkitID, template.BrandkitSettings)
	}
	if template.Version != DefaultVersion {
		t.Fatalf("expected version %s, got %s", DefaultVersion, template.Version)
	}
	if template.DownloadCount != 0 || template.Rating != 0 || template.RatingCount != 0 {
		t.Fatalf("expected zeroed counters, got %+v", template)
	}
	if !template.CreatedAt.Equal(fixedNow) || !template.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected timestamps from clock, got %v %v", template.CreatedAt, template.UpdatedAt)
	}
	if len(template.DesignBlocks) != 2 {
		t.Fatalf("expected 2 design blocks, got %d", len(template.DesignBlocks))
	}
	for i, block := range template.DesignBlocks {
		if block.Order != i {
			t.Fatalf("expected order %d, got %d", i, block.Order)
		}
		if len(block.Translations) != 1 || block.Translations[0].LanguageID != DefaultLanguage {
			t.Fatalf("expected one en translation, got %+v", block.Translations)
		}
	}
}

func TestCreateTemplateFromBlocksHonoursMetaLayout(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	layout := Layout{Type: "boxed", ContainerWidth: "960px", Spacing: "compact"}
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "Boxed", Layout: &layout, Version: "2.0.0"}, nil, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if template.Layout != layout || template.Version != "2.0.0" {
		t.Fatalf("expected meta layout and version, got %+v %s", template.Layout, template.Version)
	}
	if template.Tags == nil || len(template.DesignBlocks) != 0 {
		t.Fatalf("expected empty tags and blocks, got %v %v", template.Tags, template.DesignBlocks)
	}
}

func TestCreateTemplateFromBlocksTranslationDefaults(t *testing.T) {
	composer := newTestComposer(heroRegistry())

	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO"},
		{BlockType: "HERO", Content: &BlockContent{
			Title:    "Explicit",
			Subtitle: "Sub",
			Text:     "Body",
			Metadata: map[string]any{"source": "explicit"},
		}},
		{BlockType: "FOOTER"},
	}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	fallback := template.DesignBlocks[0].Translations[0]
	if *fallback.Title != "Hero" || *fallback.Content != "Preview content" || fallback.Metadata["source"] != "preview" {
		t.Fatalf("expected registry fallbacks, got %+v", fallback)
	}
	if fallback.Subtitle != nil {
		t.Fatalf("expected no subtitle, got %q", *fallback.Subtitle)
	}

	explicit := template.DesignBlocks[1].Translations[0]
	if *explicit.Title != "Explicit" || *explicit.Subtitle != "Sub" || *explicit.Content != "Body" || explicit.Metadata["source"] != "explicit" {
		t.Fatalf("expected explicit content, got %+v", explicit)
	}
	if template.DesignBlocks[1].Settings.Content["title"] != "Explicit" {
		t.Fatalf("expected content payload merged into settings, got %v", template.DesignBlocks[1].Settings.Content)
	}

	empty := template.DesignBlocks[2].Translations[0]
	if *empty.Content != "" || empty.Metadata == nil || len(empty.Metadata) != 0 {
		t.Fatalf("expected empty content and metadata, got %+v", empty)
	}
}

func TestCreateTemplateFromBlocksMergePrecedence(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	custom := &blocks.Settings{
		Layout:     blocks.Category{"height": "custom"},
		Style:      blocks.Category{"color": "custom"},
		Responsive: blocks.Category{"stack": "custom"},
		Animation:  blocks.Category{"type": "custom"},
		Content:    blocks.Category{"ctaLabel": "custom"},
	}
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO", VariantID: "inverted", CustomSettings: custom},
	}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	settings := template.DesignBlocks[0].Settings
	got := []any{settings.Layout["height"], settings.Style["color"], settings.Responsive["stack"], settings.Animation["type"], settings.Content["ctaLabel"]}
	for i, value := range got {
		if value != "custom" {
			t.Fatalf("expected custom value in category %d, got %v", i, value)
		}
	}
}

func TestCreateTemplateFromBlocksDefaultsOnly(t *testing.T) {
	registry := heroRegistry()
	composer := newTestComposer(registry)
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{{BlockType: "HERO"}}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	config, _ := registry.Lookup("HERO")
	settings := template.DesignBlocks[0].Settings
	want := config.DefaultSettings
	if !reflect.DeepEqual(settings.Layout, want.Layout) ||
		!reflect.DeepEqual(settings.Style, want.Style) ||
		!reflect.DeepEqual(settings.Responsive, want.Responsive) ||
		!reflect.DeepEqual(settings.Animation, want.Animation) ||
		!reflect.DeepEqual(settings.Content, want.Content) {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestCreateTemplateFromBlocksInvertedVariant(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO", VariantID: "inverted"},
	}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !reflect.DeepEqual(template.DesignBlocks[0].Settings.Style, blocks.Category{"color": "white"}) {
		t.Fatalf("expected inverted style, got %v", template.DesignBlocks[0].Settings.Style)
	}
	if template.DesignBlocks[0].VariantID != "inverted" {
		t.Fatalf("expected variant recorded, got %q", template.DesignBlocks[0].VariantID)
	}
}

func TestCreateTemplateFromBlocksNonexistentVariant(t *testing.T) {
	recorder := &recordingMetrics{}
	composer := NewComposer(heroRegistry(), WithMetrics(recorder))
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO", VariantID: "nonexistent"},
	}, "")
	if err != nil {
		t.Fatalf("expected no error for unknown variant, got %v", err)
	}
	if !reflect.DeepEqual(template.DesignBlocks[0].Settings.Style, blocks.Category{"color": "black"}) {
		t.Fatalf("expected default style, got %v", template.DesignBlocks[0].Settings.Style)
	}
	if recorder.variantMisses != 1 {
		t.Fatalf("expected variant miss recorded, got %d", recorder.variantMisses)
	}
}

func TestCreateTemplateFromBlocksRejectsUnknownBlockType(t *testing.T) {
	recorder := &recordingMetrics{}
	composer := NewComposer(heroRegistry(), WithMetrics(recorder))
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO"},
		{BlockType: "MISSING"},
		{BlockType: "ALSO_MISSING"},
	}, "")
	if template != nil {
		t.Fatalf("expected no template, got %+v", template)
	}
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}
	var unknown *UnknownBlockTypeError
	if !errors.As(err, &unknown) || unknown.BlockType != "MISSING" || unknown.Index != 1 {
		t.Fatalf("expected first unknown block reported, got %+v", unknown)
	}
	if recorder.composed != 0 || recorder.unknown != 1 {
		t.Fatalf("expected no composition and one unknown, got %+v", recorder)
	}
}

func TestCreateTemplateFromBlocksAcceptsEmptyMeta(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "  ", Tags: []string{"", " launch "}}, []BlockRequest{{BlockType: "HERO"}}, "")
	if err != nil {
		t.Fatalf("expected blank meta to compose, got %v", err)
	}
	if template.Name != DefaultTemplateName || template.Slug != "untitled-template" {
		t.Fatalf("expected default name and slug, got %q %q", template.Name, template.Slug)
	}
	if !reflect.DeepEqual(template.Tags, []string{"launch"}) {
		t.Fatalf("expected blank tags dropped, got %v", template.Tags)
	}

	empty, err := composer.CreateTemplateFromBlocks(TemplateMeta{}, []BlockRequest{{BlockType: "HERO"}}, "")
	if err != nil {
		t.Fatalf("expected zero meta to compose, got %v", err)
	}
	if empty.Tags == nil || len(empty.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", empty.Tags)
	}
}

func TestCreateTemplateFromBlocksDoesNotAliasInputs(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	custom := &blocks.Settings{Custom: blocks.Category{"nested": map[string]any{"k": "v"}}}
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO", CustomSettings: custom},
	}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	custom.Custom["nested"].(map[string]any)["k"] = "changed"
	if template.DesignBlocks[0].Settings.Custom["nested"].(map[string]any)["k"] != "v" {
		t.Fatalf("expected template to own its settings")
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Turning Tides Home"); got != "turning-tides-home" {
		t.Fatalf("expected turning-tides-home, got %q", got)
	}
}
