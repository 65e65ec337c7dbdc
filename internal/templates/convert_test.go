package templates

import (
	"testing"

	"github.com/google/uuid"
)

func TestConvertToPageSectionsPreservesOrder(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{
		{BlockType: "HERO"}, {BlockType: "FOOTER"}, {BlockType: "HERO"},
	}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	sections := composer.ConvertToPageSections(template, "en")
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	seen := map[uuid.UUID]bool{}
	for i, section := range sections {
		if section.Order != i || section.Type != template.DesignBlocks[i].BlockType {
			t.Fatalf("expected section %d to mirror block, got %+v", i, section)
		}
		if !section.IsActive || section.PageID != "" {
			t.Fatalf("expected active unattached section, got %+v", section)
		}
		if seen[section.ID] || section.ID == uuid.Nil {
			t.Fatalf("expected unique section ids, got %s", section.ID)
		}
		seen[section.ID] = true
	}
}

func TestConvertToPageSectionsPassesOrderGapsThrough(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template := &EnhancedTemplate{DesignBlocks: []DesignBlock{
		{BlockType: "HERO", Order: 5},
		{BlockType: "FOOTER", Order: 5},
		{BlockType: "HERO", Order: 1},
	}}
	sections := composer.ConvertToPageSections(template, "en")
	got := []int{sections[0].Order, sections[1].Order, sections[2].Order}
	if got[0] != 5 || got[1] != 5 || got[2] != 1 {
		t.Fatalf("expected orders passed through, got %v", got)
	}
	if len(sections[0].Translations) != 0 {
		t.Fatalf("expected empty translations for block without any, got %v", sections[0].Translations)
	}
}

func TestConvertToPageSectionsTranslationFallback(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template := &EnhancedTemplate{DesignBlocks: []DesignBlock{{
		BlockType: "HERO",
		Translations: []Translation{
			{LanguageID: "en", Title: strPtr("Hello")},
			{LanguageID: "es", Title: strPtr("Hola")},
		},
	}}}

	spanish := composer.ConvertToPageSections(template, "es")
	if len(spanish[0].Translations) != 1 || *spanish[0].Translations[0].Title != "Hola" {
		t.Fatalf("expected exact language match, got %+v", spanish[0].Translations)
	}

	french := composer.ConvertToPageSections(template, "fr")
	if len(french[0].Translations) != 1 || french[0].Translations[0].LanguageID != "en" {
		t.Fatalf("expected fallback to first translation, got %+v", french[0].Translations)
	}
}

func TestConvertToPageSectionsIsNonDestructive(t *testing.T) {
	composer := newTestComposer(heroRegistry())
	template, err := composer.CreateTemplateFromBlocks(TemplateMeta{Name: "T"}, []BlockRequest{{BlockType: "HERO"}}, "")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	sections := composer.ConvertToPageSections(template, "en")
	sections[0].Style["color"] = "pink"
	*sections[0].Translations[0].Title = "changed"

	if template.DesignBlocks[0].Settings.Style["color"] != "black" {
		t.Fatalf("expected template settings untouched")
	}
	if *template.DesignBlocks[0].Translations[0].Title != "Hero" {
		t.Fatalf("expected template translation untouched")
	}
}

func TestResolveTranslationEmpty(t *testing.T) {
	if _, ok := ResolveTranslation(nil, "en"); ok {
		t.Fatalf("expected no translation for empty slice")
	}
}

func TestAttachSections(t *testing.T) {
	sections := []PageSection{{Type: "HERO"}, {Type: "FOOTER"}}
	attached := AttachSections(sections, "page-1")
	for _, section := range attached {
		if section.PageID != "page-1" {
			t.Fatalf("expected page id assigned, got %q", section.PageID)
		}
	}
	if sections[0].PageID != "" {
		t.Fatalf("expected input sections untouched")
	}
}
