package templates

// ResolveTranslation picks the translation for languageID, falling back to
// the first entry. It reports false only when there are no translations.
func ResolveTranslation(translations []Translation, languageID string) (Translation, bool) {
	if len(translations) == 0 {
		return Translation{}, false
	}
	for _, translation := range translations {
		if translation.LanguageID == languageID {
			return translation, true
		}
	}
	return translations[0], true
}

// ConvertToPageSections flattens template into page sections for one
// language, in design-block array order. Order values are copied as is;
// gaps and duplicates pass through. PageID is left empty.
func (c *Composer) ConvertToPageSections(template *EnhancedTemplate, languageID string) []PageSection {
	if template == nil {
		return nil
	}
	sections := make([]PageSection, 0, len(template.DesignBlocks))
	for _, block := range template.DesignBlocks {
		settings := block.Settings.Clone()
		translations := []Translation{}
		if translation, ok := ResolveTranslation(block.Translations, languageID); ok {
			translations = append(translations, cloneTranslation(translation))
		}
		sections = append(sections, PageSection{
			ID:           c.sectionID(),
			Type:         block.BlockType,
			Order:        block.Order,
			IsActive:     true,
			Layout:       settings.Layout,
			Style:        settings.Style,
			Responsive:   settings.Responsive,
			Animation:    settings.Animation,
			Content:      settings.Content,
			Custom:       settings.Custom,
			PageID:       "",
			Translations: translations,
		})
	}

	c.metrics.SectionsConverted(languageID, len(sections))
	c.logger.Debug("template.converted",
		"template_id", template.ID.String(),
		"language", languageID,
		"sections", len(sections),
	)
	return sections
}

// AttachSections returns copies of sections owned by pageID.
func AttachSections(sections []PageSection, pageID string) []PageSection {
	out := make([]PageSection, len(sections))
	for i, section := range sections {
		section.PageID = pageID
		out[i] = section
	}
	return out
}
