package templates

import "github.com/turningtides/go-pagebuilder/internal/util"

// CloneTemplate returns a deep copy sharing no mutable state with template.
func CloneTemplate(template *EnhancedTemplate) *EnhancedTemplate {
	if template == nil {
		return nil
	}
	out := *template
	out.DesignBlocks = cloneDesignBlocks(template.DesignBlocks)
	if template.Tags != nil {
		out.Tags = make([]string, len(template.Tags))
		copy(out.Tags, template.Tags)
	}
	return &out
}

func cloneDesignBlocks(designBlocks []DesignBlock) []DesignBlock {
	if designBlocks == nil {
		return nil
	}
	out := make([]DesignBlock, len(designBlocks))
	for i, block := range designBlocks {
		out[i] = cloneDesignBlock(block)
	}
	return out
}

func cloneDesignBlock(block DesignBlock) DesignBlock {
	out := block
	out.Settings = block.Settings.Clone()
	if block.Translations != nil {
		out.Translations = make([]Translation, len(block.Translations))
		for i, translation := range block.Translations {
			out.Translations[i] = cloneTranslation(translation)
		}
	}
	return out
}

func cloneTranslation(translation Translation) Translation {
	out := translation
	out.Title = cloneString(translation.Title)
	out.Subtitle = cloneString(translation.Subtitle)
	out.Content = cloneString(translation.Content)
	out.Metadata = util.CloneAnyMap(translation.Metadata)
	return out
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
