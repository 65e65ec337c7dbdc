package templates

import (
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
)

const copySuffix = " (Copy)"

// Clone returns an independent copy of template with a new identity and
// reset usage metadata. Design block changes address blocks by index;
// out-of-range indexes are ignored.
func (c *Composer) Clone(template *EnhancedTemplate, modifications CloneModifications) (*EnhancedTemplate, error) {
	if template == nil {
		return nil, ErrTemplateRequired
	}

	out := CloneTemplate(template)
	now := c.now()
	out.ID = c.templateID()
	out.DownloadCount = 0
	out.Rating = 0
	out.RatingCount = 0
	out.CreatedAt = now
	out.UpdatedAt = now

	out.Name = template.Name + copySuffix
	if name := strings.TrimSpace(modifications.Name); name != "" {
		out.Name = name
	}
	out.Slug = Slugify(out.Name)

	if authorID := strings.TrimSpace(modifications.AuthorID); authorID != "" {
		out.Author.ID = authorID
	}

	for _, change := range modifications.DesignBlockChanges {
		if change.Index < 0 || change.Index >= len(out.DesignBlocks) {
			c.logger.Debug("template.clone_change_skipped", "index", change.Index, "blocks", len(out.DesignBlocks))
			continue
		}
		block := &out.DesignBlocks[change.Index]
		if change.VariantID != nil {
			block.VariantID = *change.VariantID
		}
		if change.Settings != nil {
			block.Settings = blocks.OverrideCategories(block.Settings, *change.Settings)
		}
	}

	c.metrics.TemplateCloned()
	c.logger.Debug("template.cloned", "template_id", out.ID.String(), "source_id", template.ID.String())
	return out, nil
}
