package templates

import (
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
	"github.com/turningtides/go-pagebuilder/internal/util"
)

// Style fields the brand kit overwrites.
const (
	styleBackground = "background"
	styleTextColor  = "textColor"
	styleLinkColor  = "linkColor"
	styleTypography = "typography"
	stylePadding    = "padding"
	styleMargin     = "margin"

	backgroundTypeColor = "color"

	paddingScaleStep = 4
	marginScaleStep  = 2
)

// ApplyBrandkit returns a copy of template with colors, typography and
// spacing overwritten from kit. Each group is applied unless its option is
// explicitly false. PreserveCustomizations is recorded but does not change
// what is overwritten. The input template is not modified.
func (c *Composer) ApplyBrandkit(template *EnhancedTemplate, kit brandkit.BrandKit, options ApplyBrandkitOptions) (*EnhancedTemplate, error) {
	if template == nil {
		return nil, ErrTemplateRequired
	}

	out := CloneTemplate(template)
	out.BrandkitID = kit.ID
	out.BrandkitSettings = overlaySettings(template.BrandkitSettings, options)

	applyColors := enabled(options.ApplyColors)
	applyTypography := enabled(options.ApplyTypography)
	applySpacing := enabled(options.ApplySpacing)

	for i := range out.DesignBlocks {
		block := &out.DesignBlocks[i]
		style := block.Settings.Style
		if style == nil {
			style = blocks.Category{}
		}
		if applyColors {
			applyBrandColors(style, kit)
		}
		if applyTypography {
			applyBrandTypography(style, block.BlockType, kit)
		}
		if applySpacing {
			applyBrandSpacing(style, kit)
		}
		if len(style) > 0 {
			block.Settings.Style = style
		}
	}
	out.UpdatedAt = c.now()

	c.metrics.BrandkitApplied(kit.ID)
	c.logger.Debug("template.brandkit_applied",
		"template_id", out.ID.String(),
		"brandkit_id", kit.ID,
		"colors", applyColors,
		"typography", applyTypography,
		"spacing", applySpacing,
	)
	return out, nil
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func overlaySettings(existing BrandkitSettings, options ApplyBrandkitOptions) BrandkitSettings {
	out := existing
	if options.ApplyColors != nil {
		out.ApplyColors = *options.ApplyColors
	}
	if options.ApplyTypography != nil {
		out.ApplyTypography = *options.ApplyTypography
	}
	if options.ApplySpacing != nil {
		out.ApplySpacing = *options.ApplySpacing
	}
	if options.PreserveCustomizations != nil {
		out.PreserveCustomizations = *options.PreserveCustomizations
	}
	return out
}

func applyBrandColors(style blocks.Category, kit brandkit.BrandKit) {
	if background, ok := style.Map(styleBackground); ok && background["type"] == backgroundTypeColor {
		if neutral, ok := kit.FirstNeutral(); ok {
			updated := util.CloneAnyMap(background)
			updated["color"] = neutral
			style[styleBackground] = updated
		}
	}
	if style.Has(styleTextColor) {
		if darkest, ok := kit.DarkestNeutral(); ok {
			style[styleTextColor] = darkest
		}
	}
	if style.Has(styleLinkColor) {
		if accent, ok := kit.PrimaryAccent(); ok {
			style[styleLinkColor] = accent
		}
	}
}

func applyBrandTypography(style blocks.Category, blockType string, kit brandkit.BrandKit) {
	typography := map[string]any{}
	if existing, ok := style.Map(styleTypography); ok {
		typography = util.CloneAnyMap(existing)
	}

	if isHeadingBlock(blockType) {
		heading := kit.Typography.Heading
		if heading.FontFamily != "" {
			typography["fontFamily"] = heading.FontFamily
		}
		if weight, ok := heading.FirstWeight(); ok {
			typography["fontWeight"] = weight
		}
	} else {
		body := kit.Typography.Body
		if body.FontFamily != "" {
			typography["fontFamily"] = body.FontFamily
		}
		// The first body weight doubles as the font size.
		if weight, ok := body.FirstWeight(); ok {
			typography["fontSize"] = weight
		}
		if body.LineHeight != "" {
			typography["lineHeight"] = body.LineHeight
		}
	}

	if len(typography) > 0 {
		style[styleTypography] = typography
	}
}

func isHeadingBlock(blockType string) bool {
	return strings.Contains(blockType, "HEADING") || strings.Contains(blockType, "HERO")
}

func applyBrandSpacing(style blocks.Category, kit brandkit.BrandKit) {
	if style.Has(stylePadding) {
		if step, ok := kit.SpacingStep(paddingScaleStep); ok {
			style[stylePadding] = step
		}
	}
	if style.Has(styleMargin) {
		if step, ok := kit.SpacingStep(marginScaleStep); ok {
			style[styleMargin] = step
		}
	}
}
