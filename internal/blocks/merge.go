package blocks

import "maps"

// MergeSettings resolves the settings of one block instance. Per category the
// layers are applied in order, later keys winning:
//
//	defaults -> variant overrides -> custom -> content payload (content only)
//
// The merge is shallow: nested values are replaced wholesale. An unknown
// variantID is ignored. Custom has no default or variant layer.
func MergeSettings(config BlockConfig, variantID string, custom *Settings, content Category) Settings {
	variant, _ := config.FindVariant(variantID)

	var overrides Settings
	if custom != nil {
		overrides = *custom
	}

	merged := Settings{
		Layout:     mergeCategories(config.DefaultSettings.Layout, variant.LayoutOverrides, overrides.Layout),
		Style:      mergeCategories(config.DefaultSettings.Style, variant.StyleOverrides, overrides.Style),
		Responsive: mergeCategories(config.DefaultSettings.Responsive, overrides.Responsive),
		Animation:  mergeCategories(config.DefaultSettings.Animation, overrides.Animation),
		Content:    mergeCategories(config.DefaultSettings.Content, variant.ContentDefaults, overrides.Content, content),
		Custom:     mergeCategories(overrides.Custom),
	}
	return merged
}

// mergeCategories spreads each layer over the previous one. Layers are
// deep-copied first so the result never aliases registry or caller state.
func mergeCategories(layers ...Category) Category {
	out := Category{}
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		maps.Copy(out, layer.Clone())
	}
	return out
}

// OverrideCategories replaces whole categories of base with the non-nil
// categories of patch.
func OverrideCategories(base Settings, patch Settings) Settings {
	out := base.Clone()
	if patch.Layout != nil {
		out.Layout = patch.Layout.Clone()
	}
	if patch.Style != nil {
		out.Style = patch.Style.Clone()
	}
	if patch.Responsive != nil {
		out.Responsive = patch.Responsive.Clone()
	}
	if patch.Animation != nil {
		out.Animation = patch.Animation.Clone()
	}
	if patch.Content != nil {
		out.Content = patch.Content.Clone()
	}
	if patch.Custom != nil {
		out.Custom = patch.Custom.Clone()
	}
	return out
}
