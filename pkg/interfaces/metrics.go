package interfaces

// TemplateMetrics records template composition activity.
type TemplateMetrics interface {
	TemplateComposed(source string, blocks int)
	UnknownBlockType(blockType string)
	VariantMissed(blockType string)
	BrandkitApplied(brandkitID string)
	SectionsConverted(languageID string, sections int)
	TemplateCloned()
}
