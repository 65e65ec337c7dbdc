package templates

import pbtemplates "github.com/turningtides/go-pagebuilder/templates"

type (
	Translation          = pbtemplates.Translation
	DesignBlock          = pbtemplates.DesignBlock
	Layout               = pbtemplates.Layout
	BrandkitSettings     = pbtemplates.BrandkitSettings
	Author               = pbtemplates.Author
	EnhancedTemplate     = pbtemplates.EnhancedTemplate
	PageSection          = pbtemplates.PageSection
	TemplateMeta         = pbtemplates.TemplateMeta
	BlockContent         = pbtemplates.BlockContent
	BlockRequest         = pbtemplates.BlockRequest
	ApplyBrandkitOptions = pbtemplates.ApplyBrandkitOptions
	DesignBlockChange    = pbtemplates.DesignBlockChange
	CloneModifications   = pbtemplates.CloneModifications
)

const DefaultLanguage = pbtemplates.DefaultLanguage

var Flag = pbtemplates.Flag
