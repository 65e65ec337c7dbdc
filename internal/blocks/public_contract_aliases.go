package blocks

import pbblocks "github.com/turningtides/go-pagebuilder/blocks"

type (
	Category        = pbblocks.Category
	DefaultSettings = pbblocks.DefaultSettings
	Settings        = pbblocks.Settings
	Variant         = pbblocks.Variant
	PreviewData     = pbblocks.PreviewData
	BlockConfig     = pbblocks.BlockConfig
)
