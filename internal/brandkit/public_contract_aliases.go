package brandkit

import pbbrandkit "github.com/turningtides/go-pagebuilder/brandkit"

type (
	BrandKit   = pbbrandkit.BrandKit
	Colors     = pbbrandkit.Colors
	FontStyle  = pbbrandkit.FontStyle
	Typography = pbbrandkit.Typography
	Spacing    = pbbrandkit.Spacing
)
