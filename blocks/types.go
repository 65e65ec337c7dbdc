package blocks

import (
	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/util"
)

// Block type identifiers of the built-in catalog. Stored templates reference
// them verbatim.
const (
	TypeNavigation      = "NAVIGATION"
	TypeHero            = "HERO"
	TypeHeading         = "HEADING"
	TypeFeaturedContent = "FEATURED_CONTENT"
	TypeTestimonials    = "TESTIMONIALS"
	TypeCTA             = "CTA"
	TypeFooter          = "FOOTER"
	TypeBreadcrumb      = "BREADCRUMB"
	TypeArticleBody     = "ARTICLE_BODY"
	TypeSidebar         = "SIDEBAR"
	TypeSubscription    = "SUBSCRIPTION"
	TypeTeamGrid        = "TEAM_GRID"
	TypeStoryCarousel   = "STORY_CAROUSEL"
	TypeGrantmakingNav  = "GRANTMAKING_NAV"
)

// Settings category names.
const (
	CategoryLayout     = "layout"
	CategoryStyle      = "style"
	CategoryResponsive = "responsive"
	CategoryAnimation  = "animation"
	CategoryContent    = "content"
	CategoryCustom     = "custom"
)

// Category is an open bag of named fields for one settings category.
type Category map[string]any

// Clone deep-copies the category. A nil category stays nil.
func (c Category) Clone() Category {
	if c == nil {
		return nil
	}
	return Category(util.CloneAnyMap(c))
}

// String returns the field as a string when present and of string type.
func (c Category) String(key string) (string, bool) {
	value, ok := c[key].(string)
	return value, ok
}

// Map returns a nested object field.
func (c Category) Map(key string) (map[string]any, bool) {
	switch typed := c[key].(type) {
	case map[string]any:
		return typed, true
	case Category:
		return typed, true
	}
	return nil, false
}

// Has reports whether the field is defined.
func (c Category) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// DefaultSettings holds the registry defaults of a block type.
type DefaultSettings struct {
	Layout     Category `json:"layout,omitempty" yaml:"layout,omitempty"`
	Style      Category `json:"style,omitempty" yaml:"style,omitempty"`
	Responsive Category `json:"responsive,omitempty" yaml:"responsive,omitempty"`
	Animation  Category `json:"animation,omitempty" yaml:"animation,omitempty"`
	Content    Category `json:"content,omitempty" yaml:"content,omitempty"`
}

// Clone deep-copies every category.
func (d DefaultSettings) Clone() DefaultSettings {
	return DefaultSettings{
		Layout:     d.Layout.Clone(),
		Style:      d.Style.Clone(),
		Responsive: d.Responsive.Clone(),
		Animation:  d.Animation.Clone(),
		Content:    d.Content.Clone(),
	}
}

// Settings is the merged configuration of one block instance.
type Settings struct {
	Layout     Category `json:"layout"`
	Style      Category `json:"style"`
	Responsive Category `json:"responsive"`
	Animation  Category `json:"animation"`
	Content    Category `json:"content"`
	Custom     Category `json:"custom"`
}

// Clone deep-copies every category.
func (s Settings) Clone() Settings {
	return Settings{
		Layout:     s.Layout.Clone(),
		Style:      s.Style.Clone(),
		Responsive: s.Responsive.Clone(),
		Animation:  s.Animation.Clone(),
		Content:    s.Content.Clone(),
		Custom:     s.Custom.Clone(),
	}
}

// Variant is a named partial override bundle for a block type.
type Variant struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name,omitempty" yaml:"name,omitempty"`
	LayoutOverrides Category `json:"layoutOverrides,omitempty" yaml:"layoutOverrides,omitempty"`
	StyleOverrides  Category `json:"styleOverrides,omitempty" yaml:"styleOverrides,omitempty"`
	ContentDefaults Category `json:"contentDefaults,omitempty" yaml:"contentDefaults,omitempty"`
}

// Clone deep-copies the variant.
func (v Variant) Clone() Variant {
	return Variant{
		ID:              v.ID,
		Name:            v.Name,
		LayoutOverrides: v.LayoutOverrides.Clone(),
		StyleOverrides:  v.StyleOverrides.Clone(),
		ContentDefaults: v.ContentDefaults.Clone(),
	}
}

// PreviewData is the demo content used as a fallback translation.
type PreviewData struct {
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Content  string         `json:"content,omitempty" yaml:"content,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// BlockConfig is a registry entry keyed by Type.
type BlockConfig struct {
	ID              uuid.UUID       `json:"id" yaml:"-"`
	Type            string          `json:"type" yaml:"type"`
	Name            string          `json:"name" yaml:"name"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Category        string          `json:"category,omitempty" yaml:"category,omitempty"`
	DefaultSettings DefaultSettings `json:"defaultSettings" yaml:"defaultSettings"`
	Variants        []Variant       `json:"variants,omitempty" yaml:"variants,omitempty"`
	PreviewData     PreviewData     `json:"previewData" yaml:"previewData"`
}

// Clone deep-copies the config.
func (c BlockConfig) Clone() BlockConfig {
	out := c
	out.DefaultSettings = c.DefaultSettings.Clone()
	if c.Variants != nil {
		out.Variants = make([]Variant, len(c.Variants))
		for i, variant := range c.Variants {
			out.Variants[i] = variant.Clone()
		}
	}
	out.PreviewData.Metadata = util.CloneAnyMap(c.PreviewData.Metadata)
	return out
}

// FindVariant returns the variant with the given id.
func (c BlockConfig) FindVariant(id string) (Variant, bool) {
	if id == "" {
		return Variant{}, false
	}
	for _, variant := range c.Variants {
		if variant.ID == id {
			return variant, true
		}
	}
	return Variant{}, false
}
