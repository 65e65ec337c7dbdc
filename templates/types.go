package templates

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/blocks"
	"github.com/uptrace/bun"
)

// DefaultLanguage is the language of the translation created at composition.
const DefaultLanguage = "en"

// Translation is the per-language content of a design block or page section.
type Translation struct {
	LanguageID string         `json:"languageId"`
	Title      *string        `json:"title,omitempty"`
	Subtitle   *string        `json:"subtitle,omitempty"`
	Content    *string        `json:"content,omitempty"`
	Metadata   map[string]any `json:"metadata"`
}

// DesignBlock is one block instance inside a template.
type DesignBlock struct {
	BlockType    string          `json:"blockType"`
	VariantID    string          `json:"variantId,omitempty"`
	Order        int             `json:"order"`
	Settings     blocks.Settings `json:"settings"`
	Translations []Translation   `json:"translations"`
}

// Layout is the composition-level layout descriptor.
type Layout struct {
	Type           string `json:"type"`
	ContainerWidth string `json:"containerWidth"`
	Spacing        string `json:"spacing"`
}

// BrandkitSettings toggles which brand-kit fields are applied.
type BrandkitSettings struct {
	ApplyColors            bool `json:"applyColors"`
	ApplyTypography        bool `json:"applyTypography"`
	ApplySpacing           bool `json:"applySpacing"`
	PreserveCustomizations bool `json:"preserveCustomizations"`
}

// Author identifies who created a template.
type Author struct {
	ID   string `bun:"id" json:"id"`
	Name string `bun:"name" json:"name"`
}

// EnhancedTemplate is an ordered collection of design blocks plus layout and
// catalog metadata.
type EnhancedTemplate struct {
	bun.BaseModel `bun:"table:page_templates,alias:pt"`

	ID               uuid.UUID        `bun:",pk,type:uuid" json:"id"`
	Name             string           `bun:"name,notnull" json:"name"`
	Slug             string           `bun:"slug,notnull" json:"slug"`
	Description      string           `bun:"description" json:"description,omitempty"`
	Category         string           `bun:"category" json:"category,omitempty"`
	Subcategory      string           `bun:"subcategory" json:"subcategory,omitempty"`
	DesignBlocks     []DesignBlock    `bun:"design_blocks,type:jsonb,notnull" json:"designBlocks"`
	Layout           Layout           `bun:"layout,type:jsonb" json:"layout"`
	BrandkitID       string           `bun:"brandkit_id" json:"brandkitId,omitempty"`
	BrandkitSettings BrandkitSettings `bun:"brandkit_settings,type:jsonb" json:"brandkitSettings"`
	Difficulty       string           `bun:"difficulty" json:"difficulty,omitempty"`
	Tags             []string         `bun:"tags,type:jsonb" json:"tags"`
	Version          string           `bun:"version" json:"version"`
	DownloadCount    int              `bun:"download_count,notnull,default:0" json:"downloadCount"`
	Rating           float64          `bun:"rating,notnull,default:0" json:"rating"`
	RatingCount      int              `bun:"rating_count,notnull,default:0" json:"ratingCount"`
	Author           Author           `bun:"embed:author_" json:"author"`
	CreatedAt        time.Time        `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt        time.Time        `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// PageSection is the render-ready unit derived from a design block for one
// language.
type PageSection struct {
	ID           uuid.UUID       `json:"id"`
	Type         string          `json:"type"`
	Order        int             `json:"order"`
	IsActive     bool            `json:"isActive"`
	Layout       blocks.Category `json:"layout"`
	Style        blocks.Category `json:"style"`
	Responsive   blocks.Category `json:"responsive"`
	Animation    blocks.Category `json:"animation"`
	Content      blocks.Category `json:"content"`
	Custom       blocks.Category `json:"custom"`
	PageID       string          `json:"pageId"`
	Translations []Translation   `json:"translations"`
}

// TemplateMeta carries the caller-provided descriptive fields of a new
// template. Zero values fall back to composer defaults.
type TemplateMeta struct {
	Name        string
	Description string
	Category    string
	Subcategory string
	Difficulty  string
	Tags        []string
	Version     string
	Layout      *Layout
	Author      Author
}

// BlockContent is the direct content payload of a block request. Empty
// strings are treated as not set.
type BlockContent struct {
	Title    string
	Subtitle string
	Text     string
	Metadata map[string]any
	// Extra holds additional content-category fields.
	Extra map[string]any
}

// Payload returns the fields merged last into the content category.
func (c *BlockContent) Payload() blocks.Category {
	if c == nil {
		return nil
	}
	payload := blocks.Category{}
	for key, value := range c.Extra {
		payload[key] = value
	}
	if strings.TrimSpace(c.Title) != "" {
		payload["title"] = c.Title
	}
	if strings.TrimSpace(c.Subtitle) != "" {
		payload["subtitle"] = c.Subtitle
	}
	if strings.TrimSpace(c.Text) != "" {
		payload["content"] = c.Text
	}
	return payload
}

// BlockRequest asks the composer for one design block.
type BlockRequest struct {
	BlockType      string
	VariantID      string
	CustomSettings *blocks.Settings
	Content        *BlockContent
}

// ApplyBrandkitOptions selects what a brand kit overwrites. A nil field
// means true, except PreserveCustomizations which is stored as given.
type ApplyBrandkitOptions struct {
	ApplyColors            *bool
	ApplyTypography        *bool
	ApplySpacing           *bool
	PreserveCustomizations *bool
}

// Flag returns a pointer to v for use in option structs.
func Flag(v bool) *bool {
	return &v
}

// DesignBlockChange patches the design block at Index of a cloned template.
type DesignBlockChange struct {
	Index     int
	VariantID *string
	// Settings categories that are non-nil replace the block's category.
	Settings *blocks.Settings
}

// CloneModifications customises a cloned template.
type CloneModifications struct {
	Name               string
	AuthorID           string
	DesignBlockChanges []DesignBlockChange
}
