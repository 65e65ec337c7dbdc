package templates

import (
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/util"
)

// BlockOptions are the per-block inputs of Builder.AddBlock.
type BlockOptions struct {
	VariantID      string
	CustomSettings *blocks.Settings
	Content        *BlockContent
}

// Builder accumulates blocks and materialises templates through a Composer.
// Blocks cannot be removed once added. A Builder is not safe for concurrent
// use.
type Builder struct {
	composer   *Composer
	meta       TemplateMeta
	brandkitID string
	requests   []BlockRequest
	source     string
}

// NewBuilder creates a builder over registry.
func NewBuilder(registry *blocks.Registry, opts ...ComposerOption) *Builder {
	return NewComposer(registry, opts...).NewBuilder()
}

// NewBuilder creates a builder sharing the composer's registry and options.
func (c *Composer) NewBuilder() *Builder {
	return &Builder{composer: c, source: SourceBuilder}
}

// WithName sets the template name.
func (b *Builder) WithName(name string) *Builder {
	b.meta.Name = name
	return b
}

// WithDescription sets the template description.
func (b *Builder) WithDescription(description string) *Builder {
	b.meta.Description = description
	return b
}

// WithCategory sets the template category and subcategory.
func (b *Builder) WithCategory(category, subcategory string) *Builder {
	b.meta.Category = category
	b.meta.Subcategory = subcategory
	return b
}

// WithTags appends tags, skipping blanks and duplicates.
func (b *Builder) WithTags(tags ...string) *Builder {
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || containsTag(b.meta.Tags, tag) {
			continue
		}
		b.meta.Tags = append(b.meta.Tags, tag)
	}
	return b
}

// WithDifficulty sets the template difficulty.
func (b *Builder) WithDifficulty(difficulty string) *Builder {
	b.meta.Difficulty = difficulty
	return b
}

// WithLayout overrides the composition layout.
func (b *Builder) WithLayout(layout Layout) *Builder {
	b.meta.Layout = &layout
	return b
}

// WithBrandkit records the brand kit id on built templates.
func (b *Builder) WithBrandkit(brandkitID string) *Builder {
	b.brandkitID = brandkitID
	return b
}

// WithAuthorName sets the author name on built templates.
func (b *Builder) WithAuthorName(name string) *Builder {
	b.meta.Author.Name = name
	return b
}

// AddBlock appends a block. Unknown block types are reported by Build.
func (b *Builder) AddBlock(blockType string, options BlockOptions) *Builder {
	request := BlockRequest{
		BlockType: blockType,
		VariantID: options.VariantID,
	}
	if options.CustomSettings != nil {
		custom := options.CustomSettings.Clone()
		request.CustomSettings = &custom
	}
	if options.Content != nil {
		content := *options.Content
		content.Metadata = util.CloneAnyMap(options.Content.Metadata)
		content.Extra = util.CloneAnyMap(options.Content.Extra)
		request.Content = &content
	}
	b.requests = append(b.requests, request)
	return b
}

// Len returns the number of blocks added so far.
func (b *Builder) Len() int {
	return len(b.requests)
}

// Build composes a new template from the accumulated blocks. It can be
// called repeatedly; each call yields a template with a fresh id and an
// identical block list.
func (b *Builder) Build(authorID string) (*EnhancedTemplate, error) {
	meta := b.meta
	meta.Tags = append([]string(nil), b.meta.Tags...)
	meta.Author.ID = authorID
	return b.composer.compose(meta, b.requests, b.brandkitID, b.source)
}

func containsTag(tags []string, tag string) bool {
	for _, existing := range tags {
		if existing == tag {
			return true
		}
	}
	return false
}
