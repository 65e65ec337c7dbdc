package templates

import (
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/logging"
	"github.com/turningtides/go-pagebuilder/internal/util"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// DefaultVersion is the version assigned to newly composed templates.
const DefaultVersion = "1.0.0"

// DefaultTemplateName names templates composed without a name.
const DefaultTemplateName = "Untitled Template"

// Metric sources for composed templates.
const (
	SourceComposer = "composer"
	SourceBuilder  = "builder"
	SourceRecipe   = "recipe"
)

// DefaultLayout is the composition layout used when meta does not set one.
func DefaultLayout() Layout {
	return Layout{Type: "full-width", ContainerWidth: "1200px", Spacing: "normal"}
}

// DefaultBrandkitSettings applies everything and preserves nothing.
func DefaultBrandkitSettings() BrandkitSettings {
	return BrandkitSettings{
		ApplyColors:     true,
		ApplyTypography: true,
		ApplySpacing:    true,
	}
}

// Composer turns block requests into templates and runs the template
// transforms (brand kit, conversion, cloning). All methods are pure with
// respect to their inputs and safe for concurrent use.
type Composer struct {
	registry *blocks.Registry

	now        func() time.Time
	templateID IDGenerator
	sectionID  IDGenerator
	logger     interfaces.Logger
	metrics    interfaces.TemplateMetrics

	defaultLayout  Layout
	defaultVersion string
}

// NewComposer builds a composer over registry. A nil registry uses the
// built-in catalog.
func NewComposer(registry *blocks.Registry, opts ...ComposerOption) *Composer {
	c := defaultComposer()
	c.registry = registry
	if c.registry == nil {
		c.registry = blocks.DefaultRegistry()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Registry exposes the block registry the composer resolves against.
func (c *Composer) Registry() *blocks.Registry {
	return c.registry
}

type resolvedRequest struct {
	request BlockRequest
	config  blocks.BlockConfig
}

// CreateTemplateFromBlocks composes a template with one design block per
// request, in request order. Every block type is resolved before any output
// is produced; the first unregistered type fails the call with
// *UnknownBlockTypeError.
func (c *Composer) CreateTemplateFromBlocks(meta TemplateMeta, requests []BlockRequest, brandkitID string) (*EnhancedTemplate, error) {
	return c.compose(meta, requests, brandkitID, SourceComposer)
}

func (c *Composer) compose(meta TemplateMeta, requests []BlockRequest, brandkitID, source string) (*EnhancedTemplate, error) {
	resolved, err := c.resolve(requests)
	if err != nil {
		return nil, err
	}

	designBlocks := make([]DesignBlock, len(resolved))
	for i, item := range resolved {
		designBlocks[i] = composeBlock(i, item.request, item.config)
	}

	now := c.now()
	layout := c.defaultLayout
	if meta.Layout != nil {
		layout = *meta.Layout
	}
	name := util.FirstNonEmpty(strings.TrimSpace(meta.Name), DefaultTemplateName)
	template := &EnhancedTemplate{
		ID:               c.templateID(),
		Name:             name,
		Slug:             Slugify(name),
		Description:      meta.Description,
		Category:         meta.Category,
		Subcategory:      meta.Subcategory,
		DesignBlocks:     designBlocks,
		Layout:           layout,
		BrandkitID:       strings.TrimSpace(brandkitID),
		BrandkitSettings: DefaultBrandkitSettings(),
		Difficulty:       meta.Difficulty,
		Tags:             cloneTags(meta.Tags),
		Version:          util.FirstNonEmpty(meta.Version, c.defaultVersion),
		Author:           meta.Author,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	c.metrics.TemplateComposed(source, len(designBlocks))
	logging.WithTemplateContext(c.logger, template.ID.String(), "", "").Debug("template.composed",
		"name", template.Name,
		"blocks", len(designBlocks),
		"source", source,
	)
	return template, nil
}

func (c *Composer) resolve(requests []BlockRequest) ([]resolvedRequest, error) {
	resolved := make([]resolvedRequest, 0, len(requests))
	for i, request := range requests {
		config, ok := c.registry.Lookup(request.BlockType)
		if !ok {
			c.metrics.UnknownBlockType(request.BlockType)
			c.logger.Warn("template.unknown_block_type", "block_type", request.BlockType, "index", i)
			return nil, &UnknownBlockTypeError{BlockType: request.BlockType, Index: i}
		}
		if request.VariantID != "" {
			if _, found := config.FindVariant(request.VariantID); !found {
				c.metrics.VariantMissed(request.BlockType)
				c.logger.Debug("template.variant_missing",
					"block_type", request.BlockType,
					"variant_id", request.VariantID,
				)
			}
		}
		resolved = append(resolved, resolvedRequest{request: request, config: config})
	}
	return resolved, nil
}

func composeBlock(order int, request BlockRequest, config blocks.BlockConfig) DesignBlock {
	content := request.Content
	if content == nil {
		content = &BlockContent{}
	}
	return DesignBlock{
		BlockType:    config.Type,
		VariantID:    request.VariantID,
		Order:        order,
		Settings:     blocks.MergeSettings(config, request.VariantID, request.CustomSettings, content.Payload()),
		Translations: []Translation{defaultTranslation(config, content)},
	}
}

func defaultTranslation(config blocks.BlockConfig, content *BlockContent) Translation {
	title := util.FirstNonEmpty(content.Title, config.Name)
	text := util.FirstNonEmpty(content.Text, config.PreviewData.Content)

	metadata := content.Metadata
	if metadata == nil {
		metadata = config.PreviewData.Metadata
	}
	metadata = util.CloneAnyMap(metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}

	translation := Translation{
		LanguageID: DefaultLanguage,
		Title:      &title,
		Content:    &text,
		Metadata:   metadata,
	}
	if strings.TrimSpace(content.Subtitle) != "" {
		subtitle := content.Subtitle
		translation.Subtitle = &subtitle
	}
	return translation
}

// Slugify derives a template slug from its name.
func Slugify(name string) string {
	normalized, err := slug.Normalize(name)
	if err == nil && normalized != "" {
		return normalized
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// cloneTags copies tags, dropping blanks.
func cloneTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
