package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	pbblocks "github.com/turningtides/go-pagebuilder/blocks"
	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
	templatescmd "github.com/turningtides/go-pagebuilder/internal/commands/templates"
	"github.com/turningtides/go-pagebuilder/internal/templates"
)

// BlocksCmd lists registered block types, or prints one block config.
type BlocksCmd struct {
	Type string `arg:"" optional:"" help:"Block type to print in full."`
}

func (c *BlocksCmd) Run(g *Globals) error {
	registry := g.Module.Registry()
	if blockType := strings.TrimSpace(c.Type); blockType != "" {
		config, ok := registry.Lookup(strings.ToUpper(blockType))
		if !ok {
			return fmt.Errorf("%w: %s", templates.ErrUnknownBlockType, blockType)
		}
		return writeJSON(g.Out, config)
	}

	type summary struct {
		Type     string   `json:"type"`
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Variants []string `json:"variants,omitempty"`
	}
	out := make([]summary, 0, registry.Len())
	for _, config := range registry.List() {
		entry := summary{Type: config.Type, Name: config.Name, Category: config.Category}
		for _, variant := range config.Variants {
			entry.Variants = append(entry.Variants, variant.ID)
		}
		out = append(out, entry)
	}
	return writeJSON(g.Out, out)
}

// RecipeCmd builds and stores a template from a recipe.
type RecipeCmd struct {
	Recipe   string `arg:"" enum:"homepage,blog" help:"Recipe name (homepage or blog)."`
	Name     string `arg:"" help:"Template name."`
	Variant  string `help:"Cosmetic variant tag recorded on every block."`
	Author   string `help:"Author id."`
	Brandkit string `short:"b" help:"Brand kit manifest to apply." type:"existingfile"`
	Sections string `help:"Print page sections for this language instead of the template."`
	PageID   string `help:"Page id attached to printed sections."`
}

func (c *RecipeCmd) Run(g *Globals) error {
	ctx := context.Background()
	service := g.Module.Templates()

	var template *templates.EnhancedTemplate
	capture := func(_ context.Context, tpl *templates.EnhancedTemplate) { template = tpl }

	create := templatescmd.NewCreateFromRecipeHandler(service, g.Logger, capture)
	if err := create.Execute(ctx, templatescmd.CreateFromRecipeCommand{
		Recipe:   c.Recipe,
		Name:     c.Name,
		Variant:  c.Variant,
		AuthorID: c.Author,
	}); err != nil {
		return err
	}

	if c.Brandkit != "" {
		kit, err := loadBrandkitFile(c.Brandkit)
		if err != nil {
			return err
		}
		apply := templatescmd.NewApplyBrandkitHandler(service, g.Logger, capture)
		if err := apply.Execute(ctx, templatescmd.ApplyBrandkitCommand{TemplateID: template.ID, Kit: kit}); err != nil {
			return err
		}
	}

	return printTemplate(ctx, g, template, c.Sections, c.PageID)
}

// ComposeCmd composes a template from a YAML or JSON blocks file, or from a
// Markdown article whose frontmatter carries the blocks.
type ComposeCmd struct {
	File     string `arg:"" type:"existingfile" help:"Blocks file describing the template."`
	Brandkit string `short:"b" help:"Brand kit manifest to apply." type:"existingfile"`
	Sections string `help:"Print page sections for this language instead of the template."`
	PageID   string `help:"Page id attached to printed sections."`
}

type composeFile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Category    string         `yaml:"category"`
	Subcategory string         `yaml:"subcategory"`
	Difficulty  string         `yaml:"difficulty"`
	Tags        []string       `yaml:"tags"`
	Author      string         `yaml:"author"`
	Blocks      []composeBlock `yaml:"blocks"`
}

type composeBlock struct {
	Type     string           `yaml:"type"`
	Variant  string           `yaml:"variant"`
	Title    string           `yaml:"title"`
	Subtitle string           `yaml:"subtitle"`
	Content  string           `yaml:"content"`
	Settings *blocks.Settings `yaml:"settings"`
}

func (c *ComposeCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	file, err := parseComposeFile(c.File, data)
	if err != nil {
		return err
	}

	requests := make([]templates.BlockRequest, 0, len(file.Blocks))
	for _, block := range file.Blocks {
		request := templates.BlockRequest{
			BlockType:      strings.ToUpper(strings.TrimSpace(block.Type)),
			VariantID:      block.Variant,
			CustomSettings: block.Settings,
		}
		if block.Title != "" || block.Subtitle != "" || block.Content != "" {
			request.Content = &templates.BlockContent{Title: block.Title, Subtitle: block.Subtitle, Text: block.Content}
		}
		requests = append(requests, request)
	}

	ctx := context.Background()
	service := g.Module.Templates()
	var template *templates.EnhancedTemplate
	capture := func(_ context.Context, tpl *templates.EnhancedTemplate) { template = tpl }

	create := templatescmd.NewCreateTemplateHandler(service, g.Logger, capture)
	if err := create.Execute(ctx, templatescmd.CreateTemplateCommand{
		Meta: templates.TemplateMeta{
			Name:        file.Name,
			Description: file.Description,
			Category:    file.Category,
			Subcategory: file.Subcategory,
			Difficulty:  file.Difficulty,
			Tags:        file.Tags,
			Author:      templates.Author{ID: file.Author},
		},
		Blocks: requests,
	}); err != nil {
		return err
	}

	if c.Brandkit != "" {
		kit, err := loadBrandkitFile(c.Brandkit)
		if err != nil {
			return err
		}
		apply := templatescmd.NewApplyBrandkitHandler(service, g.Logger, capture)
		if err := apply.Execute(ctx, templatescmd.ApplyBrandkitCommand{TemplateID: template.ID, Kit: kit}); err != nil {
			return err
		}
	}

	return printTemplate(ctx, g, template, c.Sections, c.PageID)
}

func parseComposeFile(name string, data []byte) (composeFile, error) {
	var file composeFile
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		body, err := frontmatter.Parse(bytes.NewReader(data), &file)
		if err != nil {
			return composeFile{}, fmt.Errorf("parse frontmatter %s: %w", name, err)
		}
		html, err := renderMarkdown(body)
		if err != nil {
			return composeFile{}, err
		}
		if strings.TrimSpace(html) != "" {
			file.attachArticle(html)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return composeFile{}, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return file, nil
}

// attachArticle places rendered body HTML on the first article body block,
// appending one when the frontmatter lists none.
func (f *composeFile) attachArticle(html string) {
	for i := range f.Blocks {
		if strings.EqualFold(strings.TrimSpace(f.Blocks[i].Type), pbblocks.TypeArticleBody) {
			f.Blocks[i].Content = html
			return
		}
	}
	f.Blocks = append(f.Blocks, composeBlock{Type: pbblocks.TypeArticleBody, Content: html})
}

func renderMarkdown(body []byte) (string, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// BrandkitCmd loads and prints a brand kit.
type BrandkitCmd struct {
	Path    string `arg:"" help:"Brand kit manifest, or a go-theme manifest with --theme."`
	Theme   bool   `help:"Treat the path as a go-theme manifest and convert its tokens."`
	Variant string `help:"Theme variant to read tokens from."`
}

func (c *BrandkitCmd) Run(g *Globals) error {
	var (
		kit brandkit.BrandKit
		err error
	)
	if c.Theme {
		kit, err = g.Module.LoadThemeBrandkit(c.Path, c.Variant)
	} else {
		kit, err = loadBrandkitFile(c.Path)
	}
	if err != nil {
		return err
	}
	return writeJSON(g.Out, kit)
}

func loadBrandkitFile(path string) (brandkit.BrandKit, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return brandkit.LoadFile(os.DirFS(dir), name)
}

func printTemplate(ctx context.Context, g *Globals, template *templates.EnhancedTemplate, language, pageID string) error {
	if template == nil {
		return templates.ErrTemplateRequired
	}
	if strings.TrimSpace(language) == "" {
		return writeJSON(g.Out, template)
	}

	var sections []templates.PageSection
	convert := templatescmd.NewConvertTemplateHandler(g.Module.Templates(), g.Logger, func(_ context.Context, got []templates.PageSection) {
		sections = got
	})
	if err := convert.Execute(ctx, templatescmd.ConvertTemplateCommand{
		TemplateID: template.ID,
		LanguageID: language,
		PageID:     pageID,
	}); err != nil {
		return err
	}
	return writeJSON(g.Out, sections)
}
