package pagebuilder

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
	templatescmd "github.com/turningtides/go-pagebuilder/internal/commands/templates"
	"github.com/turningtides/go-pagebuilder/internal/di"
	"github.com/turningtides/go-pagebuilder/internal/templates"
)

// BlockRegistry exports the block registry.
type BlockRegistry = blocks.Registry

// Composer exports the template composer.
type Composer = templates.Composer

// Builder exports the fluent template builder.
type Builder = templates.Builder

// BlockOptions exports the per-block builder options.
type BlockOptions = templates.BlockOptions

// TemplateService exports the stored-template service contract.
type TemplateService = templates.Service

// CommandHandlers exports the template command handler set.
type CommandHandlers = templatescmd.Handlers

// ErrBrandkitNotFound is returned when no manifest exists for a brand kit name.
var ErrBrandkitNotFound = errors.New("pagebuilder: brand kit manifest not found")

var brandkitExtensions = []string{".yaml", ".yml", ".json"}

// Module is the top level page builder façade.
type Module struct {
	container *di.Container
}

// New constructs a page builder using cfg and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Close releases resources the module opened.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}

// Registry returns the block registry.
func (m *Module) Registry() *BlockRegistry {
	return m.container.BlockRegistry()
}

// Composer returns the template composer.
func (m *Module) Composer() *Composer {
	return m.container.Composer()
}

// Templates returns the stored-template service.
func (m *Module) Templates() TemplateService {
	return m.container.TemplateService()
}

// Builder starts an empty template builder over the module's registry.
func (m *Module) Builder() *Builder {
	return m.container.Composer().NewBuilder()
}

// Recipe starts a builder prefilled by the named recipe.
func (m *Module) Recipe(recipe, name, variant string) (*Builder, bool) {
	return templates.NewRecipe(m.container.Composer(), recipe, name, variant)
}

// Commands returns the template command handlers.
func (m *Module) Commands() *CommandHandlers {
	return m.container.CommandHandlers()
}

// ComposeForPage resolves block content from the content provider for
// pageID and languageID, then composes a template from the result.
func (m *Module) ComposeForPage(ctx context.Context, pageID, languageID string, meta templates.TemplateMeta, requests []templates.BlockRequest) (*templates.EnhancedTemplate, error) {
	resolved, err := m.container.ContentResolver().ResolveRequests(ctx, pageID, languageID, requests)
	if err != nil {
		return nil, err
	}
	return m.container.Composer().CreateTemplateFromBlocks(meta, resolved, "")
}

// LoadBrandkit reads the manifest named name from the configured brand kit directory.
func (m *Module) LoadBrandkit(name string) (brandkit.BrandKit, error) {
	fsys := m.container.BrandkitFS()
	if fsys == nil {
		return brandkit.BrandKit{}, ErrBrandkitNotFound
	}
	return loadBrandkit(fsys, name)
}

// LoadThemeBrandkit converts the tokens of a go-theme manifest into a brand kit.
func (m *Module) LoadThemeBrandkit(themePath, variant string) (brandkit.BrandKit, error) {
	return m.container.ThemeSource().Load(themePath, variant)
}

func loadBrandkit(fsys fs.FS, name string) (brandkit.BrandKit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return brandkit.BrandKit{}, ErrBrandkitNotFound
	}
	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range brandkitExtensions {
			candidates = append(candidates, name+ext)
		}
	}
	for _, candidate := range candidates {
		if _, err := fs.Stat(fsys, candidate); err != nil {
			continue
		}
		return brandkit.LoadFile(fsys, candidate)
	}
	return brandkit.BrandKit{}, ErrBrandkitNotFound
}
