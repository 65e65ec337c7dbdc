package brandkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ManifestLoader loads a go-theme manifest from a theme directory.
type ManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsManifestLoader struct{}

func (fsManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" || cleaned == "." {
		return nil, fmt.Errorf("brandkit: theme path required")
	}
	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

// ThemeSource derives brand kits from go-theme manifests, so a site theme and
// its page templates share one palette.
type ThemeSource struct {
	registry       *gotheme.MemoryRegistry
	loader         ManifestLoader
	defaultVariant string

	mu     sync.Mutex
	loaded map[string]string
}

// NewThemeSource builds a source. A nil loader reads manifests from disk.
func NewThemeSource(loader ManifestLoader, defaultVariant string) *ThemeSource {
	if loader == nil {
		loader = fsManifestLoader{}
	}
	return &ThemeSource{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		defaultVariant: strings.TrimSpace(defaultVariant),
		loaded:         map[string]string{},
	}
}

// Load registers the theme at themePath (once) and converts the tokens of
// the selected variant into a brand kit.
func (s *ThemeSource) Load(themePath, variant string) (BrandKit, error) {
	name, err := s.ensureManifest(themePath)
	if err != nil {
		return BrandKit{}, err
	}

	resolvedVariant := strings.TrimSpace(variant)
	if resolvedVariant == "" {
		resolvedVariant = s.defaultVariant
	}
	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   name,
		DefaultVariant: s.defaultVariant,
	}
	selection, err := selector.Select(name, resolvedVariant)
	if err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: select theme %s: %w", name, err)
	}

	kitName := name
	if resolvedVariant != "" {
		kitName = name + " " + resolvedVariant
	}
	kit, err := FromTokens(kitName, selection.Tokens())
	if err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: theme %s: %w", name, err)
	}
	return kit, nil
}

func (s *ThemeSource) ensureManifest(themePath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, ok := s.loaded[themePath]; ok {
		return name, nil
	}
	manifest, err := s.loader.Load(themePath)
	if err != nil {
		return "", fmt.Errorf("brandkit: load theme manifest from %s: %w", themePath, err)
	}
	normalized := *manifest
	normalized.Name = strings.TrimSpace(normalized.Name)
	if normalized.Name == "" {
		normalized.Name = filepath.Base(filepath.Clean(themePath))
	}
	if err := s.registry.Register(&normalized); err != nil {
		return "", fmt.Errorf("brandkit: register theme manifest: %w", err)
	}
	s.loaded[themePath] = normalized.Name
	return normalized.Name, nil
}
