package blocks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/identity"
)

var (
	ErrBlockTypeRequired   = errors.New("blocks: block type required")
	ErrBlockNameRequired   = errors.New("blocks: block name required")
	ErrDuplicateBlockType  = errors.New("blocks: block type already registered")
	ErrVariantIDRequired   = errors.New("blocks: variant id required")
	ErrDuplicateVariant    = errors.New("blocks: variant id already defined for block type")
	ErrVariantIncompatible = errors.New("blocks: variant overrides a category missing from block defaults")
)

// RegistrationError reports which config failed registry validation.
type RegistrationError struct {
	BlockType string
	VariantID string
	Err       error
}

func (e *RegistrationError) Error() string {
	if e.VariantID != "" {
		return fmt.Sprintf("%s (block %q, variant %q)", e.Err, e.BlockType, e.VariantID)
	}
	if e.BlockType != "" {
		return fmt.Sprintf("%s (block %q)", e.Err, e.BlockType)
	}
	return e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Registry is an immutable catalog of block configs keyed by block type.
// It is safe for concurrent reads; there is no mutation API.
type Registry struct {
	entries map[string]BlockConfig
	order   []string
}

// NewRegistry validates the configs and builds a registry. Configs are
// deep-copied so later changes by the caller are not observed.
func NewRegistry(configs ...BlockConfig) (*Registry, error) {
	registry := &Registry{
		entries: make(map[string]BlockConfig, len(configs)),
		order:   make([]string, 0, len(configs)),
	}
	for _, config := range configs {
		if err := registry.add(config); err != nil {
			return nil, err
		}
	}
	sort.Strings(registry.order)
	return registry, nil
}

// MustNewRegistry panics when the configs are invalid. Used for the built-in catalog.
func MustNewRegistry(configs ...BlockConfig) *Registry {
	registry, err := NewRegistry(configs...)
	if err != nil {
		panic(err)
	}
	return registry
}

// Extend returns a new registry holding the current entries plus configs.
// The receiver is left untouched.
func (r *Registry) Extend(configs ...BlockConfig) (*Registry, error) {
	all := r.List()
	all = append(all, configs...)
	return NewRegistry(all...)
}

func (r *Registry) add(config BlockConfig) error {
	blockType := strings.TrimSpace(config.Type)
	if blockType == "" {
		return &RegistrationError{Err: ErrBlockTypeRequired}
	}
	if strings.TrimSpace(config.Name) == "" {
		return &RegistrationError{BlockType: blockType, Err: ErrBlockNameRequired}
	}
	if _, exists := r.entries[blockType]; exists {
		return &RegistrationError{BlockType: blockType, Err: ErrDuplicateBlockType}
	}

	seen := make(map[string]struct{}, len(config.Variants))
	for _, variant := range config.Variants {
		if strings.TrimSpace(variant.ID) == "" {
			return &RegistrationError{BlockType: blockType, Err: ErrVariantIDRequired}
		}
		if _, dup := seen[variant.ID]; dup {
			return &RegistrationError{BlockType: blockType, VariantID: variant.ID, Err: ErrDuplicateVariant}
		}
		seen[variant.ID] = struct{}{}
		if !compatible(config.DefaultSettings, variant) {
			return &RegistrationError{BlockType: blockType, VariantID: variant.ID, Err: ErrVariantIncompatible}
		}
	}

	cloned := config.Clone()
	cloned.Type = blockType
	cloned.ID = identity.BlockConfigUUID(blockType)
	r.entries[blockType] = cloned
	r.order = append(r.order, blockType)
	return nil
}

func compatible(defaults DefaultSettings, variant Variant) bool {
	if len(variant.LayoutOverrides) > 0 && defaults.Layout == nil {
		return false
	}
	if len(variant.StyleOverrides) > 0 && defaults.Style == nil {
		return false
	}
	if len(variant.ContentDefaults) > 0 && defaults.Content == nil {
		return false
	}
	return true
}

// Lookup returns a copy of the config registered for blockType.
func (r *Registry) Lookup(blockType string) (BlockConfig, bool) {
	if r == nil {
		return BlockConfig{}, false
	}
	config, ok := r.entries[blockType]
	if !ok {
		return BlockConfig{}, false
	}
	return config.Clone(), true
}

// Has reports whether blockType is registered.
func (r *Registry) Has(blockType string) bool {
	if r == nil {
		return false
	}
	_, ok := r.entries[blockType]
	return ok
}

// Variant resolves a variant of a registered block type.
func (r *Registry) Variant(blockType, variantID string) (Variant, bool) {
	if r == nil {
		return Variant{}, false
	}
	config, ok := r.entries[blockType]
	if !ok {
		return Variant{}, false
	}
	variant, ok := config.FindVariant(variantID)
	if !ok {
		return Variant{}, false
	}
	return variant.Clone(), true
}

// List returns copies of every config sorted by block type.
func (r *Registry) List() []BlockConfig {
	if r == nil {
		return nil
	}
	out := make([]BlockConfig, 0, len(r.order))
	for _, blockType := range r.order {
		out = append(out, r.entries[blockType].Clone())
	}
	return out
}

// Types returns the registered block types in sorted order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Len returns the number of registered block types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
