package brandkit

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/turningtides/go-pagebuilder/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed brandkit.schema.json
var brandkitSchemaJSON []byte

var brandkitSchema = validation.MustCompile(brandkitSchemaJSON)

var ErrManifestEmpty = errors.New("brandkit: manifest is empty")

// ParseManifest decodes a YAML or JSON brand-kit document.
func ParseManifest(data []byte) (BrandKit, error) {
	if len(data) == 0 {
		return BrandKit{}, ErrManifestEmpty
	}
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: decode manifest: %w", err)
	}
	if document == nil {
		return BrandKit{}, ErrManifestEmpty
	}
	if err := brandkitSchema.Validate(document); err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: invalid manifest: %w", err)
	}
	coerceLineHeights(document)

	encoded, err := json.Marshal(document)
	if err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: encode manifest: %w", err)
	}
	var kit BrandKit
	if err := json.Unmarshal(encoded, &kit); err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: decode manifest: %w", err)
	}
	kit = Normalize(kit)
	if err := Validate(kit); err != nil {
		return BrandKit{}, err
	}
	return kit, nil
}

// LoadFile reads a brand-kit manifest from fsys.
func LoadFile(fsys fs.FS, name string) (BrandKit, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return BrandKit{}, fmt.Errorf("brandkit: read manifest %s: %w", name, err)
	}
	return ParseManifest(data)
}

// coerceLineHeights turns numeric line heights (1.5) into strings.
func coerceLineHeights(document any) {
	root, ok := document.(map[string]any)
	if !ok {
		return
	}
	typography, ok := root["typography"].(map[string]any)
	if !ok {
		return
	}
	for _, role := range []string{"heading", "body"} {
		font, ok := typography[role].(map[string]any)
		if !ok {
			continue
		}
		switch value := font["lineHeight"].(type) {
		case float64:
			font["lineHeight"] = strconv.FormatFloat(value, 'f', -1, 64)
		case int:
			font["lineHeight"] = strconv.Itoa(value)
		}
	}
}
