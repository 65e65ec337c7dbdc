package blocks

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/turningtides/go-pagebuilder/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

var catalogSchema = validation.MustCompile(catalogSchemaJSON)

var ErrManifestEmpty = errors.New("blocks: manifest is empty")

// Manifest is the on-disk shape of an additional block catalog.
type Manifest struct {
	Version string        `json:"version,omitempty"`
	Blocks  []BlockConfig `json:"blocks"`
}

// ParseManifest decodes a YAML or JSON catalog, validates it against the
// catalog schema and returns its block configs.
func ParseManifest(data []byte) ([]BlockConfig, error) {
	if len(data) == 0 {
		return nil, ErrManifestEmpty
	}
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("blocks: decode manifest: %w", err)
	}
	if document == nil {
		return nil, ErrManifestEmpty
	}
	if err := catalogSchema.Validate(document); err != nil {
		return nil, fmt.Errorf("blocks: invalid manifest: %w", err)
	}

	// yaml decodes into generic maps; the JSON round trip maps them onto
	// the typed configs using their json tags.
	encoded, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("blocks: encode manifest: %w", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(encoded, &manifest); err != nil {
		return nil, fmt.Errorf("blocks: decode manifest: %w", err)
	}
	return manifest.Blocks, nil
}

// LoadManifestFile reads and parses a catalog file from fsys.
func LoadManifestFile(fsys fs.FS, name string) ([]BlockConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("blocks: read manifest %s: %w", name, err)
	}
	return ParseManifest(data)
}
