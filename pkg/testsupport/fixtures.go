package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFixture reads a test fixture such as a catalog or brand-kit manifest.
func LoadFixture(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixture %s: %w", path, err)
	}
	return data, nil
}

// LoadGolden decodes a JSON golden file into v.
func LoadGolden(path string, v any) error {
	data, err := LoadFixture(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("testsupport: decode golden %s: %w", path, err)
	}
	return nil
}
