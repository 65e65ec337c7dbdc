package validation

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "count": {"type": "integer"}
  }
}`

func TestSchemaValidateAcceptsDocument(t *testing.T) {
	schema := MustCompile([]byte(testSchema))
	if err := schema.Validate(map[string]any{"name": "hero", "count": 2}); err != nil {
		t.Fatalf("expected document to validate, got %v", err)
	}
}

func TestSchemaValidateReportsIssues(t *testing.T) {
	schema := MustCompile([]byte(testSchema))
	err := schema.Validate(map[string]any{"count": "two"})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if len(Issues(err)) == 0 {
		t.Fatalf("expected issues, got none")
	}
	if !strings.Contains(err.Error(), "#") {
		t.Fatalf("expected location in error message, got %q", err.Error())
	}
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	if _, err := Compile([]byte(`{"type": 12}`)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}
