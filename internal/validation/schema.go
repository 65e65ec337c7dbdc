package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: document failed schema validation")
)

// Issue captures a single validation failure.
type Issue struct {
	Location string
	Message  string
}

// DocumentError surfaces schema issues with their instance locations.
type DocumentError struct {
	Issues []Issue
}

func (e *DocumentError) Error() string {
	if len(e.Issues) == 0 {
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var docErr *DocumentError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	return []Issue{{Message: err.Error()}}
}

// Schema is a compiled JSON schema (draft 2020-12).
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile compiles a raw JSON schema document.
func Compile(raw []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile panics when the schema cannot be compiled. Used for embedded schemas.
func MustCompile(raw []byte) *Schema {
	schema, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return schema
}

// Validate checks a decoded document. Values decoded from YAML are normalised
// through a JSON round trip so integer and map types match the validator.
func (s *Schema) Validate(document any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	normalized, err := normalize(document)
	if err != nil {
		return &DocumentError{Issues: []Issue{{Message: err.Error()}}}
	}
	if err := s.compiled.Validate(normalized); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DocumentError{Issues: collectIssues(validationErr)}
		}
		return &DocumentError{Issues: []Issue{{Message: err.Error()}}}
	}
	return nil
}

func normalize(document any) (any, error) {
	encoded, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
