package templates

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBlockType     = errors.New("templates: unknown block type")
	ErrTemplateNameRequired = errors.New("templates: template name required")
	ErrTemplateRequired     = errors.New("templates: template required")
	ErrTemplateIDRequired   = errors.New("templates: template id required")
	ErrBrandkitRequired     = errors.New("templates: brand kit required")
	ErrRegistryRequired     = errors.New("templates: block registry required")
	ErrRepositoryRequired   = errors.New("templates: repository required")
)

// UnknownBlockTypeError reports the first request naming an unregistered
// block type.
type UnknownBlockTypeError struct {
	BlockType string
	Index     int
}

func (e *UnknownBlockTypeError) Error() string {
	return fmt.Sprintf("%s %q (request %d)", ErrUnknownBlockType, e.BlockType, e.Index)
}

func (e *UnknownBlockTypeError) Unwrap() error {
	return ErrUnknownBlockType
}

// NotFoundError is returned when a template does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
