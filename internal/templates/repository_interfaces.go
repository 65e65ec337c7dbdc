package templates

import (
	"context"

	"github.com/google/uuid"
)

// TemplateRepository persists composed templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EnhancedTemplate, error)
	GetBySlug(ctx context.Context, slug string) (*EnhancedTemplate, error)
	// List returns templates oldest first. An empty category lists all.
	List(ctx context.Context, category string) ([]*EnhancedTemplate, error)
	Update(ctx context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const templateResource = "page_template"
