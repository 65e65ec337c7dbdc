package templates

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewTemplateRepository creates a go-repository-bun repository for templates.
func NewTemplateRepository(db *bun.DB) repository.Repository[*EnhancedTemplate] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*EnhancedTemplate]{
		NewRecord:          func() *EnhancedTemplate { return &EnhancedTemplate{} },
		GetID:              func(t *EnhancedTemplate) uuid.UUID { return t.ID },
		SetID:              func(t *EnhancedTemplate, id uuid.UUID) { t.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(t *EnhancedTemplate) string { return t.Slug },
	})
}
