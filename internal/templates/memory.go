package templates

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryTemplateRepository constructs an in-memory template repository.
func NewMemoryTemplateRepository() TemplateRepository {
	return &memoryTemplateRepository{
		byID: make(map[uuid.UUID]*EnhancedTemplate),
	}
}

type memoryTemplateRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*EnhancedTemplate
}

func (m *memoryTemplateRepository) Create(_ context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := CloneTemplate(template)
	if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}
	m.byID[cloned.ID] = cloned
	return CloneTemplate(cloned), nil
}

func (m *memoryTemplateRepository) GetByID(_ context.Context, id uuid.UUID) (*EnhancedTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: templateResource, Key: id.String()}
	}
	return CloneTemplate(record), nil
}

func (m *memoryTemplateRepository) GetBySlug(_ context.Context, slug string) (*EnhancedTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var match *EnhancedTemplate
	for _, record := range m.byID {
		if record.Slug != slug {
			continue
		}
		if match == nil || record.CreatedAt.Before(match.CreatedAt) {
			match = record
		}
	}
	if match == nil {
		return nil, &NotFoundError{Resource: templateResource, Key: slug}
	}
	return CloneTemplate(match), nil
}

func (m *memoryTemplateRepository) List(_ context.Context, category string) ([]*EnhancedTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*EnhancedTemplate, 0, len(m.byID))
	for _, record := range m.byID {
		if category != "" && record.Category != category {
			continue
		}
		out = append(out, CloneTemplate(record))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryTemplateRepository) Update(_ context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[template.ID]; !ok {
		return nil, &NotFoundError{Resource: templateResource, Key: template.ID.String()}
	}
	cloned := CloneTemplate(template)
	m.byID[cloned.ID] = cloned
	return CloneTemplate(cloned), nil
}

func (m *memoryTemplateRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: templateResource, Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}
