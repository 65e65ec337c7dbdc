package templates

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTemplateRepository implements TemplateRepository with optional caching.
type BunTemplateRepository struct {
	repo repository.Repository[*EnhancedTemplate]
}

// NewBunTemplateRepository creates a template repository without caching.
func NewBunTemplateRepository(db *bun.DB) *BunTemplateRepository {
	return NewBunTemplateRepositoryWithCache(db, nil, nil)
}

// NewBunTemplateRepositoryWithCache creates a template repository with caching services.
func NewBunTemplateRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTemplateRepository {
	base := NewTemplateRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTemplateRepository{repo: base}
}

func (r *BunTemplateRepository) Create(ctx context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error) {
	record, err := r.repo.Create(ctx, template)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*EnhancedTemplate, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, templateResource, id.String())
	}
	return record, nil
}

func (r *BunTemplateRepository) GetBySlug(ctx context.Context, slug string) (*EnhancedTemplate, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug).OrderExpr("?TableAlias.created_at ASC")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, templateResource, slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: templateResource, Key: slug}
	}
	return records[0], nil
}

func (r *BunTemplateRepository) List(ctx context.Context, category string) ([]*EnhancedTemplate, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if category != "" {
			q = q.Where("?TableAlias.category = ?", category)
		}
		return q.OrderExpr("?TableAlias.created_at ASC").OrderExpr("?TableAlias.id ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, templateResource, category)
	}
	return records, nil
}

func (r *BunTemplateRepository) Update(ctx context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error) {
	updated, err := r.repo.Update(ctx, template,
		repository.UpdateByID(template.ID.String()),
		repository.UpdateColumns(
			"name",
			"slug",
			"description",
			"category",
			"subcategory",
			"design_blocks",
			"layout",
			"brandkit_id",
			"brandkit_settings",
			"difficulty",
			"tags",
			"version",
			"download_count",
			"rating",
			"rating_count",
			"author_id",
			"author_name",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, templateResource, template.ID.String())
	}
	return updated, nil
}

func (r *BunTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Delete(ctx, &EnhancedTemplate{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
