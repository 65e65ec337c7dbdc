package templates

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
)

var (
	ErrUnknownRecipe      = errors.New("templates: unknown recipe")
	ErrRatingOutOfRange   = errors.New("templates: rating must be between 1 and 5")
	ErrLanguageIDRequired = errors.New("templates: language id required")
)

// CreateTemplateRequest composes and stores a template.
type CreateTemplateRequest struct {
	Meta       TemplateMeta
	Blocks     []BlockRequest
	BrandkitID string
}

// RecipeRequest builds and stores a template from a canned recipe.
type RecipeRequest struct {
	Recipe   string
	Name     string
	Variant  string
	AuthorID string
}

// Service manages stored templates.
type Service interface {
	Create(ctx context.Context, req CreateTemplateRequest) (*EnhancedTemplate, error)
	CreateFromRecipe(ctx context.Context, req RecipeRequest) (*EnhancedTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*EnhancedTemplate, error)
	GetBySlug(ctx context.Context, slug string) (*EnhancedTemplate, error)
	List(ctx context.Context, category string) ([]*EnhancedTemplate, error)
	ApplyBrandkit(ctx context.Context, id uuid.UUID, kit brandkit.BrandKit, options ApplyBrandkitOptions) (*EnhancedTemplate, error)
	Clone(ctx context.Context, id uuid.UUID, modifications CloneModifications) (*EnhancedTemplate, error)
	// Convert produces page sections and counts the template as used.
	Convert(ctx context.Context, id uuid.UUID, languageID string) ([]PageSection, error)
	Rate(ctx context.Context, id uuid.UUID, rating float64) (*EnhancedTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     TemplateRepository
	composer *Composer
}

// NewService wires a template service. A nil composer uses the built-in
// catalog with default options.
func NewService(repo TemplateRepository, composer *Composer) Service {
	if composer == nil {
		composer = NewComposer(nil)
	}
	return &service{repo: repo, composer: composer}
}

func (s *service) Create(ctx context.Context, req CreateTemplateRequest) (*EnhancedTemplate, error) {
	if err := validateName(req.Meta.Name); err != nil {
		return nil, err
	}
	template, err := s.composer.CreateTemplateFromBlocks(req.Meta, req.Blocks, req.BrandkitID)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, template)
}

func (s *service) CreateFromRecipe(ctx context.Context, req RecipeRequest) (*EnhancedTemplate, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	builder, ok := NewRecipe(s.composer, req.Recipe, req.Name, req.Variant)
	if !ok {
		return nil, ErrUnknownRecipe
	}
	template, err := builder.Build(req.AuthorID)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, template)
}

// validateName keeps stored templates named; the composer itself accepts
// blank names.
func validateName(name string) error {
	return validation.Errors{
		"name": validation.Validate(name, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("pagebuilder.templates.name_required", ErrTemplateNameRequired.Error())
			}
			return nil
		})),
	}.Filter()
}

func (s *service) store(ctx context.Context, template *EnhancedTemplate) (*EnhancedTemplate, error) {
	if s.repo == nil {
		return nil, ErrRepositoryRequired
	}
	created, err := s.repo.Create(ctx, template)
	if err != nil {
		return nil, err
	}
	s.composer.logger.Info("template.stored", "template_id", created.ID.String(), "slug", created.Slug)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*EnhancedTemplate, error) {
	if id == uuid.Nil {
		return nil, ErrTemplateIDRequired
	}
	if s.repo == nil {
		return nil, ErrRepositoryRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*EnhancedTemplate, error) {
	if s.repo == nil {
		return nil, ErrRepositoryRequired
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context, category string) ([]*EnhancedTemplate, error) {
	if s.repo == nil {
		return nil, ErrRepositoryRequired
	}
	return s.repo.List(ctx, category)
}

func (s *service) ApplyBrandkit(ctx context.Context, id uuid.UUID, kit brandkit.BrandKit, options ApplyBrandkitOptions) (*EnhancedTemplate, error) {
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	branded, err := s.composer.ApplyBrandkit(template, kit, options)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, branded)
}

func (s *service) Clone(ctx context.Context, id uuid.UUID, modifications CloneModifications) (*EnhancedTemplate, error) {
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cloned, err := s.composer.Clone(template, modifications)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, cloned)
}

func (s *service) Convert(ctx context.Context, id uuid.UUID, languageID string) ([]PageSection, error) {
	if languageID == "" {
		return nil, ErrLanguageIDRequired
	}
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sections := s.composer.ConvertToPageSections(template, languageID)

	template.DownloadCount++
	if _, err := s.repo.Update(ctx, template); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *service) Rate(ctx context.Context, id uuid.UUID, rating float64) (*EnhancedTemplate, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	total := template.Rating*float64(template.RatingCount) + rating
	template.RatingCount++
	template.Rating = total / float64(template.RatingCount)
	template.UpdatedAt = s.composer.now()
	return s.repo.Update(ctx, template)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrTemplateIDRequired
	}
	if s.repo == nil {
		return ErrRepositoryRequired
	}
	return s.repo.Delete(ctx, id)
}
