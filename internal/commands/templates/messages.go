package templatescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
	"github.com/turningtides/go-pagebuilder/internal/templates"
)

const (
	createTemplateMessageType  = "pagebuilder.templates.create"
	createRecipeMessageType    = "pagebuilder.templates.create_recipe"
	applyBrandkitMessageType   = "pagebuilder.templates.apply_brandkit"
	cloneTemplateMessageType   = "pagebuilder.templates.clone"
	convertTemplateMessageType = "pagebuilder.templates.convert"
)

// CreateTemplateCommand composes a template from block requests and stores it.
type CreateTemplateCommand struct {
	Meta       templates.TemplateMeta   `json:"meta"`
	Blocks     []templates.BlockRequest `json:"blocks"`
	BrandkitID string                   `json:"brandkit_id,omitempty"`
}

// Type implements command.Message.
func (CreateTemplateCommand) Type() string { return createTemplateMessageType }

// Validate ensures the template carries a name and only typed block requests.
func (m CreateTemplateCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Meta.Name) == "" {
		errs["name"] = validation.NewError("pagebuilder.templates.create.name_required", "name is required")
	}
	for _, req := range m.Blocks {
		if strings.TrimSpace(req.BlockType) == "" {
			errs["blocks"] = validation.NewError("pagebuilder.templates.create.block_type_required", "every block requires a block type")
			break
		}
	}
	return errs.Filter()
}

// CreateFromRecipeCommand builds a template from one of the canned recipes.
type CreateFromRecipeCommand struct {
	Recipe   string `json:"recipe"`
	Name     string `json:"name"`
	Variant  string `json:"variant,omitempty"`
	AuthorID string `json:"author_id,omitempty"`
}

// Type implements command.Message.
func (CreateFromRecipeCommand) Type() string { return createRecipeMessageType }

// Validate ensures a known recipe and a template name are supplied.
func (m CreateFromRecipeCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Recipe,
			validation.Required.ErrorObject(validation.NewError("pagebuilder.templates.recipe.recipe_required", "recipe is required")),
			validation.In(recipeNames()...).ErrorObject(validation.NewError("pagebuilder.templates.recipe.recipe_unknown", "recipe is not known")),
		),
		validation.Field(&m.Name,
			validation.Required.ErrorObject(validation.NewError("pagebuilder.templates.recipe.name_required", "name is required")),
		),
	)
}

// ApplyBrandkitCommand overlays a brand kit onto a stored template.
type ApplyBrandkitCommand struct {
	TemplateID uuid.UUID                      `json:"template_id"`
	Kit        brandkit.BrandKit              `json:"kit"`
	Options    templates.ApplyBrandkitOptions `json:"options"`
}

// Type implements command.Message.
func (ApplyBrandkitCommand) Type() string { return applyBrandkitMessageType }

// Validate ensures the template id is present and the kit is well formed.
func (m ApplyBrandkitCommand) Validate() error {
	errs := validation.Errors{}
	if m.TemplateID == uuid.Nil {
		errs["template_id"] = validation.NewError("pagebuilder.templates.apply_brandkit.template_id_required", "template_id is required")
	}
	if err := brandkit.Validate(m.Kit); err != nil {
		errs["kit"] = err
	}
	return errs.Filter()
}

// CloneTemplateCommand copies a stored template with modifications.
type CloneTemplateCommand struct {
	TemplateID    uuid.UUID                    `json:"template_id"`
	Modifications templates.CloneModifications `json:"modifications"`
}

// Type implements command.Message.
func (CloneTemplateCommand) Type() string { return cloneTemplateMessageType }

// Validate ensures the source template id is present.
func (m CloneTemplateCommand) Validate() error {
	errs := validation.Errors{}
	if m.TemplateID == uuid.Nil {
		errs["template_id"] = validation.NewError("pagebuilder.templates.clone.template_id_required", "template_id is required")
	}
	for _, change := range m.Modifications.DesignBlockChanges {
		if change.Index < 0 {
			errs["design_block_changes"] = validation.NewError("pagebuilder.templates.clone.index_invalid", "design block change index must not be negative")
			break
		}
	}
	return errs.Filter()
}

// ConvertTemplateCommand renders a stored template into page sections.
type ConvertTemplateCommand struct {
	TemplateID uuid.UUID `json:"template_id"`
	LanguageID string    `json:"language_id"`
	PageID     string    `json:"page_id,omitempty"`
}

// Type implements command.Message.
func (ConvertTemplateCommand) Type() string { return convertTemplateMessageType }

// Validate ensures the template and language are identified.
func (m ConvertTemplateCommand) Validate() error {
	errs := validation.Errors{}
	if m.TemplateID == uuid.Nil {
		errs["template_id"] = validation.NewError("pagebuilder.templates.convert.template_id_required", "template_id is required")
	}
	if strings.TrimSpace(m.LanguageID) == "" {
		errs["language_id"] = validation.NewError("pagebuilder.templates.convert.language_id_required", "language_id is required")
	}
	return errs.Filter()
}

func recipeNames() []any {
	names := templates.Recipes()
	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	return out
}
