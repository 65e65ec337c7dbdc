package templatescmd

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/commands"
	"github.com/turningtides/go-pagebuilder/internal/templates"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// TemplateResult receives the template produced by a successful command.
type TemplateResult func(ctx context.Context, template *templates.EnhancedTemplate)

// SectionsResult receives the page sections produced by a conversion.
type SectionsResult func(ctx context.Context, sections []templates.PageSection)

// CreateTemplateHandler composes and stores templates.
type CreateTemplateHandler struct {
	inner *commands.Handler[CreateTemplateCommand]
}

// NewCreateTemplateHandler wires the handler to the template service.
func NewCreateTemplateHandler(service templates.Service, logger interfaces.Logger, onResult TemplateResult, opts ...commands.HandlerOption[CreateTemplateCommand]) *CreateTemplateHandler {
	exec := func(ctx context.Context, msg CreateTemplateCommand) error {
		template, err := service.Create(ctx, templates.CreateTemplateRequest{
			Meta:       msg.Meta,
			Blocks:     msg.Blocks,
			BrandkitID: msg.BrandkitID,
		})
		if err != nil {
			return err
		}
		deliver(ctx, onResult, template)
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateTemplateCommand]{
		commands.WithLogger[CreateTemplateCommand](logger),
		commands.WithOperation[CreateTemplateCommand]("templates.create"),
		commands.WithMessageFields(func(msg CreateTemplateCommand) map[string]any {
			fields := map[string]any{"blocks": len(msg.Blocks)}
			if name := strings.TrimSpace(msg.Meta.Name); name != "" {
				fields["template_name"] = name
			}
			if msg.BrandkitID != "" {
				fields["brandkit_id"] = msg.BrandkitID
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CreateTemplateCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &CreateTemplateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateTemplateCommand].
func (h *CreateTemplateHandler) Execute(ctx context.Context, msg CreateTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CreateFromRecipeHandler builds templates from recipes.
type CreateFromRecipeHandler struct {
	inner *commands.Handler[CreateFromRecipeCommand]
}

// NewCreateFromRecipeHandler wires the handler to the template service.
func NewCreateFromRecipeHandler(service templates.Service, logger interfaces.Logger, onResult TemplateResult, opts ...commands.HandlerOption[CreateFromRecipeCommand]) *CreateFromRecipeHandler {
	exec := func(ctx context.Context, msg CreateFromRecipeCommand) error {
		template, err := service.CreateFromRecipe(ctx, templates.RecipeRequest{
			Recipe:   msg.Recipe,
			Name:     msg.Name,
			Variant:  msg.Variant,
			AuthorID: msg.AuthorID,
		})
		if err != nil {
			return err
		}
		deliver(ctx, onResult, template)
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateFromRecipeCommand]{
		commands.WithLogger[CreateFromRecipeCommand](logger),
		commands.WithOperation[CreateFromRecipeCommand]("templates.create_recipe"),
		commands.WithMessageFields(func(msg CreateFromRecipeCommand) map[string]any {
			fields := map[string]any{"recipe": msg.Recipe}
			if msg.Variant != "" {
				fields["variant"] = msg.Variant
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CreateFromRecipeCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &CreateFromRecipeHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateFromRecipeCommand].
func (h *CreateFromRecipeHandler) Execute(ctx context.Context, msg CreateFromRecipeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ApplyBrandkitHandler overlays brand kits onto stored templates.
type ApplyBrandkitHandler struct {
	inner *commands.Handler[ApplyBrandkitCommand]
}

// NewApplyBrandkitHandler wires the handler to the template service.
func NewApplyBrandkitHandler(service templates.Service, logger interfaces.Logger, onResult TemplateResult, opts ...commands.HandlerOption[ApplyBrandkitCommand]) *ApplyBrandkitHandler {
	exec := func(ctx context.Context, msg ApplyBrandkitCommand) error {
		template, err := service.ApplyBrandkit(ctx, msg.TemplateID, msg.Kit, msg.Options)
		if err != nil {
			return err
		}
		deliver(ctx, onResult, template)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ApplyBrandkitCommand]{
		commands.WithLogger[ApplyBrandkitCommand](logger),
		commands.WithOperation[ApplyBrandkitCommand]("templates.apply_brandkit"),
		commands.WithMessageFields(func(msg ApplyBrandkitCommand) map[string]any {
			return templateFields(msg.TemplateID, map[string]any{"brandkit": msg.Kit.Name})
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ApplyBrandkitCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &ApplyBrandkitHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ApplyBrandkitCommand].
func (h *ApplyBrandkitHandler) Execute(ctx context.Context, msg ApplyBrandkitCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CloneTemplateHandler copies stored templates.
type CloneTemplateHandler struct {
	inner *commands.Handler[CloneTemplateCommand]
}

// NewCloneTemplateHandler wires the handler to the template service.
func NewCloneTemplateHandler(service templates.Service, logger interfaces.Logger, onResult TemplateResult, opts ...commands.HandlerOption[CloneTemplateCommand]) *CloneTemplateHandler {
	exec := func(ctx context.Context, msg CloneTemplateCommand) error {
		template, err := service.Clone(ctx, msg.TemplateID, msg.Modifications)
		if err != nil {
			return err
		}
		deliver(ctx, onResult, template)
		return nil
	}

	handlerOpts := []commands.HandlerOption[CloneTemplateCommand]{
		commands.WithLogger[CloneTemplateCommand](logger),
		commands.WithOperation[CloneTemplateCommand]("templates.clone"),
		commands.WithMessageFields(func(msg CloneTemplateCommand) map[string]any {
			return templateFields(msg.TemplateID, map[string]any{"changes": len(msg.Modifications.DesignBlockChanges)})
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CloneTemplateCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &CloneTemplateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CloneTemplateCommand].
func (h *CloneTemplateHandler) Execute(ctx context.Context, msg CloneTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ConvertTemplateHandler turns stored templates into page sections.
type ConvertTemplateHandler struct {
	inner *commands.Handler[ConvertTemplateCommand]
}

// NewConvertTemplateHandler wires the handler to the template service.
func NewConvertTemplateHandler(service templates.Service, logger interfaces.Logger, onResult SectionsResult, opts ...commands.HandlerOption[ConvertTemplateCommand]) *ConvertTemplateHandler {
	exec := func(ctx context.Context, msg ConvertTemplateCommand) error {
		sections, err := service.Convert(ctx, msg.TemplateID, strings.TrimSpace(msg.LanguageID))
		if err != nil {
			return err
		}
		if pageID := strings.TrimSpace(msg.PageID); pageID != "" {
			sections = templates.AttachSections(sections, pageID)
		}
		if onResult != nil {
			onResult(ctx, sections)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertTemplateCommand]{
		commands.WithLogger[ConvertTemplateCommand](logger),
		commands.WithOperation[ConvertTemplateCommand]("templates.convert"),
		commands.WithMessageFields(func(msg ConvertTemplateCommand) map[string]any {
			return templateFields(msg.TemplateID, map[string]any{"language": msg.LanguageID})
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertTemplateCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &ConvertTemplateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertTemplateCommand].
func (h *ConvertTemplateHandler) Execute(ctx context.Context, msg ConvertTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

func deliver(ctx context.Context, onResult TemplateResult, template *templates.EnhancedTemplate) {
	if onResult != nil && template != nil {
		onResult(ctx, template)
	}
}

func templateFields(id uuid.UUID, extra map[string]any) map[string]any {
	fields := map[string]any{}
	if id != uuid.Nil {
		fields["template_id"] = id
	}
	for key, value := range extra {
		fields[key] = value
	}
	return fields
}
