package templatescmd

import (
	"github.com/goliatone/go-command/dispatcher"
	"github.com/turningtides/go-pagebuilder/internal/commands"
	"github.com/turningtides/go-pagebuilder/internal/templates"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// Subscription allows hosts to tear down dispatcher subscriptions.
type Subscription interface {
	Unsubscribe()
}

// Options configures the template command set.
type Options struct {
	LoggerProvider interfaces.LoggerProvider
	OnTemplate     TemplateResult
	OnSections     SectionsResult
}

// Handlers groups every template command handler.
type Handlers struct {
	Create        *CreateTemplateHandler
	CreateRecipe  *CreateFromRecipeHandler
	ApplyBrandkit *ApplyBrandkitHandler
	Clone         *CloneTemplateHandler
	Convert       *ConvertTemplateHandler
}

// NewHandlers builds the template command handlers over service.
func NewHandlers(service templates.Service, opts Options) *Handlers {
	logger := commands.CommandLogger(opts.LoggerProvider, "templates")
	return &Handlers{
		Create:        NewCreateTemplateHandler(service, logger, opts.OnTemplate),
		CreateRecipe:  NewCreateFromRecipeHandler(service, logger, opts.OnTemplate),
		ApplyBrandkit: NewApplyBrandkitHandler(service, logger, opts.OnTemplate),
		Clone:         NewCloneTemplateHandler(service, logger, opts.OnTemplate),
		Convert:       NewConvertTemplateHandler(service, logger, opts.OnSections),
	}
}

// All returns the handlers for hosts that register them with their own registry.
func (h *Handlers) All() []any {
	if h == nil {
		return nil
	}
	return []any{h.Create, h.CreateRecipe, h.ApplyBrandkit, h.Clone, h.Convert}
}

// Subscribe registers every handler with the global go-command dispatcher.
func (h *Handlers) Subscribe() []Subscription {
	if h == nil {
		return nil
	}
	return []Subscription{
		dispatcher.SubscribeCommand(h.Create),
		dispatcher.SubscribeCommand(h.CreateRecipe),
		dispatcher.SubscribeCommand(h.ApplyBrandkit),
		dispatcher.SubscribeCommand(h.Clone),
		dispatcher.SubscribeCommand(h.Convert),
	}
}
