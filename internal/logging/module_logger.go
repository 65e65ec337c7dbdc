package logging

import (
	"context"
	"strings"

	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

const (
	rootModule      = "pagebuilder"
	registryModule  = "pagebuilder.registry"
	templatesModule = "pagebuilder.templates"
	brandkitModule  = "pagebuilder.brandkit"
	contentModule   = "pagebuilder.content"
)

const (
	fieldTemplateID = "template_id"
	fieldBlockType  = "block_type"
	fieldLanguage   = "language"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module name is attached
// as a structured field so entries can be filtered per module.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RegistryLogger returns the logger namespace reserved for the block registry.
func RegistryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, registryModule)
}

// TemplatesLogger returns the logger namespace reserved for template composition.
func TemplatesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, templatesModule)
}

// BrandkitLogger returns the logger namespace reserved for brand-kit loading.
func BrandkitLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, brandkitModule)
}

// ContentLogger returns the logger namespace reserved for content resolution.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// WithTemplateContext enriches logger with the template id, block type and
// language being processed. Empty values are skipped.
func WithTemplateContext(logger interfaces.Logger, templateID, blockType, language string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(templateID); trimmed != "" {
		fields[fieldTemplateID] = trimmed
	}
	if trimmed := strings.TrimSpace(blockType); trimmed != "" {
		fields[fieldBlockType] = trimmed
	}
	if trimmed := strings.TrimSpace(language); trimmed != "" {
		fields[fieldLanguage] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
