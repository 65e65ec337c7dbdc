package templates

import (
	"time"

	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/logging"
	"github.com/turningtides/go-pagebuilder/internal/metrics"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// IDGenerator produces identifiers for templates and sections.
type IDGenerator func() uuid.UUID

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ComposerOption {
	return func(c *Composer) {
		if clock != nil {
			c.now = clock
		}
	}
}

// WithIDGenerator overrides template id generation.
func WithIDGenerator(generator IDGenerator) ComposerOption {
	return func(c *Composer) {
		if generator != nil {
			c.templateID = generator
		}
	}
}

// WithSectionIDGenerator overrides page section id generation.
func WithSectionIDGenerator(generator IDGenerator) ComposerOption {
	return func(c *Composer) {
		if generator != nil {
			c.sectionID = generator
		}
	}
}

// WithLogger sets the logger used for debug and diagnostic output.
func WithLogger(logger interfaces.Logger) ComposerOption {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(recorder interfaces.TemplateMetrics) ComposerOption {
	return func(c *Composer) {
		if recorder != nil {
			c.metrics = recorder
		}
	}
}

// WithDefaultLayout overrides the layout given to templates whose meta does
// not carry one.
func WithDefaultLayout(layout Layout) ComposerOption {
	return func(c *Composer) {
		c.defaultLayout = layout
	}
}

// WithDefaultVersion overrides the version given to new templates.
func WithDefaultVersion(version string) ComposerOption {
	return func(c *Composer) {
		if version != "" {
			c.defaultVersion = version
		}
	}
}

func timeOrderedID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func defaultComposer() *Composer {
	return &Composer{
		now:            time.Now,
		templateID:     timeOrderedID,
		sectionID:      uuid.New,
		logger:         logging.NoOp(),
		metrics:        metrics.NoOp(),
		defaultLayout:  DefaultLayout(),
		defaultVersion: DefaultVersion,
	}
}
