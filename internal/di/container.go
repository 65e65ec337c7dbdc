package di

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"

	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/brandkit"
	templatescmd "github.com/turningtides/go-pagebuilder/internal/commands/templates"
	"github.com/turningtides/go-pagebuilder/internal/content"
	"github.com/turningtides/go-pagebuilder/internal/logging"
	"github.com/turningtides/go-pagebuilder/internal/logging/console"
	"github.com/turningtides/go-pagebuilder/internal/logging/gologger"
	"github.com/turningtides/go-pagebuilder/internal/metrics"
	"github.com/turningtides/go-pagebuilder/internal/runtimeconfig"
	"github.com/turningtides/go-pagebuilder/internal/templates"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
	"github.com/turningtides/go-pagebuilder/pkg/storage"
)

// Container wires the page builder's modules from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	metrics        interfaces.TemplateMetrics
	registerer     prometheus.Registerer
	manifestFS     fs.FS
	clock          func() time.Time

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	contentProvider interfaces.ContentProvider

	registry     *blocks.Registry
	composer     *templates.Composer
	templateRepo templates.TemplateRepository
	templateSvc  templates.Service
	resolver     *content.Resolver
	themeSource  *brandkit.ThemeSource
	commands     *templatescmd.Handlers
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMetrics overrides the metrics recorder.
func WithMetrics(recorder interfaces.TemplateMetrics) Option {
	return func(c *Container) {
		c.metrics = recorder
	}
}

// WithPrometheusRegisterer registers template collectors on registerer when
// the metrics feature is enabled. Defaults to a private registry.
func WithPrometheusRegisterer(registerer prometheus.Registerer) Option {
	return func(c *Container) {
		c.registerer = registerer
	}
}

// WithBunDB supplies an existing database for the bun storage provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithManifestFS sets the filesystem catalog manifests are read from.
// Defaults to the working directory.
func WithManifestFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.manifestFS = fsys
	}
}

// WithContentProvider sets the source of per-page block content.
func WithContentProvider(provider interfaces.ContentProvider) Option {
	return func(c *Container) {
		c.contentProvider = provider
	}
}

// WithTemplateRepository overrides the repository selected by the storage config.
func WithTemplateRepository(repo templates.TemplateRepository) Option {
	return func(c *Container) {
		c.templateRepo = repo
	}
}

// WithClock overrides the composer clock.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// NewContainer validates cfg and builds every module.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLoggerProvider,
		c.configureMetrics,
		c.configureRegistry,
		c.configureComposer,
		c.configureStorage,
		c.configureServices,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  c.Config.Logging.Level,
			Format: c.Config.Logging.Format,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		c.loggerProvider = console.NewProvider(console.Options{Level: c.Config.Logging.Level})
	}
	return nil
}

func (c *Container) configureMetrics() error {
	if c.metrics != nil {
		return nil
	}
	if !c.Config.Features.Metrics {
		c.metrics = metrics.NoOp()
		return nil
	}
	registerer := c.registerer
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	recorder, err := metrics.NewPrometheus(registerer)
	if err != nil {
		return fmt.Errorf("di: register template metrics: %w", err)
	}
	c.metrics = recorder
	return nil
}

func (c *Container) configureRegistry() error {
	registry := blocks.DefaultRegistry()
	manifests := c.Config.Templates.CatalogManifests
	if len(manifests) == 0 {
		c.registry = registry
		return nil
	}
	fsys := c.manifestFS
	if fsys == nil {
		fsys = os.DirFS(".")
	}
	logger := logging.RegistryLogger(c.loggerProvider)
	for _, name := range manifests {
		configs, err := blocks.LoadManifestFile(fsys, name)
		if err != nil {
			return fmt.Errorf("di: load catalog manifest %s: %w", name, err)
		}
		extended, err := registry.Extend(configs...)
		if err != nil {
			return fmt.Errorf("di: extend block registry from %s: %w", name, err)
		}
		registry = extended
		logger.Info("registry.manifest.loaded", "manifest", name, "blocks", len(configs))
	}
	c.registry = registry
	return nil
}

func (c *Container) configureComposer() error {
	layout := c.Config.Templates.DefaultLayout
	opts := []templates.ComposerOption{
		templates.WithLogger(logging.TemplatesLogger(c.loggerProvider)),
		templates.WithMetrics(c.metrics),
		templates.WithDefaultLayout(templates.Layout{
			Type:           layout.Type,
			ContainerWidth: layout.ContainerWidth,
			Spacing:        layout.Spacing,
		}),
		templates.WithDefaultVersion(c.Config.Templates.DefaultVersion),
	}
	if c.clock != nil {
		opts = append(opts, templates.WithClock(c.clock))
	}
	c.composer = templates.NewComposer(c.registry, opts...)
	return nil
}

func (c *Container) configureStorage() error {
	if c.templateRepo != nil {
		return nil
	}
	if c.Config.StorageProvider() != "bun" {
		c.templateRepo = templates.NewMemoryTemplateRepository()
		return nil
	}

	if c.bunDB == nil {
		db, err := storage.Open(storage.Config{
			Dialect: c.Config.Storage.Dialect,
			DSN:     c.Config.Storage.DSN,
		})
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if err := storage.EnsureTables(context.Background(), c.bunDB, (*templates.EnhancedTemplate)(nil)); err != nil {
		return err
	}

	if c.Config.Cache.Enabled {
		if err := c.configureCache(); err != nil {
			return err
		}
		c.templateRepo = templates.NewBunTemplateRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return nil
	}
	c.templateRepo = templates.NewBunTemplateRepository(c.bunDB)
	return nil
}

func (c *Container) configureCache() error {
	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Cache.TTL > 0 {
			cfg.TTL = c.Config.Cache.TTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			return fmt.Errorf("di: build repository cache: %w", err)
		}
		c.cacheService = service
	}
	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
	return nil
}

func (c *Container) configureServices() error {
	c.templateSvc = templates.NewService(c.templateRepo, c.composer)
	c.resolver = content.NewResolver(c.contentProvider, logging.ContentLogger(c.loggerProvider))
	c.themeSource = brandkit.NewThemeSource(nil, c.Config.Brandkit.ThemeVariant)
	c.commands = templatescmd.NewHandlers(c.templateSvc, templatescmd.Options{
		LoggerProvider: c.loggerProvider,
	})
	return nil
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	return err
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Metrics returns the template metrics recorder.
func (c *Container) Metrics() interfaces.TemplateMetrics { return c.metrics }

// BlockRegistry returns the block registry including any manifest blocks.
func (c *Container) BlockRegistry() *blocks.Registry { return c.registry }

// Composer returns the template composer.
func (c *Container) Composer() *templates.Composer { return c.composer }

// TemplateRepository returns the storage backing the template service.
func (c *Container) TemplateRepository() templates.TemplateRepository { return c.templateRepo }

// TemplateService returns the stored-template service.
func (c *Container) TemplateService() templates.Service { return c.templateSvc }

// ContentResolver returns the resolver for per-page block content.
func (c *Container) ContentResolver() *content.Resolver { return c.resolver }

// ThemeSource returns the go-theme backed brand kit loader.
func (c *Container) ThemeSource() *brandkit.ThemeSource { return c.themeSource }

// BrandkitFS returns the filesystem brand kit manifests are read from, nil
// when no manifest directory is configured.
func (c *Container) BrandkitFS() fs.FS {
	dir := strings.TrimSpace(c.Config.Brandkit.ManifestDir)
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

// CommandHandlers returns the template command handlers.
func (c *Container) CommandHandlers() *templatescmd.Handlers { return c.commands }

// BunDB returns the database used by bun storage, nil for memory storage.
func (c *Container) BunDB() *bun.DB { return c.bunDB }
