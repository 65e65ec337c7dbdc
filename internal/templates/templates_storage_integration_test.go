package templates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/blocks"
	"github.com/turningtides/go-pagebuilder/internal/templates"
	"github.com/turningtides/go-pagebuilder/pkg/testsupport"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := testsupport.NewNamedSQLiteMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().Model((*templates.EnhancedTemplate)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("create page_templates: %v", err)
	}
	return bunDB
}

func TestBunTemplateRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	repo := templates.NewBunTemplateRepositoryWithCache(bunDB, cacheService, keySerializer)
	composer := templates.NewComposer(blocks.DefaultRegistry())
	svc := templates.NewService(repo, composer)

	created, err := svc.CreateFromRecipe(ctx, templates.RecipeRequest{Recipe: "homepage", Name: "Stored Home", Variant: "startup", AuthorID: "author-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if len(fetched.DesignBlocks) != 6 || fetched.DesignBlocks[1].BlockType != "HERO" {
		t.Fatalf("expected design blocks persisted as json, got %+v", fetched.DesignBlocks)
	}
	if fetched.DesignBlocks[0].Settings.Custom[templates.RecipeVariantKey] != "startup" {
		t.Fatalf("expected settings persisted, got %v", fetched.DesignBlocks[0].Settings.Custom)
	}
	if fetched.Author.ID != "author-1" || fetched.Layout != templates.DefaultLayout() {
		t.Fatalf("expected author and layout persisted, got %+v %+v", fetched.Author, fetched.Layout)
	}
	if len(fetched.Tags) != 2 {
		t.Fatalf("expected tags persisted, got %v", fetched.Tags)
	}

	bySlug, err := repo.GetBySlug(ctx, "stored-home")
	if err != nil || bySlug.ID != created.ID {
		t.Fatalf("expected slug lookup, got %v %v", bySlug, err)
	}

	sections, err := svc.Convert(ctx, created.ID, "en")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(sections) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(sections))
	}

	listed, err := repo.List(ctx, "homepage")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one homepage template, got %d", len(listed))
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestBunTemplateRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := templates.NewBunTemplateRepository(newBunDB(t))

	var notFound *templates.NotFoundError
	if _, err := repo.GetByID(ctx, uuid.New()); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for slug, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on delete, got %v", err)
	}
}
