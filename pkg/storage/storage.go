package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

var (
	ErrDialectUnknown = errors.New("storage: unknown dialect")
	ErrDSNRequired    = errors.New("storage: dsn is required")
)

// Config selects the SQL backend for template storage.
type Config struct {
	Dialect string
	DSN     string
}

// Open connects to the configured database and wraps it in a bun.DB.
func Open(cfg Config) (*bun.DB, error) {
	dialect := strings.ToLower(strings.TrimSpace(cfg.Dialect))
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrDSNRequired
	}

	var driver string
	switch dialect {
	case "", DialectSQLite:
		driver, dialect = "sqlite3", DialectSQLite
	case DialectPostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %s", ErrDialectUnknown, cfg.Dialect)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		sqlDB.SetMaxOpenConns(1)
	}
	db, err := NewBunDB(sqlDB, dialect)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NewBunDB wraps an existing connection with the bun dialect named by dialect.
func NewBunDB(sqlDB *sql.DB, dialect string) (*bun.DB, error) {
	var d schema.Dialect
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "", DialectSQLite:
		d = sqlitedialect.New()
	case DialectPostgres:
		d = pgdialect.New()
	default:
		return nil, fmt.Errorf("%w: %s", ErrDialectUnknown, dialect)
	}
	return bun.NewDB(sqlDB, d), nil
}

// EnsureTables creates the tables backing models when they do not exist.
func EnsureTables(ctx context.Context, db *bun.DB, models ...any) error {
	if db == nil {
		return errors.New("storage: bun db is required")
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
