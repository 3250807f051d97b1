package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/config"
)

// Dialect names the SQL flavour spoken by a Database.
type Dialect string

// Supported dialects
const (
	DialectPostgres Dialect = config.DriverPostgres
	DialectSQLite   Dialect = config.DriverSQLite
)

// Execer runs a statement that returns no rows.
type Execer interface {
	Exec(ctx context.Context, query string, args ...any) error
}

// Database is the driver-neutral handle used by bootstrap and the migrator.
type Database interface {
	Execer
	Dialect() Dialect
	Placeholder() squirrel.PlaceholderFormat
	Ping(ctx context.Context) error
	// QueryExists scans a single boolean result, such as SELECT EXISTS(...).
	QueryExists(ctx context.Context, query string, args ...any) (bool, error)
	// InTx runs fn inside a transaction, committing when it returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Execer) error) error
	Close()
}

// Open connects to the database selected by cfg.Database.Driver.
func Open(cfg *config.Config) (Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return NewPostgresDB(cfg)
	case config.DriverSQLite:
		return NewSQLiteDB(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
