package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/config"
	"github.com/yigit/examscheduler/internal/pkg/logger"

	"modernc.org/sqlite"
)

// SQLiteLowerFunc is a Unicode-aware LOWER. SQLite's built-in LOWER only folds ASCII.
const SQLiteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(SQLiteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// SQLiteDB wraps an embedded SQLite database
type SQLiteDB struct {
	DB   *sql.DB
	path string
}

// NewSQLiteDB opens (creating if needed) the SQLite database at cfg.Database.Path
func NewSQLiteDB(cfg *config.Config) (*SQLiteDB, error) {
	path := cfg.Database.Path
	if dir := filepath.Dir(path); path != ":memory:" && dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := cfg.Database.MaxOpenConns
	if path == ":memory:" {
		// Every connection would otherwise get its own empty database.
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	if lifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime); err == nil {
		db.SetConnMaxLifetime(lifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug().Str("path", path).Msg("SQLite database opened")

	return &SQLiteDB{DB: db, path: path}, nil
}

// sqliteDSN enables WAL, a busy timeout and foreign keys on every connection.
func sqliteDSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "foreign_keys(1)")
	if path != ":memory:" {
		params.Add("_pragma", "journal_mode(WAL)")
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + params.Encode()
}

// Path returns the database file path
func (db *SQLiteDB) Path() string {
	return db.path
}

// Dialect implements Database
func (db *SQLiteDB) Dialect() Dialect {
	return DialectSQLite
}

// Placeholder implements Database
func (db *SQLiteDB) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

// Ping implements Database
func (db *SQLiteDB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Exec implements Execer
func (db *SQLiteDB) Exec(ctx context.Context, query string, args ...any) error {
	_, err := db.DB.ExecContext(ctx, query, args...)
	return err
}

// QueryExists implements Database
func (db *SQLiteDB) QueryExists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := db.DB.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// InTx implements Database
func (db *SQLiteDB) InTx(ctx context.Context, fn func(ctx context.Context, tx Execer) error) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(ctx, sqlTxExecer{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (db *SQLiteDB) Close() {
	if db.DB != nil {
		if err := db.DB.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing SQLite database")
		}
	}
}

type sqlTxExecer struct {
	tx *sql.Tx
}

func (e sqlTxExecer) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.tx.ExecContext(ctx, query, args...)
	return err
}
