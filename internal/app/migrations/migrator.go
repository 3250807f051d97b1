package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/db"
	"github.com/yigit/examscheduler/internal/pkg/logger"
)

//go:embed sql
var embedded embed.FS

// Files returns the embedded migration set for a dialect.
func Files(dialect db.Dialect) (fs.FS, error) {
	return fs.Sub(embedded, path.Join("sql", string(dialect)))
}

// Migrator manages database migrations
type Migrator struct {
	db db.Database
	sb squirrel.StatementBuilderType
}

// NewMigrator creates a new migrator
func NewMigrator(database db.Database) *Migrator {
	return &Migrator{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(database.Placeholder()),
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.sb.Select("1").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	exists, err := m.db.QueryExists(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied inside the migration's transaction
func (m *Migrator) recordMigration(ctx context.Context, tx db.Execer, version string) error {
	query, args, err := m.sb.Insert("schema_migrations").
		Columns("version", "applied_at").
		Values(version, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record migration query: %w", err)
	}

	if err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// versionOf extracts the version from a filename, e.g. "001_init.sql" => "001"
func versionOf(filename string) string {
	return strings.Split(path.Base(filename), "_")[0]
}

// migrateFile applies one migration file unless it was applied before.
func (m *Migrator) migrateFile(ctx context.Context, fsys fs.FS, filename string) (bool, error) {
	version := versionOf(filename)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if applied {
		logger.Debug().Str("migration", filename).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.InTx(ctx, func(ctx context.Context, tx db.Execer) error {
		if err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
		}
		return m.recordMigration(ctx, tx, version)
	})
	if err != nil {
		return false, err
	}

	logger.Info().Str("migration", filename).Str("dialect", string(m.db.Dialect())).Msg("Migration applied")
	return true, nil
}

// MigrateFS applies every *.sql file in fsys in lexical order and returns how many were applied.
func (m *Migrator) MigrateFS(ctx context.Context, fsys fs.FS) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	applied := 0
	for _, file := range sqlFiles {
		ok, err := m.migrateFile(ctx, fsys, file)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}

	return applied, nil
}

// Migrate applies the embedded migrations for the database's dialect.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	fsys, err := Files(m.db.Dialect())
	if err != nil {
		return 0, fmt.Errorf("no migrations for dialect %s: %w", m.db.Dialect(), err)
	}
	return m.MigrateFS(ctx, fsys)
}
