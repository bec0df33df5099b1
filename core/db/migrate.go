package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"kra.app/feedback/core/db/migrations"
)

// Migrate applies every pending embedded migration.
func (db *DB) Migrate(ctx context.Context) error {
	provider, closeFn, err := db.newMigrationProvider()
	if err != nil {
		return err
	}
	defer closeFn()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration", r.Duration,
		)
	}
	return nil
}

// MigrationStatus is one line of `kractl migrate status`.
type MigrationStatus struct {
	Version int64
	Name    string
	Applied bool
}

func (db *DB) MigrationStatus(ctx context.Context) ([]MigrationStatus, error) {
	provider, closeFn, err := db.newMigrationProvider()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Name:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

func (db *DB) newMigrationProvider() (*goose.Provider, func(), error) {
	sqlDB := stdlib.OpenDBFromPool(db.pool)
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("closing migration connection", "error", err)
		}
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("creating migration provider: %w", err)
	}
	return provider, closeFn, nil
}
