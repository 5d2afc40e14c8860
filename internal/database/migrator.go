package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// versionTable is where tern records the applied schema version.
const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// withConn runs fn on a dedicated connection to dsn. Migrations and seeding
// are one-off commands and do not need the pool.
func withConn(ctx context.Context, dsn string, fn func(conn *pgx.Conn) error) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer conn.Close(ctx)

	return fn(conn)
}

// Migrate brings the schema at dsn up to the newest embedded migration.
func Migrate(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	return withConn(ctx, dsn, func(conn *pgx.Conn) error {
		migrator, err := tern.NewMigrator(ctx, conn, versionTable)
		if err != nil {
			return fmt.Errorf("constructing database migrator: %w", err)
		}

		files, err := fs.Sub(migrations, "migrations")
		if err != nil {
			return fmt.Errorf("opening embedded migrations: %w", err)
		}
		if err := migrator.LoadMigrations(files); err != nil {
			return fmt.Errorf("loading database migrations: %w", err)
		}

		current, err := migrator.GetCurrentVersion(ctx)
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}

		target := int32(len(migrator.Migrations))
		if current == target {
			logger.Info().Int32("version", current).Msg("database schema up to date")
			return nil
		}

		if err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}

		logger.Info().Int32("from", current).Int32("to", target).Msg("migrated database schema")
		return nil
	})
}
