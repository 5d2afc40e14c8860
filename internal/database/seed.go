package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

//go:embed seeds/seed.sql
var seedSQL string

// Seed inserts the sample users, posts and comments.
//
// Rows use fixed ids and ON CONFLICT DO NOTHING, so running it twice is a
// no-op.
func Seed(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	return withConn(ctx, dsn, func(conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, seedSQL); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}

		logger.Info().Msg("database seeded")
		return nil
	})
}
