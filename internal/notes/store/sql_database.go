package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avstanoeva/movienotes/internal/logger"
)

// DB wraps a SQL connection together with the dialect knobs the
// repositories need: placeholder style, RETURNING support, and the
// driver-specific unique-violation check.
type DB struct {
	*sql.DB
	logger *logger.Logger

	builder           sq.StatementBuilderType
	supportsReturning bool
	isUniqueViolation func(error) bool
}

func openSQL(ctx context.Context, driver, dsn string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", driver).Msg("connected to database successfully")

	return conn, nil
}
