package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	migrations "github.com/avstanoeva/movienotes/migrations/notes"
)

// NewConnectPostgres opens a pgx-backed connection pool, pings it, runs
// the embedded migrations and returns the wrapped handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openSQL(ctx, "pgx", cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &DB{
		DB:                conn,
		logger:            log,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		supportsReturning: true,
		isUniqueViolation: isPostgresUniqueViolation,
	}, nil
}

func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
