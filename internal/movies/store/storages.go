package store

import (
	"context"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
)

// Storages bundles the repositories of the movie app behind one handle.
type Storages struct {
	Users  UserRepository
	Movies MovieRepository
}

// NewStorages selects a backend from the configuration and constructs
// both repositories over it. The PostgreSQL backend runs its embedded
// migrations before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("applying migrations: %w", err)
		}

		return &Storages{
			Users:  NewUserRepository(db, log),
			Movies: NewMovieRepository(db, log),
		}, nil

	case config.BackendMemory:
		db := newMemoryDB()

		return &Storages{
			Users:  NewMemoryUserRepository(db, log),
			Movies: NewMemoryMovieRepository(db, log),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
