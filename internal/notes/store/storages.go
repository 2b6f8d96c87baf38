package store

import (
	"context"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
)

// Storages bundles the repositories of the note app behind one handle.
type Storages struct {
	Users UserRepository
	Notes NoteRepository
}

// NewStorages selects a backend from the configuration and constructs
// both repositories over it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		return &Storages{
			Users: NewUserRepository(db, log),
			Notes: NewNoteRepository(db, log),
		}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to sqlite: %w", err)
		}

		return &Storages{
			Users: NewUserRepository(db, log),
			Notes: NewNoteRepository(db, log),
		}, nil

	case config.BackendMemory:
		db := newMemoryDB()

		return &Storages{
			Users: NewMemoryUserRepository(db, log),
			Notes: NewMemoryNoteRepository(db, log),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
