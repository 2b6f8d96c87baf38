// Package store holds the repository contracts of the movie app and the
// interchangeable backends that satisfy them (PostgreSQL for production,
// in-memory for tests and local runs).
package store

import (
	"context"

	"github.com/avstanoeva/movienotes/internal/movies/models"
)

// MovieRepository is the data-access contract for movies.
//
// Lookups report absence as a nil entity with a nil error; errors are
// reserved for storage failures. Update and Delete address rows by ID and
// do not fail on a missing row; callers are expected to check existence
// first.
type MovieRepository interface {
	// Add persists a new movie and sets the server-assigned ID on it.
	Add(ctx context.Context, movie *models.Movie) error

	// GetByID returns the movie with the owner relation populated, or
	// (nil, nil) when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Movie, error)

	// GetAll returns every movie, owner relation populated, unfiltered
	// and unpaginated. Iteration order is backend-defined.
	GetAll(ctx context.Context) ([]models.Movie, error)

	// Update replaces all mutable fields of the row matching movie.ID.
	Update(ctx context.Context, movie *models.Movie) error

	// Delete removes the row matching movie.ID.
	Delete(ctx context.Context, movie *models.Movie) error
}

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// Add persists a new user and sets the server-assigned ID on it.
	// Returns ErrUsernameTaken when the username unique constraint
	// rejects the insert.
	Add(ctx context.Context, user *models.User) error

	// GetByID returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername returns (nil, nil) when no row matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Login matches the username case-insensitively and the password
	// hash exactly. Any mismatch, unknown user or wrong hash, comes
	// back as (nil, nil); this layer never says which part was wrong.
	Login(ctx context.Context, username, passwordHash string) (*models.User, error)

	// Update replaces all mutable fields of the row matching user.ID.
	Update(ctx context.Context, user *models.User) error

	// SavePassword persists only the password column for user.ID.
	SavePassword(ctx context.Context, user *models.User) error

	// Delete removes the row matching user.ID.
	Delete(ctx context.Context, user *models.User) error
}
