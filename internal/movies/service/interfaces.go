package service

import (
	"context"

	"github.com/avstanoeva/movienotes/internal/movies/models"
	"github.com/avstanoeva/movienotes/internal/utils"
)

// MovieService holds the business rules of the movie catalog: field
// validation, owner resolution, and entity/DTO mapping. Persistence is
// delegated to the repositories.
type MovieService interface {
	AddMovie(ctx context.Context, dto models.AddMovieDTO) (models.MovieDTO, error)
	GetMovieByID(ctx context.Context, id int64) (models.MovieDTO, error)

	// GetAllMovies returns the caller's movies. An empty result is an
	// ErrMovieNotFound failure, not an empty list.
	GetAllMovies(ctx context.Context, ownerUserID int64) ([]models.MovieDTO, error)

	// FilterMovies narrows the caller's movies by genre and/or year.
	// Nil criteria are not applied; at least one must be supplied.
	FilterMovies(ctx context.Context, genre *models.Genre, year *int, ownerUserID int64) ([]models.MovieDTO, error)

	UpdateMovie(ctx context.Context, dto models.UpdateMovieDTO) (models.MovieDTO, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// UserService handles account lifecycle and credentials for the movie app.
type UserService interface {
	RegisterUser(ctx context.Context, dto models.RegisterUserDTO) (*models.User, error)

	// LoginUser verifies credentials and returns a signed bearer token.
	LoginUser(ctx context.Context, dto models.LoginUserDTO) (string, error)

	ChangePassword(ctx context.Context, dto models.ChangePasswordDTO) error

	// DeleteUser removes the account with the given ID. Only the account
	// owner may delete it; a mismatched caller fails with
	// ErrInvalidUserData.
	DeleteUser(ctx context.Context, id int64, caller utils.CallerIdentity) error

	// UpdateUserDetails applies the supplied profile fields to the
	// caller's own account.
	UpdateUserDetails(ctx context.Context, dto models.UpdateUserDetailsDTO, callerUserID int64) (*models.User, error)
}
