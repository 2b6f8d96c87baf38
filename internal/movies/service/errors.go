package service

import "errors"

// Sentinel errors of the movie service layer. Handlers match them with
// errors.Is to pick HTTP statuses; the wrapped message carries the
// human-readable reason returned to the caller.
var (
	ErrInvalidMovieData = errors.New("invalid movie data")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrOwnerNotFound    = errors.New("movie owner not found")

	ErrInvalidUserData = errors.New("invalid user data")
	ErrUserNotFound    = errors.New("user not found")
)
