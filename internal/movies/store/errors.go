package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrUsernameTaken is returned when an insert trips the unique
	// constraint on the username column. The service layer performs its
	// own pre-insert uniqueness check; this error is the backstop for
	// the race between that check and the insert.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnsupportedBackend is returned by NewStorages for a backend
	// selector this app does not wire.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
