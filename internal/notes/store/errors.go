package store

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
)
