package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete. Matched with [errors.Is] at startup.
var (
	ErrNoServerAddress = errors.New("server address is not configured")
	ErrNoTokenSignKey  = errors.New("token sign key is not configured")
	ErrNoDatabaseDSN   = errors.New("database DSN is required for the postgres backend")
	ErrNoSQLitePath    = errors.New("database file path is required for the sqlite backend")
	ErrUnknownBackend  = errors.New("unknown storage backend")
)
