package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants every binary needs before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}

	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return ErrNoDatabaseDSN
		}
	case BackendSQLite:
		if cfg.Storage.SQLite.Path == "" {
			return ErrNoSQLitePath
		}
	case BackendMemory:
	default:
		return ErrUnknownBackend
	}

	return nil
}
