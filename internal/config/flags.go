package config

import (
	"flag"
	"time"
)

// parseFlags parses configuration flags from args (os.Args[1:] in the
// binaries). A dedicated FlagSet keeps the function re-entrant for tests.
//
// Flags:
//
//	-a server address in [host]:[port] format
//	-backend storage backend (postgres, sqlite, memory)
//	-d database DSN
//	-sqlite-path SQLite database file path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "72h")
//	-request-timeout request timeout (e.g., "30s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("movienotes", flag.ContinueOnError)

	var (
		serverAddress  string
		backend        string
		databaseDSN    string
		sqlitePath     string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&backend, "backend", "", "Storage backend (postgres, sqlite, memory)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 72h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			SQLite:  SQLite{Path: sqlitePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
