package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-data-dir directory holding the JSON record documents
//	-upload-dir directory backing the public /uploads/ prefix
//	-d database DSN (enables the PostgreSQL backend)
//	-c/-config json file path with configs
//	-admin-password-hash bcrypt hash of the admin password
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "12h")
//	-request-timeout request timeout (e.g. "30s")
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

// parseFlags works on a private FlagSet so tests can feed their own argument
// lists without touching flag.CommandLine.
func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("app-showcase", flag.ContinueOnError)

	var (
		serverAddress     string
		dataDir           string
		uploadDir         string
		databaseDSN       string
		jsonConfigPath    string
		adminPasswordHash string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		requestTimeout    time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&dataDir, "data-dir", "", "JSON record document directory")
	fs.StringVar(&uploadDir, "upload-dir", "", "Public upload directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Bcrypt hash of the admin password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			AdminPasswordHash: adminPasswordHash,
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Data:  Data{Dir: dataDir},
			Files: Files{UploadDir: uploadDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
