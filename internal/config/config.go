package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the showcase
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the admin credential hash,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the record stores and the public
	// upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the outbound SMTP transport settings for the contact
	// form endpoint.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AdminPasswordHash is the bcrypt hash of the admin password. The
	// /api/admin/login handler compares submitted passwords against it
	// server-side; no plaintext credential lives in the codebase.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify admin JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an admin token remains valid
	// after issuance (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// DB holds the optional relational backend settings. When DSN is
	// empty the JSON-document record stores are used instead.
	DB DB `envPrefix:"DB_"`

	// Data holds the JSON-document record store settings.
	Data Data `envPrefix:"DATA_"`

	// Files holds the public upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the optional PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name. Leave empty to store
	// records in JSON documents on disk.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Data holds the JSON-document record store settings.
type Data struct {
	// Dir is the directory holding apps.json and contents.json.
	// Env: STORAGE_DATA_DIR
	Dir string `env:"DIR"`
}

// Files holds file-system settings for uploaded binary assets.
type Files struct {
	// UploadDir is the directory that backs the public /uploads/ URL
	// prefix. Category subdirectories are created beneath it on demand.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxUploadBytes is the size ceiling for a single uploaded blob.
	// Env: STORAGE_FILES_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds outbound SMTP settings for the contact form.
type Mail struct {
	// Host is the SMTP server host. Env: MAIL_SMTP_HOST
	Host string `env:"SMTP_HOST"`

	// Port is the SMTP server port. Env: MAIL_SMTP_PORT
	Port int `env:"SMTP_PORT"`

	// Username authenticates against the SMTP server and doubles as the
	// From address. Env: MAIL_SMTP_USER
	Username string `env:"SMTP_USER"`

	// Password is the SMTP credential (e.g. an app password).
	// Env: MAIL_SMTP_PASS
	Password string `env:"SMTP_PASS"`

	// To is the destination mailbox for submissions. Defaults to
	// Username when empty. Env: MAIL_TO
	To string `env:"TO"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "app-showcase",
			TokenDuration: 12 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			Data:  Data{Dir: "data"},
			Files: Files{UploadDir: "public/uploads", MaxUploadBytes: 10 << 20},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
