// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is read.
const (
	DefaultGraphQLPath    = "/graphql"
	DefaultFilesPath      = "/rest/file"
	DefaultRequestTimeout = 15 * time.Second

	// DefaultMaxFileSize is the attachment size limit (10 MiB).
	DefaultMaxFileSize int64 = 10 << 20
	// DefaultMaxTextLength is the text blob length limit in characters.
	DefaultMaxTextLength = 524288
)

// StructuredConfig is the top-level configuration container for the
// secret keeper client. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client application settings: integrity hash key, log file
	// and the command-line actions (secret to open, field to copy).
	App App `envPrefix:"APP_"`

	// Adapter holds the server address, endpoint paths, request timeout
	// and bearer token used by the GraphQL and file transfer adapters.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Limits bounds user input accepted by the editors.
	Limits Limits `envPrefix:"LIMITS_"`

	// Workers holds configuration for the attachment upload fan-out.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values of the client.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogPath is the file the client appends its JSON log to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// SecretID is the secret opened on start.
	// Env: APP_SECRET_ID
	SecretID string `env:"SECRET_ID"`

	// CopyField, when set, copies the named field of the opened secret to
	// the clipboard after unlocking instead of showing the secret.
	// Env: APP_COPY_FIELD
	CopyField string `env:"COPY_FIELD"`

	// DownloadDir is where downloaded attachments are written.
	// Env: APP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Adapter holds the settings of the outbound HTTP adapters.
type Adapter struct {
	// HTTPAddress is the server base address, either "host:port" or a full
	// URL (e.g. "https://vault.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GraphQLPath is the path of the GraphQL endpoint.
	// Env: ADAPTER_GRAPHQL_PATH
	GraphQLPath string `env:"GRAPHQL_PATH"`

	// FilesPath is the root path of the REST file endpoints.
	// Env: ADAPTER_FILES_PATH
	FilesPath string `env:"FILES_PATH"`

	// RequestTimeout is the maximum duration of one outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Limits bounds user input.
type Limits struct {
	// MaxFileSize is the attachment size limit in bytes.
	// Env: LIMITS_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// MaxTextLength is the text blob length limit in characters.
	// Env: LIMITS_MAX_TEXT_LENGTH
	MaxTextLength int `env:"MAX_TEXT_LENGTH"`
}

// Workers holds configuration for background work.
type Workers struct {
	// UploadConcurrency caps parallel attachment uploads. Zero uploads all
	// pending attachments at once.
	// Env: WORKERS_UPLOAD_CONCURRENCY
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			GraphQLPath:    DefaultGraphQLPath,
			FilesPath:      DefaultFilesPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Limits: Limits{
			MaxFileSize:   DefaultMaxFileSize,
			MaxTextLength: DefaultMaxTextLength,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
