package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// LogPath is the client log file.
	LogPath string
	// SecretID is the secret to open.
	SecretID string
	// CopyField is the field copied to the clipboard after unlocking.
	CopyField string
	// DownloadDir receives downloaded attachments.
	DownloadDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// GraphQLPath is the GraphQL endpoint path.
	GraphQLPath string
	// FilesPath is the REST file endpoint root.
	FilesPath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the initial bearer token.
	Token string
}

// ClientLimits bounds user input in the editors.
type ClientLimits struct {
	MaxFileSize   int64
	MaxTextLength int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// UploadConcurrency caps parallel attachment uploads (0: no cap).
	UploadConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address, paths and timeouts.
	Adapter ClientAdapter
	// Limits contains input limits.
	Limits ClientLimits
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects cfg onto the client view without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:     cfg.App.HashKey,
			LogPath:     cfg.App.LogPath,
			SecretID:    cfg.App.SecretID,
			CopyField:   cfg.App.CopyField,
			DownloadDir: cfg.App.DownloadDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GraphQLPath:    cfg.Adapter.GraphQLPath,
			FilesPath:      cfg.Adapter.FilesPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Limits: ClientLimits{
			MaxFileSize:   cfg.Limits.MaxFileSize,
			MaxTextLength: cfg.Limits.MaxTextLength,
		},
		Workers: ClientWorkers{UploadConcurrency: cfg.Workers.UploadConcurrency},
	}
}
