package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8080",
		"-graphql-path", "/gql",
		"-files-path", "/files",
		"-request-timeout", "45s",
		"-token", "token-1",
		"-hash-key", "hk",
		"-log", "/tmp/log",
		"-secret", "s-1",
		"-copy", "cardNumber",
		"-download-dir", "/tmp/dl",
		"-max-file-size", "1024",
		"-max-text-length", "64",
		"-upload-concurrency", "2",
		"-c", "/etc/keeper.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/gql", cfg.Adapter.GraphQLPath)
	assert.Equal(t, "/files", cfg.Adapter.FilesPath)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "token-1", cfg.Adapter.Token)

	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "/tmp/log", cfg.App.LogPath)
	assert.Equal(t, "s-1", cfg.App.SecretID)
	assert.Equal(t, "cardNumber", cfg.App.CopyField)
	assert.Equal(t, "/tmp/dl", cfg.App.DownloadDir)

	assert.Equal(t, int64(1024), cfg.Limits.MaxFileSize)
	assert.Equal(t, 64, cfg.Limits.MaxTextLength)
	assert.Equal(t, 2, cfg.Workers.UploadConcurrency)
	assert.Equal(t, "/etc/keeper.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/etc/alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/alias.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "localhost:9090"})
	require.Error(t, err)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "later"})
	require.Error(t, err)
}
