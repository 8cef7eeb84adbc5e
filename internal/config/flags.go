package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address, host:port or URL
//	-graphql-path GraphQL endpoint path
//	-files-path REST file endpoint root
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token bearer token
//	-hash-key request integrity hash key
//	-log log file path
//	-secret secret id to open
//	-copy field to copy to the clipboard
//	-download-dir directory for downloaded attachments
//	-max-file-size attachment size limit in bytes
//	-max-text-length text blob length limit
//	-upload-concurrency parallel attachment uploads (0: no cap)
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secret-keeper", flag.ContinueOnError)

	var (
		address           string
		graphQLPath       string
		filesPath         string
		requestTimeout    time.Duration
		token             string
		hashKey           string
		logPath           string
		secretID          string
		copyField         string
		downloadDir       string
		maxFileSize       int64
		maxTextLength     int
		uploadConcurrency int
		jsonConfigPath    string
	)

	fs.StringVar(&address, "a", "", "Server address host:port or URL")
	fs.StringVar(&graphQLPath, "graphql-path", "", "GraphQL endpoint path")
	fs.StringVar(&filesPath, "files-path", "", "REST file endpoint root")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&secretID, "secret", "", "Secret id to open")
	fs.StringVar(&copyField, "copy", "", "Field to copy to the clipboard")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded attachments")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Attachment size limit in bytes")
	fs.IntVar(&maxTextLength, "max-text-length", 0, "Text blob length limit")
	fs.IntVar(&uploadConcurrency, "upload-concurrency", 0, "Parallel attachment uploads (0: no cap)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:     hashKey,
			LogPath:     logPath,
			SecretID:    secretID,
			CopyField:   copyField,
			DownloadDir: downloadDir,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			GraphQLPath:    graphQLPath,
			FilesPath:      filesPath,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Limits: Limits{
			MaxFileSize:   maxFileSize,
			MaxTextLength: maxTextLength,
		},
		Workers:      Workers{UploadConcurrency: uploadConcurrency},
		JSONFilePath: jsonConfigPath,
	}, nil
}
