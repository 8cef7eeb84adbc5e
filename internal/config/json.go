package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey     string `json:"hash_key"`
		LogPath     string `json:"log_path"`
		SecretID    string `json:"secret_id"`
		CopyField   string `json:"copy_field"`
		DownloadDir string `json:"download_dir"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GraphQLPath    string   `json:"graphql_path"`
		FilesPath      string   `json:"files_path"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Limits struct {
		MaxFileSize   int64 `json:"max_file_size"`
		MaxTextLength int   `json:"max_text_length"`
	} `json:"limits,omitempty"`

	Workers struct {
		UploadConcurrency int `json:"upload_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:     jsonCfg.App.HashKey,
			LogPath:     jsonCfg.App.LogPath,
			SecretID:    jsonCfg.App.SecretID,
			CopyField:   jsonCfg.App.CopyField,
			DownloadDir: jsonCfg.App.DownloadDir,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GraphQLPath:    jsonCfg.Adapter.GraphQLPath,
			FilesPath:      jsonCfg.Adapter.FilesPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Limits: Limits{
			MaxFileSize:   jsonCfg.Limits.MaxFileSize,
			MaxTextLength: jsonCfg.Limits.MaxTextLength,
		},
		Workers: Workers{UploadConcurrency: jsonCfg.Workers.UploadConcurrency},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
