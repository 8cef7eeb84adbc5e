// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

// validate checks the merged [StructuredConfig] before it is projected.
// Only cross-source invariants live here; per-consumer rules are in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.JSONFilePath != "" && filepath.Ext(cfg.JSONFilePath) != ".json" {
		return fmt.Errorf("config file %q must have a .json extension", cfg.JSONFilePath)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.CopyField != "" && cfg.App.SecretID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Limits.MaxFileSize <= 0 || cfg.Limits.MaxTextLength <= 0 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Workers.UploadConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
