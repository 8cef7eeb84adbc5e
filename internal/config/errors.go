package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a field to copy without a secret to open).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLimitsConfigs indicates a non-positive input limit.
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative upload concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
