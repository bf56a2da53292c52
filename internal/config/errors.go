package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or a backend without its settings).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown blob format or a malformed sync code).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid listen or limit settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidQuotaConfigs indicates a non-positive daily ceiling.
	ErrInvalidQuotaConfigs = errors.New("invalid quota configuration")
	// ErrInvalidGCConfigs indicates negative sweep settings.
	ErrInvalidGCConfigs = errors.New("invalid gc configuration")
)
