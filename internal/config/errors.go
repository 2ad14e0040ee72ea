package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid document-store settings:
	// an unknown driver, or the redis driver with no address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates missing HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
