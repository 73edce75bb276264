package config

import "errors"

// Validation errors returned by [DaemonConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid local HTTP API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote transport settings.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
