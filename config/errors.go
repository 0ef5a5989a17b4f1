package config

import "errors"

// Sentinel errors for configuration.
var (
	// ErrUnsupportedFormat indicates the file extension is not .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid indicates a loaded configuration failed validation.
	ErrInvalid = errors.New("invalid config")
)
