package source

import "errors"

// Sentinel errors for the source package
var (
	// ErrFileNotFound indicates the sidebar file does not exist
	ErrFileNotFound = errors.New("sidebar file not found")

	// ErrInvalidFormat indicates the file could not be decoded
	ErrInvalidFormat = errors.New("sidebar file must be valid JSON, YAML, TOML or JavaScript")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, .yml, .toml, .js, .cjs or .mjs)")

	// ErrNoExport indicates a JavaScript module exported no sidebar object
	ErrNoExport = errors.New("sidebar module must export an object")

	// ErrJSTimeout indicates JavaScript evaluation took too long
	ErrJSTimeout = errors.New("sidebar module evaluation timed out")
)
