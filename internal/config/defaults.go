package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Nav defaults
	DefaultMaxDepth = 64
	DefaultStrict   = false

	// Source defaults
	DefaultJSTimeout = 5 * time.Second
	MinJSTimeout     = 100 * time.Millisecond

	// Docs defaults
	DefaultDocsRoot = "./docs"

	// Watch defaults
	DefaultDebounce = 200 * time.Millisecond

	// Render defaults
	DefaultColor = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sidenav"
	}
	return filepath.Join(home, ".sidenav")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Nav: NavConfig{
			MaxDepth: DefaultMaxDepth,
			Strict:   DefaultStrict,
		},
		Source: SourceConfig{
			JSTimeout: DefaultJSTimeout,
		},
		Docs: DocsConfig{
			Root: DefaultDocsRoot,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		Render: RenderConfig{
			Color: DefaultColor,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
