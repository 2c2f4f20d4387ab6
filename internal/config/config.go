package config

import (
	"fmt"
	"time"
)

// Config represents the application configuration
type Config struct {
	Nav     NavConfig     `mapstructure:"nav" yaml:"nav"`
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
	Docs    DocsConfig    `mapstructure:"docs" yaml:"docs"`
	Watch   WatchConfig   `mapstructure:"watch" yaml:"watch"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// NavConfig contains sidebar loading settings
type NavConfig struct {
	MaxDepth int  `mapstructure:"max_depth" yaml:"max_depth" jsonschema:"minimum=1,description=Maximum nesting depth of sidebar items"`
	Strict   bool `mapstructure:"strict" yaml:"strict" jsonschema:"description=Reject keys outside the sidebar vocabulary"`
}

// SourceConfig contains sidebar file decoding settings
type SourceConfig struct {
	JSTimeout time.Duration `mapstructure:"js_timeout" yaml:"js_timeout" jsonschema:"description=Evaluation timeout for JavaScript sidebar files"`
}

// DocsConfig locates the documentation tree used to expand
// autogenerated items
type DocsConfig struct {
	Root string `mapstructure:"root" yaml:"root" jsonschema:"description=Docs directory used to expand autogenerated items"`
}

// WatchConfig contains watch mode settings
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" jsonschema:"description=Quiet period before a changed file is reloaded"`
}

// RenderConfig contains tree output settings
type RenderConfig struct {
	Color bool `mapstructure:"color" yaml:"color" jsonschema:"description=Colored tree output"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" jsonschema:"enum=pretty,enum=json"`
}

// Validate validates the configuration, replacing out-of-range values
// with defaults
func (c *Config) Validate() error {
	if c.Nav.MaxDepth < 1 {
		c.Nav.MaxDepth = DefaultMaxDepth
	}
	if c.Source.JSTimeout < MinJSTimeout {
		c.Source.JSTimeout = DefaultJSTimeout
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = DefaultDebounce
	}
	if c.Docs.Root == "" {
		c.Docs.Root = DefaultDocsRoot
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "":
		c.Logging.Format = DefaultLogFormat
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (use pretty or json)", c.Logging.Format)
	}
	return nil
}
