package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/quantmind-br/sidenav-go/internal/schema"
	"github.com/quantmind-br/sidenav-go/internal/utils"
	"gopkg.in/yaml.v3"
)

// DefaultJSTimeout bounds evaluation of JavaScript sidebar modules
const DefaultJSTimeout = 5 * time.Second

// Options controls how a decoded file is turned into sidebars
type Options struct {
	// MaxDepth is passed to nav.WithMaxDepth (0 = nav.DefaultMaxDepth)
	MaxDepth int
	// Strict rejects unknown keys by checking the literal against the
	// sidebar JSON Schema before loading
	Strict bool
}

// Loader reads sidebar files
type Loader struct {
	jsTimeout time.Duration
	logger    *utils.Logger

	schemaOnce sync.Once
	validator  *schema.Validator
	schemaErr  error
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithJSTimeout overrides DefaultJSTimeout
func WithJSTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.jsTimeout = d
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *utils.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a new sidebar file loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		jsTimeout: DefaultJSTimeout,
		logger:    utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes a sidebar file from the given path
func (l *Loader) Load(path string) (any, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sidebar file: %w", err)
	}

	l.logger.Debug().Str("file", path).Int("bytes", len(data)).Msg("Decoding sidebar file")
	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes decodes sidebar data in the format named by ext
func (l *Loader) LoadFromBytes(data []byte, ext string) (any, error) {
	ext = strings.ToLower(ext)

	switch ext {
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return raw, nil
	case ".json":
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return raw, nil
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return raw, nil
	case ".js", ".cjs", ".mjs":
		return evalModule(data, l.jsTimeout)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}
}

// LoadSidebars decodes the file at path, optionally checks it against
// the schema, and loads it into a tree. The tree's validation warnings
// are returned alongside it.
func (l *Loader) LoadSidebars(path string, opts Options) (nav.Sidebars, []nav.Warning, error) {
	raw, err := l.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return l.Build(raw, opts)
}

// Build turns a decoded literal into sidebars and their warnings
func (l *Loader) Build(raw any, opts Options) (nav.Sidebars, []nav.Warning, error) {
	if opts.Strict {
		v, err := l.schemaValidator()
		if err != nil {
			return nil, nil, err
		}
		if err := v.Validate(raw); err != nil {
			return nil, nil, err
		}
	}

	sidebars, err := nav.Load(raw, nav.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		return nil, nil, err
	}

	warnings := nav.Validate(sidebars)
	l.logger.Debug().
		Int("sidebars", len(sidebars)).
		Int("nodes", nav.Count(sidebars)).
		Int("warnings", len(warnings)).
		Msg("Sidebars loaded")
	return sidebars, warnings, nil
}

func (l *Loader) schemaValidator() (*schema.Validator, error) {
	l.schemaOnce.Do(func() {
		l.validator, l.schemaErr = schema.NewValidator()
	})
	return l.validator, l.schemaErr
}
