// Package schema checks decoded sidebar literals against the embedded
// sidebar JSON Schema. The schema is stricter than nav.Load: it rejects
// keys outside the sidebar vocabulary.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sidebars.schema.json
var embeddedSchemaData []byte

// ErrSchema indicates the literal does not match the sidebar schema
var ErrSchema = errors.New("schema validation failed")

// Validator validates sidebar literals against the embedded JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new schema validator, loading the embedded schema.
func NewValidator() (*Validator, error) {
	return Compile("sidebars.json", embeddedSchemaData)
}

// Compile builds a validator from any JSON Schema document. name is the
// resource URL used in error messages.
func Compile(name string, data []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &Validator{schema: schema}, nil
}

// Source returns the embedded schema document
func Source() []byte {
	out := make([]byte, len(embeddedSchemaData))
	copy(out, embeddedSchemaData)
	return out
}

// Validate validates a decoded literal against the schema.
func (v *Validator) Validate(raw any) error {
	// Round-trip through JSON so that values from any decoder (YAML,
	// TOML, JavaScript) are presented as plain JSON types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal value to JSON for validation: %w", err)
	}

	var dataToValidate any
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			var messages []string
			collectErrors(validationErr, &messages)
			return fmt.Errorf("%w:\n%s", ErrSchema, strings.Join(messages, "\n"))
		}
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
