package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/quantmind-br/sidenav-go/internal/schema"
	"gopkg.in/yaml.v3"
)

// durationPattern matches time.ParseDuration input such as "1m30s"
const durationPattern = `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`

var durationType = reflect.TypeOf(time.Duration(0))

// GenerateSchema generates the JSON Schema of the config file from Config
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown keys are almost always typos.
		AllowAdditionalProperties: false,
		// Every key is optional; missing ones take defaults.
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
		FieldNameTag:               "yaml",
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != durationType {
				return nil
			}
			// viper accepts both "5s" and a nanosecond count
			return &jsonschema.Schema{
				OneOf: []*jsonschema.Schema{
					{Type: "string", Pattern: durationPattern},
					{Type: "integer"},
				},
			}
		},
	}

	s := r.Reflect(&Config{})
	s.Title = "sidenav configuration"
	s.Description = "Settings read from ~/.sidenav/config.yaml or ./config.yaml."
	s.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(s, "", "  ")
}

// ValidateFile checks a YAML config file against GenerateSchema
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if raw == nil {
		return nil
	}

	doc, err := GenerateSchema()
	if err != nil {
		return err
	}
	v, err := schema.Compile("config.json", doc)
	if err != nil {
		return err
	}
	return v.Validate(raw)
}
