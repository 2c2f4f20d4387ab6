package resolver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// categoryFiles are the metadata files read from a category directory,
// in lookup order
var categoryFiles = []string{"_category_.json", "_category_.yml", "_category_.yaml"}

// CategoryMeta is the content of a _category_ metadata file
type CategoryMeta struct {
	Label       string   `json:"label" yaml:"label"`
	Position    *float64 `json:"position" yaml:"position"`
	Collapsed   *bool    `json:"collapsed" yaml:"collapsed"`
	Collapsible *bool    `json:"collapsible" yaml:"collapsible"`
}

// readCategoryMeta loads the metadata file of dir. A directory without
// one yields nil and no error.
func readCategoryMeta(dir string) (*CategoryMeta, error) {
	for _, name := range categoryFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var meta CategoryMeta
		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(data, &meta)
		} else {
			err = yaml.Unmarshal(data, &meta)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, path, err)
		}
		return &meta, nil
	}
	return nil, nil
}
