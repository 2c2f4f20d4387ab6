package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/quantmind-br/sidenav-go/internal/nav"
	"gopkg.in/yaml.v3"
)

// Format names an export format
type Format string

// Supported export formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported export format
var ErrUnknownFormat = errors.New("unknown export format (use json or yaml)")

// Export writes the sidebars in the given format
func Export(w io.Writer, s nav.Sidebars, format Format) error {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return JSON(w, s)
	case FormatYAML, "yml":
		return YAML(w, s)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// JSON writes the sidebars as indented JSON
func JSON(w io.Writer, s nav.Sidebars) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nav.ToRaw(s))
}

// YAML writes the sidebars as YAML
func YAML(w io.Writer, s nav.Sidebars) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nav.ToRaw(s)); err != nil {
		return err
	}
	return enc.Close()
}

// Stats counts the nodes of each kind
func Stats(s nav.Sidebars) map[nav.Kind]int {
	stats := make(map[nav.Kind]int)
	for _, n := range nav.All(s) {
		stats[n.Kind()]++
	}
	return stats
}

// Summary writes a one-line count of nodes per kind, e.g.
// "2 sidebars, 5 nodes (category 1, doc 4)"
func Summary(w io.Writer, s nav.Sidebars) error {
	stats := Stats(s)
	kinds := make([]string, 0, len(stats))
	total := 0
	for kind, count := range stats {
		kinds = append(kinds, fmt.Sprintf("%s %d", kind, count))
		total += count
	}
	sort.Strings(kinds)

	_, err := fmt.Fprintf(w, "%d sidebars, %d nodes (%s)\n", len(s), total, strings.Join(kinds, ", "))
	return err
}
