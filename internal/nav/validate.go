package nav

import (
	"fmt"
	"strings"
)

// WarningCode classifies a validation warning
type WarningCode string

const (
	// WarnEmptyLabel flags a category whose label is blank
	WarnEmptyLabel WarningCode = "empty-label"
	// WarnDeadEnd flags a category with no items and no link
	WarnDeadEnd WarningCode = "dead-end"
	// WarnDuplicateID flags a doc id referenced more than once in a sidebar
	WarnDuplicateID WarningCode = "duplicate-id"
)

// Warning is a non-fatal finding reported by Validate
type Warning struct {
	Code    WarningCode
	Path    Path
	ID      string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Path, w.Message, w.Code)
}

// Validate runs the style checks on a loaded tree and returns the
// warnings in walk order. Duplicate ids are reported once per sidebar,
// at the second occurrence.
func Validate(s Sidebars) []Warning {
	var warnings []Warning
	seen := make(map[string]map[string]int, len(s))

	countDoc := func(p Path, id string) {
		sidebar := p.Sidebar()
		ids := seen[sidebar]
		if ids == nil {
			ids = make(map[string]int)
			seen[sidebar] = ids
		}
		ids[id]++
		if ids[id] == 2 {
			warnings = append(warnings, Warning{
				Code:    WarnDuplicateID,
				Path:    p,
				ID:      id,
				Message: fmt.Sprintf("doc %q is referenced more than once", id),
			})
		}
	}

	_ = Walk(s, func(p Path, n Node) error {
		switch v := n.(type) {
		case DocRef:
			countDoc(p, v.ID)
		case Category:
			if strings.TrimSpace(v.Label) == "" {
				warnings = append(warnings, Warning{
					Code:    WarnEmptyLabel,
					Path:    p,
					Message: "category has an empty label",
				})
			}
			if doc, ok := v.Link.(DocRef); ok {
				countDoc(p.Key("link"), doc.ID)
			}
			if len(v.Items) == 0 && v.Link == nil {
				warnings = append(warnings, Warning{
					Code:    WarnDeadEnd,
					Path:    p,
					Message: fmt.Sprintf("category %q has no items and no link", v.Label),
				})
			}
		}
		return nil
	})

	return warnings
}
