package resolver

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the sidebar-related keys of a doc's YAML front matter
type Frontmatter struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	SidebarLabel    string   `yaml:"sidebar_label"`
	SidebarPosition *float64 `yaml:"sidebar_position"`
}

// parseFrontmatter returns the front matter at the start of content, or
// nil when there is none or it is not valid YAML
func parseFrontmatter(content string) *Frontmatter {
	content = strings.TrimLeft(content, "\ufeff \t\r\n")

	if !strings.HasPrefix(content, "---") {
		return nil
	}

	rest := content[3:]
	if strings.HasPrefix(rest, "\n") {
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "\r\n") {
		rest = rest[2:]
	} else {
		return nil
	}

	lines := strings.Split(rest, "\n")
	yamlLines := []string{}
	closed := false

	for _, line := range lines {
		if strings.TrimRight(line, "\r") == "---" {
			closed = true
			break
		}
		yamlLines = append(yamlLines, strings.TrimRight(line, "\r"))
	}

	if !closed {
		return nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(yamlLines, "\n")), &fm); err != nil {
		return nil
	}
	return &fm
}
