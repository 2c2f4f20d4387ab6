package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/quantmind-br/sidenav-go/internal/nav"
)

// ErrUnknownSidebar indicates TreeOptions.Sidebar names no sidebar
var ErrUnknownSidebar = errors.New("unknown sidebar")

// TreeOptions controls Tree output
type TreeOptions struct {
	// Sidebar limits output to one sidebar (empty = all)
	Sidebar string
	// Color enables lipgloss styling
	Color bool
	// MaxDepth limits how many levels are printed (0 = all)
	MaxDepth int
}

// Tree writes an indented tree of the sidebars, in walk order
func Tree(w io.Writer, s nav.Sidebars, opts TreeOptions) error {
	names := s.Names()
	if opts.Sidebar != "" {
		if _, ok := s[opts.Sidebar]; !ok {
			return fmt.Errorf("%w: %s (have %s)", ErrUnknownSidebar, opts.Sidebar, strings.Join(names, ", "))
		}
		names = []string{opts.Sidebar}
	}

	p := newPalette(opts.Color)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.sidebar(name))
		b.WriteString(p.muted(fmt.Sprintf(" (%d items)", len(s[name]))))
		b.WriteByte('\n')
		writeItems(&b, p, s[name], "", 1, opts.MaxDepth)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeItems(b *strings.Builder, p palette, items []nav.Node, indent string, depth, maxDepth int) {
	for i, n := range items {
		last := i == len(items)-1
		branch, childIndent := "├── ", "│   "
		if last {
			branch, childIndent = "└── ", "    "
		}
		b.WriteString(p.muted(indent + branch))
		b.WriteString(describe(p, n))
		b.WriteByte('\n')

		cat, ok := n.(nav.Category)
		if !ok || len(cat.Items) == 0 {
			continue
		}
		if maxDepth > 0 && depth >= maxDepth {
			b.WriteString(p.muted(fmt.Sprintf("%s%s… %d more\n", indent, childIndent, len(cat.Items))))
			continue
		}
		writeItems(b, p, cat.Items, indent+childIndent, depth+1, maxDepth)
	}
}

func describe(p palette, n nav.Node) string {
	switch v := n.(type) {
	case nav.DocRef:
		if v.Label != "" {
			return v.Label + " " + p.muted("["+v.ID+"]")
		}
		return v.ID
	case nav.Category:
		label := v.Label
		if strings.TrimSpace(label) == "" {
			label = p.warn("(no label)")
		}
		out := p.category(label + "/")
		switch link := v.Link.(type) {
		case nav.DocRef:
			out += p.muted(" → " + link.ID)
		case nav.GeneratedIndex:
			out += p.muted(" → generated index")
		}
		if v.Collapsed {
			out += p.muted(" (collapsed)")
		}
		if !v.Collapsible {
			out += p.muted(" (fixed)")
		}
		return out
	case nav.Autogenerated:
		return p.warn("<autogenerated " + v.DirName + ">")
	case nav.GeneratedIndex:
		title := v.Title
		if title == "" {
			title = "generated index"
		}
		return p.muted("<" + title + ">")
	case nav.ExternalLink:
		return v.Label + " " + p.link("↗ "+v.Href)
	default:
		return fmt.Sprintf("%v", n)
	}
}
