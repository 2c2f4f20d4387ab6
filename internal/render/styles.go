// Package render prints loaded sidebars for people (an indented tree)
// and for tools (JSON or YAML in the sidebar file vocabulary).
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Theme colors
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	linkColor    = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFAA33"}

	sidebarStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	linkStyle     = lipgloss.NewStyle().Foreground(linkColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	warnStyle     = lipgloss.NewStyle().Foreground(warnColor)
)

// palette applies styles, or nothing when color is off
type palette struct {
	sidebar  func(...string) string
	category func(...string) string
	link     func(...string) string
	muted    func(...string) string
	warn     func(...string) string
}

func newPalette(color bool) palette {
	if !color {
		plain := func(s ...string) string { return strings.Join(s, "") }
		return palette{sidebar: plain, category: plain, link: plain, muted: plain, warn: plain}
	}
	return palette{
		sidebar:  sidebarStyle.Render,
		category: categoryStyle.Render,
		link:     linkStyle.Render,
		muted:    mutedStyle.Render,
		warn:     warnStyle.Render,
	}
}
