package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	t.Run("sidebar keys", func(t *testing.T) {
		fm := parseFrontmatter("---\nid: intro\nsidebar_label: Welcome\nsidebar_position: 2\n---\n# Intro\n")

		require.NotNil(t, fm)
		assert.Equal(t, "intro", fm.ID)
		assert.Equal(t, "Welcome", fm.SidebarLabel)
		require.NotNil(t, fm.SidebarPosition)
		assert.Equal(t, 2.0, *fm.SidebarPosition)
	})

	t.Run("windows line endings", func(t *testing.T) {
		fm := parseFrontmatter("---\r\ntitle: Setup\r\n---\r\nbody")

		require.NotNil(t, fm)
		assert.Equal(t, "Setup", fm.Title)
	})

	t.Run("no front matter", func(t *testing.T) {
		assert.Nil(t, parseFrontmatter("# Just a heading\n"))
	})

	t.Run("unclosed block", func(t *testing.T) {
		assert.Nil(t, parseFrontmatter("---\nid: intro\n# Intro\n"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		assert.Nil(t, parseFrontmatter("---\nid: [unclosed\n---\n"))
	})

	t.Run("horizontal rule is not front matter", func(t *testing.T) {
		assert.Nil(t, parseFrontmatter("-----\nbody"))
	})
}
