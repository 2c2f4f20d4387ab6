package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSidebarFile(t *testing.T) {
	assert.True(t, IsSidebarFile("website/sidebars.js"))
	assert.True(t, IsSidebarFile("sidebars.YAML"))
	assert.True(t, IsSidebarFile("nav.toml"))
	assert.False(t, IsSidebarFile("README.md"))
	assert.False(t, IsSidebarFile("sidebars"))
}

func TestFindSidebarFile(t *testing.T) {
	dir := t.TempDir()

	_, ok := FindSidebarFile(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sidebars.yaml"), []byte("s: []"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sidebars.js"), []byte("module.exports = {}"), 0644))

	path, ok := FindSidebarFile(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "sidebars.js"), path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "docs"), ExpandPath("~/docs"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}
