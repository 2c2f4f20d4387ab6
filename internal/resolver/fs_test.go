package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (slash-separated path -> content) under root
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func useCasesTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"use_cases/02-search.md":             "# Search\n",
		"use_cases/01-rag.md":                "---\nsidebar_label: RAG\n---\n# Retrieval\n",
		"use_cases/zeta.md":                  "---\nsidebar_position: 1\n---\n",
		"use_cases/_draft.md":                "# Draft\n",
		"use_cases/notes.txt":                "not a doc",
		"use_cases/advanced/_category_.json": `{"label": "Advanced topics", "position": 0.5, "collapsed": false}`,
		"use_cases/advanced/index.md":        "# Advanced\n",
		"use_cases/advanced/tuning.mdx":      "# Tuning\n",
		"use_cases/empty/.gitkeep":           "",
		"use_cases/03-extras/README.md":      "# Extras\n",
	})
	return root
}

func TestFS_ResolveAutogenerated(t *testing.T) {
	root := useCasesTree(t)
	r := NewFS(root)

	nodes, err := r.ResolveAutogenerated(context.Background(), "use_cases")

	require.NoError(t, err)
	assert.Equal(t, []nav.Node{
		nav.Category{
			Label:       "Advanced topics",
			Collapsible: true,
			Link:        nav.DocRef{ID: "use_cases/advanced/index", Explicit: true},
			Items:       []nav.Node{nav.DocRef{ID: "use_cases/advanced/tuning"}},
		},
		nav.DocRef{ID: "use_cases/zeta"},
		nav.DocRef{ID: "use_cases/rag", Label: "RAG", Explicit: true},
		nav.DocRef{ID: "use_cases/search"},
		nav.Category{
			Label:       "extras",
			Collapsed:   true,
			Collapsible: true,
			Link:        nav.DocRef{ID: "use_cases/extras/README", Explicit: true},
			Items:       []nav.Node{},
		},
	}, nodes)
}

func TestFS_FrontmatterID(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"guides/setup.md": "---\nid: getting-started\ntitle: Setup\n---\n",
	})

	nodes, err := NewFS(root).ResolveAutogenerated(context.Background(), "guides")

	require.NoError(t, err)
	assert.Equal(t, []nav.Node{nav.DocRef{ID: "guides/getting-started"}}, nodes)
}

func TestFS_YAMLCategoryMetadata(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"guides/deploy/_category_.yml": "label: Deployment\ncollapsible: false\n",
		"guides/deploy/docker.md":      "# Docker\n",
	})

	nodes, err := NewFS(root).ResolveAutogenerated(context.Background(), "guides")

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	cat := nodes[0].(nav.Category)
	assert.Equal(t, "Deployment", cat.Label)
	assert.False(t, cat.Collapsible)
	assert.Nil(t, cat.Link)
}

func TestFS_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewFS(t.TempDir()).ResolveAutogenerated(context.Background(), "nope")

		assert.ErrorIs(t, err, ErrDirNotFound)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"guides.md": "# Guides\n"})

		_, err := NewFS(root).ResolveAutogenerated(context.Background(), "guides.md")

		assert.ErrorIs(t, err, ErrDirNotFound)
	})

	t.Run("invalid category metadata", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"guides/broken/_category_.json": "{not json",
			"guides/broken/a.md":            "# A\n",
		})

		_, err := NewFS(root).ResolveAutogenerated(context.Background(), "guides")

		assert.ErrorIs(t, err, ErrInvalidMetadata)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFS(useCasesTree(t)).ResolveAutogenerated(ctx, "use_cases")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFS_ExpandSidebars(t *testing.T) {
	root := useCasesTree(t)
	sidebars, err := nav.Load(map[string]any{
		"s": []any{
			"docs/intro",
			map[string]any{
				"type":  "category",
				"label": "Use cases",
				"items": []any{map[string]any{"type": "autogenerated", "dirName": "use_cases"}},
			},
		},
	})
	require.NoError(t, err)

	expanded, err := nav.Expand(context.Background(), sidebars, NewFS(root))

	require.NoError(t, err)
	useCases := expanded["s"][1].(nav.Category)
	assert.Len(t, useCases.Items, 5)
	assert.Equal(t, 2+5+1, nav.Count(expanded))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "intro", stripPrefix("01-intro"))
	assert.Equal(t, "intro", stripPrefix("1_intro"))
	assert.Equal(t, "intro", stripPrefix("10. intro"))
	assert.Equal(t, "intro", stripPrefix("intro"))
	assert.Equal(t, "2024", stripPrefix("2024"))
}

func TestPrefixNumber(t *testing.T) {
	assert.Equal(t, 1, prefixNumber("01-intro"))
	assert.Equal(t, 12, prefixNumber("12_setup"))
	assert.Greater(t, prefixNumber("intro"), 1000000)
}
