package query

import (
	"testing"

	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sidebars(t *testing.T) nav.Sidebars {
	t.Helper()
	s, err := nav.Load(map[string]any{
		"docs": []any{
			map[string]any{"type": "doc", "id": "intro", "label": "Welcome"},
			map[string]any{
				"type":  "category",
				"label": "API",
				"link":  map[string]any{"type": "doc", "id": "api/index"},
				"items": []any{"api/users", "api/orders", map[string]any{"type": "autogenerated", "dirName": "api/more"}},
			},
			map[string]any{"type": "link", "label": "Status", "href": "https://status.example.com"},
		},
		"guides": []any{"guides/start"},
	})
	require.NoError(t, err)
	return s
}

func paths(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Path.String()
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{"by kind", `kind == "doc"`, []string{"docs[0]", "docs[1].items[0]", "docs[1].items[1]", "guides[0]"}},
		{"by id prefix", `id startsWith "api/"`, []string{"docs[1]", "docs[1].items[0]", "docs[1].items[1]"}},
		{"by depth", `depth > 1`, []string{"docs[1].items[0]", "docs[1].items[1]", "docs[1].items[2]"}},
		{"by sidebar", `sidebar == "guides"`, []string{"guides[0]"}},
		{"categories with a link", `kind == "category" && linked && items == 3`, []string{"docs[1]"}},
		{"external links", `href contains "status"`, []string{"docs[2]"}},
		{"autogenerated", `dirName != ""`, []string{"docs[1].items[2]"}},
		{"no match", `label == "missing"`, nil},
	}

	s := sidebars(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.expression)
			require.NoError(t, err)

			matches, err := q.Select(s)

			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(matches))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile("")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = Compile(`kind ==`)
	assert.Error(t, err)

	_, err = Compile(`label`)
	assert.Error(t, err, "non-bool expressions are rejected")

	_, err = Compile(`unknownField == 1`)
	assert.Error(t, err)
}

func TestNewEnv(t *testing.T) {
	p := nav.Path{"docs", 1}
	env := NewEnv(p, nav.Category{
		Label:       "API",
		Collapsed:   true,
		Collapsible: true,
		Link:        nav.GeneratedIndex{Title: "API"},
		Items:       []nav.Node{nav.DocRef{ID: "a"}},
	})

	assert.Equal(t, Env{
		Kind:        "category",
		Sidebar:     "docs",
		Path:        "docs[1]",
		Depth:       1,
		Label:       "API",
		Items:       1,
		Collapsed:   true,
		Collapsible: true,
		Linked:      true,
	}, env)
}

func TestQuery_String(t *testing.T) {
	q, err := Compile(`kind == "link"`)
	require.NoError(t, err)
	assert.Equal(t, `kind == "link"`, q.String())
}
