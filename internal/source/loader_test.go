package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/quantmind-br/sidenav-go/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureNodeCount is the number of nodes in testdata/sidebars.*
const fixtureNodeCount = 13

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.Equal(t, DefaultJSTimeout, loader.jsTimeout)

	loader = NewLoader(WithJSTimeout(time.Second), WithJSTimeout(0))
	assert.Equal(t, time.Second, loader.jsTimeout)
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader()

	raw, err := loader.Load("/nonexistent/path/sidebars.yaml")

	assert.Error(t, err)
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_AllFormatsAgree(t *testing.T) {
	loader := NewLoader()

	want, warnings, err := loader.LoadSidebars(filepath.Join("testdata", "sidebars.json"), Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, fixtureNodeCount, nav.Count(want))

	for _, name := range []string{"sidebars.yaml", "sidebars.toml", "sidebars.js"} {
		t.Run(name, func(t *testing.T) {
			got, _, err := loader.LoadSidebars(filepath.Join("testdata", name), Options{})

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoader_Load_JavaScriptModule(t *testing.T) {
	loader := NewLoader()

	sidebars, _, err := loader.LoadSidebars(filepath.Join("testdata", "sidebars.js"), Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"docsSidebar", "guidesSidebar"}, sidebars.Names())
	assert.Equal(t, nav.DocRef{ID: "docs/intro", Label: "Welcome", Explicit: true}, sidebars["docsSidebar"][0])

	getStarted := sidebars["docsSidebar"][1].(nav.Category)
	assert.True(t, getStarted.Collapsed)
	assert.Equal(t, nav.DocRef{ID: "docs/get_started/first_steps", Explicit: true}, getStarted.Link)
}

func TestLoadFromBytes_JavaScript(t *testing.T) {
	loader := NewLoader(WithJSTimeout(200 * time.Millisecond))

	t.Run("export default", func(t *testing.T) {
		raw, err := loader.LoadFromBytes([]byte(`export default { s: ['docs/a', 'docs/b'] };`), ".mjs")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"s": []any{"docs/a", "docs/b"}}, raw)
	})

	t.Run("exports property", func(t *testing.T) {
		raw, err := loader.LoadFromBytes([]byte(`exports.s = ['docs/a'];`), ".cjs")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"s": []any{"docs/a"}}, raw)
	})

	t.Run("computed items", func(t *testing.T) {
		script := `
const names = ['one', 'two'];
module.exports = { s: names.map((n) => 'docs/' + n) };
`
		raw, err := loader.LoadFromBytes([]byte(script), ".js")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"s": []any{"docs/one", "docs/two"}}, raw)
	})

	t.Run("no export", func(t *testing.T) {
		_, err := loader.LoadFromBytes([]byte(`const sidebars = { s: [] };`), ".js")

		assert.ErrorIs(t, err, ErrNoExport)
	})

	t.Run("non-object export", func(t *testing.T) {
		_, err := loader.LoadFromBytes([]byte(`module.exports = ['docs/a'];`), ".js")

		assert.ErrorIs(t, err, ErrNoExport)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := loader.LoadFromBytes([]byte(`module.exports = {`), ".js")

		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("require is unavailable", func(t *testing.T) {
		_, err := loader.LoadFromBytes([]byte(`const x = require('fs'); module.exports = { s: [] };`), ".js")

		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "require")
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := loader.LoadFromBytes([]byte(`while (true) {}`), ".js")

		assert.ErrorIs(t, err, ErrJSTimeout)
	})
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.yaml", "s:\n  - docs/a\ninvalid_yaml: [unclosed\n")

	raw, err := loader.Load(path)

	assert.Error(t, err)
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.json", `{invalid json content}`)

	raw, err := loader.Load(path)

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.toml", `s = [`)

	_, err := loader.Load(path)

	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_UnsupportedExtension(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.txt", "content")

	raw, err := loader.Load(path)

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestLoadFromBytes_CaseInsensitiveExt(t *testing.T) {
	loader := NewLoader()

	yamlContent := `s: [docs/a]`
	jsonContent := `{"s": ["docs/a"]}`

	raw, err := loader.LoadFromBytes([]byte(yamlContent), ".YAML")
	assert.NoError(t, err)
	assert.NotNil(t, raw)

	_, err = loader.LoadFromBytes([]byte(yamlContent), ".Yml")
	assert.NoError(t, err)

	_, err = loader.LoadFromBytes([]byte(jsonContent), ".JSON")
	assert.NoError(t, err)
}

func TestLoader_LoadSidebars_ShapeError(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.yaml", `
s:
  - type: link
    label: Change log
`)

	sidebars, warnings, err := loader.LoadSidebars(path, Options{})

	assert.Nil(t, sidebars)
	assert.Nil(t, warnings)
	assert.ErrorIs(t, err, nav.ErrShape)
	assert.Contains(t, err.Error(), "href")
}

func TestLoader_LoadSidebars_Warnings(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.yaml", `
s:
  - type: category
    label: Guides
    items: [docs/a, docs/a]
`)

	_, warnings, err := loader.LoadSidebars(path, Options{})

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, nav.WarnDuplicateID, warnings[0].Code)
}

func TestLoader_LoadSidebars_MaxDepth(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.yaml", `
s:
  - type: category
    label: one
    items:
      - type: category
        label: two
        items: [docs/a]
`)

	_, _, err := loader.LoadSidebars(path, Options{MaxDepth: 2})
	assert.ErrorIs(t, err, nav.ErrShape)

	_, _, err = loader.LoadSidebars(path, Options{MaxDepth: 3})
	assert.NoError(t, err)
}

func TestLoader_LoadSidebars_Strict(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "sidebars.yaml", `
s:
  - type: category
    label: Guides
    className: highlighted
    items: [docs/a]
`)

	_, _, err := loader.LoadSidebars(path, Options{})
	assert.NoError(t, err, "unknown keys are ignored by default")

	_, _, err = loader.LoadSidebars(path, Options{Strict: true})
	assert.ErrorIs(t, err, schema.ErrSchema)
	assert.Contains(t, err.Error(), "className")

	_, _, err = loader.LoadSidebars(filepath.Join("testdata", "sidebars.js"), Options{Strict: true})
	assert.NoError(t, err)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrFileNotFound", ErrFileNotFound},
		{"ErrInvalidFormat", ErrInvalidFormat},
		{"ErrUnsupportedExt", ErrUnsupportedExt},
		{"ErrNoExport", ErrNoExport},
		{"ErrJSTimeout", ErrJSTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
