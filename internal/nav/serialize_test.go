package nav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRaw_RoundTrip(t *testing.T) {
	first := loadSample(t)

	second, err := Load(ToRaw(first))

	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToRaw_RoundTripThroughJSON(t *testing.T) {
	first := loadSample(t)

	data, err := json.Marshal(ToRaw(first))
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(data, &decoded))

	second, err := Load(decoded)

	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, Count(first), Count(second))
}

func TestNodeToRaw_Forms(t *testing.T) {
	assert.Equal(t, "docs/a", NodeToRaw(DocRef{ID: "docs/a"}))
	assert.Equal(t,
		map[string]any{"type": "doc", "id": "docs/a"},
		NodeToRaw(DocRef{ID: "docs/a", Explicit: true}))

	raw := NodeToRaw(Category{Label: "c", Collapsible: false, Items: []Node{}})
	assert.Equal(t, map[string]any{
		"type":        "category",
		"label":       "c",
		"collapsible": false,
		"items":       []any{},
	}, raw)

	assert.Equal(t,
		map[string]any{"type": "generated-index"},
		NodeToRaw(GeneratedIndex{}))
}
