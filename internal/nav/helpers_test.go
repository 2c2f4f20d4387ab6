package nav

// sampleRaw mirrors the shape of a typical Docusaurus sidebars file
func sampleRaw() map[string]any {
	return map[string]any{
		"useCasesSidebar": []any{
			map[string]any{"type": "autogenerated", "dirName": "use_cases"},
		},
		"tutorialSidebar": []any{
			map[string]any{"type": "doc", "label": "Welcome", "id": "docs/intro"},
			map[string]any{
				"type":        "category",
				"label":       "Get started",
				"collapsed":   true,
				"collapsible": true,
				"items": []any{
					"docs/get_started/installation",
					"docs/get_started/configuration",
				},
				"link": map[string]any{"type": "doc", "id": "docs/get_started/first_steps"},
			},
			map[string]any{
				"type":  "category",
				"label": "Connect API",
				"link":  map[string]any{"type": "doc", "id": "docs/connect_api/overview"},
				"items": []any{},
			},
			map[string]any{
				"type":  "category",
				"label": "Execute API",
				"link":  map[string]any{"type": "doc", "id": "docs/execute_api/overview"},
				"items": []any{
					map[string]any{
						"type":  "category",
						"label": "Inserting data",
						"items": []any{"docs/execute_api/basic_insertion"},
					},
					"docs/execute_api/update_queries",
				},
			},
			map[string]any{
				"type":      "category",
				"label":     "Reusable snippets",
				"collapsed": true,
				"items":     []any{"docs/reusable_snippets/insert_data"},
				"link": map[string]any{
					"type":        "generated-index",
					"description": "Common patterns for quick use",
				},
			},
			map[string]any{
				"type":  "category",
				"label": "Use cases",
				"items": []any{
					map[string]any{"type": "autogenerated", "dirName": "use_cases"},
				},
				"link": map[string]any{
					"type":        "generated-index",
					"title":       "Use cases",
					"description": "Walkthroughs",
				},
			},
			map[string]any{
				"type":  "category",
				"label": "Reference",
				"items": []any{
					map[string]any{
						"type":  "link",
						"label": "API Reference",
						"href":  "https://docs.example.com/apidocs/index.html",
					},
				},
			},
		},
	}
}

// sampleNodeCount is the number of nodes Walk visits in sampleRaw
const sampleNodeCount = 16

// nestedCategories builds depth categories, each nested in the previous.
// The innermost category has no items.
func nestedCategories(depth int) map[string]any {
	inner := map[string]any{"type": "category", "label": "leaf", "items": []any{}}
	for i := 1; i < depth; i++ {
		inner = map[string]any{"type": "category", "label": "level", "items": []any{inner}}
	}
	return inner
}
