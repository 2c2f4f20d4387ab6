package nav

// ToRaw converts a tree back into the literal vocabulary accepted by
// Load. Defaults are omitted, bare doc ids stay bare, and item order is
// preserved, so Load(ToRaw(s)) reproduces s.
func ToRaw(s Sidebars) map[string]any {
	out := make(map[string]any, len(s))
	for name, items := range s {
		out[name] = itemsToRaw(items)
	}
	return out
}

func itemsToRaw(items []Node) []any {
	out := make([]any, 0, len(items))
	for _, n := range items {
		out = append(out, NodeToRaw(n))
	}
	return out
}

// NodeToRaw converts a single node into its literal form
func NodeToRaw(n Node) any {
	switch v := n.(type) {
	case DocRef:
		if !v.Explicit && v.Label == "" {
			return v.ID
		}
		m := map[string]any{"type": string(KindDoc), "id": v.ID}
		if v.Label != "" {
			m["label"] = v.Label
		}
		return m
	case Category:
		m := map[string]any{
			"type":  string(KindCategory),
			"label": v.Label,
			"items": itemsToRaw(v.Items),
		}
		if v.Collapsed {
			m["collapsed"] = true
		}
		if !v.Collapsible {
			m["collapsible"] = false
		}
		if v.Link != nil {
			m["link"] = NodeToRaw(v.Link)
		}
		return m
	case Autogenerated:
		return map[string]any{"type": string(KindAutogenerated), "dirName": v.DirName}
	case GeneratedIndex:
		m := map[string]any{"type": string(KindGeneratedIndex)}
		if v.Title != "" {
			m["title"] = v.Title
		}
		if v.Description != "" {
			m["description"] = v.Description
		}
		return m
	case ExternalLink:
		return map[string]any{"type": string(KindLink), "label": v.Label, "href": v.Href}
	default:
		return nil
	}
}
