package nav

import (
	"fmt"
	"sort"
)

// DefaultMaxDepth bounds how deeply nodes may nest before Load gives up
const DefaultMaxDepth = 64

// Option configures Load
type Option func(*loader)

// WithMaxDepth overrides the nesting bound. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(l *loader) {
		if n > 0 {
			l.maxDepth = n
		}
	}
}

type loader struct {
	maxDepth int
}

// Load converts a decoded sidebar literal into Sidebars. The literal is
// a mapping from sidebar name to a sequence of nodes. Any shape
// violation aborts the load with a *ShapeError.
func Load(raw any, opts ...Option) (Sidebars, error) {
	l := &loader{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(l)
	}

	root, ok := asMap(raw)
	if !ok {
		return nil, shapeErrorf(nil, "expected mapping of sidebar names, got %s", describe(raw))
	}

	sidebars := make(Sidebars, len(root))
	// Sorted so that the reported error is stable across runs.
	names := make([]string, 0, len(root))
	for name := range root {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := Path{name}
		seq, ok := asSeq(root[name])
		if !ok {
			return nil, shapeErrorf(p, "expected sequence for sidebar root, got %s", describe(root[name]))
		}
		nodes, err := l.items(p, seq, 1)
		if err != nil {
			return nil, err
		}
		sidebars[name] = nodes
	}
	return sidebars, nil
}

func (l *loader) items(p Path, seq []any, depth int) ([]Node, error) {
	nodes := make([]Node, 0, len(seq))
	for i, raw := range seq {
		n, err := l.node(p.Index(i), raw, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (l *loader) node(p Path, raw any, depth int) (Node, error) {
	if depth > l.maxDepth {
		return nil, shapeErrorf(p, "cycle or excessive depth (limit %d)", l.maxDepth)
	}

	if id, ok := raw.(string); ok {
		if id == "" {
			return nil, shapeErrorf(p, "empty doc id")
		}
		return DocRef{ID: id}, nil
	}

	m, ok := asMap(raw)
	if !ok {
		return nil, shapeErrorf(p, "expected doc id or mapping, got %s", describe(raw))
	}

	typ, present, err := optString(p, m, "type")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, shapeErrorf(p, "missing type")
	}

	switch Kind(typ) {
	case KindDoc:
		return l.doc(p, m)
	case KindCategory:
		return l.category(p, m, depth)
	case KindLink:
		return l.externalLink(p, m)
	case KindGeneratedIndex:
		return l.generatedIndex(p, m)
	case KindAutogenerated:
		dir, err := reqString(p, m, "dirName")
		if err != nil {
			return nil, err
		}
		return Autogenerated{DirName: dir}, nil
	default:
		return nil, shapeErrorf(p.Key("type"), "unknown node type %q", typ)
	}
}

func (l *loader) doc(p Path, m map[string]any) (DocRef, error) {
	id, err := reqString(p, m, "id")
	if err != nil {
		return DocRef{}, err
	}
	label, _, err := optString(p, m, "label")
	if err != nil {
		return DocRef{}, err
	}
	return DocRef{ID: id, Label: label, Explicit: true}, nil
}

func (l *loader) category(p Path, m map[string]any, depth int) (Category, error) {
	cat := Category{Collapsible: true}

	label, present, err := optString(p, m, "label")
	if err != nil {
		return cat, err
	}
	if !present {
		return cat, shapeErrorf(p, "category requires a label")
	}
	cat.Label = label

	if v, ok, err := optBool(p, m, "collapsed"); err != nil {
		return cat, err
	} else if ok {
		cat.Collapsed = v
	}
	if v, ok, err := optBool(p, m, "collapsible"); err != nil {
		return cat, err
	} else if ok {
		cat.Collapsible = v
	}

	if rawLink, ok := m["link"]; ok && rawLink != nil {
		link, err := l.link(p.Key("link"), rawLink)
		if err != nil {
			return cat, err
		}
		cat.Link = link
	}

	itemsPath := p.Key("items")
	rawItems, ok := m["items"]
	if !ok || rawItems == nil {
		cat.Items = []Node{}
		return cat, nil
	}
	seq, ok := asSeq(rawItems)
	if !ok {
		return cat, shapeErrorf(itemsPath, "expected sequence for items, got %s", describe(rawItems))
	}
	cat.Items, err = l.items(itemsPath, seq, depth+1)
	if err != nil {
		return cat, err
	}
	return cat, nil
}

func (l *loader) link(p Path, raw any) (Link, error) {
	m, ok := asMap(raw)
	if !ok {
		return nil, shapeErrorf(p, "expected mapping for category link, got %s", describe(raw))
	}
	typ, err := reqString(p, m, "type")
	if err != nil {
		return nil, err
	}
	switch Kind(typ) {
	case KindDoc:
		return l.doc(p, m)
	case KindGeneratedIndex:
		return l.generatedIndex(p, m)
	default:
		return nil, shapeErrorf(p.Key("type"), "unsupported category link type %q", typ)
	}
}

func (l *loader) externalLink(p Path, m map[string]any) (ExternalLink, error) {
	label, err := reqString(p, m, "label")
	if err != nil {
		return ExternalLink{}, err
	}
	href, err := reqString(p, m, "href")
	if err != nil {
		return ExternalLink{}, err
	}
	return ExternalLink{Label: label, Href: href}, nil
}

func (l *loader) generatedIndex(p Path, m map[string]any) (GeneratedIndex, error) {
	title, _, err := optString(p, m, "title")
	if err != nil {
		return GeneratedIndex{}, err
	}
	desc, _, err := optString(p, m, "description")
	if err != nil {
		return GeneratedIndex{}, err
	}
	return GeneratedIndex{Title: title, Description: desc}, nil
}

// reqString returns a required, non-empty string field
func reqString(p Path, m map[string]any, key string) (string, error) {
	s, present, err := optString(p, m, key)
	if err != nil {
		return "", err
	}
	if !present || s == "" {
		return "", shapeErrorf(p, "missing required field %q", key)
	}
	return s, nil
}

func optString(p Path, m map[string]any, key string) (string, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, shapeErrorf(p.Key(key), "expected string, got %s", describe(v))
	}
	return s, true, nil
}

func optBool(p Path, m map[string]any, key string) (bool, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, shapeErrorf(p.Key(key), "expected boolean, got %s", describe(v))
	}
	return b, true, nil
}

// asMap accepts the mapping types produced by the supported decoders
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asSeq(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, id := range s {
			out[i] = id
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64, uint64:
		return "number"
	}
	if _, ok := asMap(v); ok {
		return "mapping"
	}
	if _, ok := asSeq(v); ok {
		return "sequence"
	}
	return fmt.Sprintf("%T", v)
}
