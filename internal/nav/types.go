package nav

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Node
type Kind string

// Node kinds, named after the discriminant used in sidebar files
const (
	KindDoc            Kind = "doc"
	KindCategory       Kind = "category"
	KindAutogenerated  Kind = "autogenerated"
	KindGeneratedIndex Kind = "generated-index"
	KindLink           Kind = "link"
)

// Node is a single entry of a sidebar tree. The concrete types are
// DocRef, Category, Autogenerated, GeneratedIndex and ExternalLink.
type Node interface {
	Kind() Kind
	node()
}

// Link is the landing page of a category: a DocRef or a GeneratedIndex.
type Link interface {
	Node
	link()
}

// DocRef points to a single document by opaque identifier
type DocRef struct {
	ID    string
	Label string
	// Explicit is true when the node was declared as {type: doc}
	// rather than a bare string.
	Explicit bool
}

// Category is a labeled group of child nodes
type Category struct {
	Label       string
	Collapsed   bool
	Collapsible bool
	Link        Link
	Items       []Node
}

// Autogenerated is a placeholder whose children come from a directory listing
type Autogenerated struct {
	DirName string
}

// GeneratedIndex is a synthetic landing page for a category
type GeneratedIndex struct {
	Title       string
	Description string
}

// ExternalLink points outside the documentation set
type ExternalLink struct {
	Label string
	Href  string
}

func (DocRef) Kind() Kind         { return KindDoc }
func (Category) Kind() Kind       { return KindCategory }
func (Autogenerated) Kind() Kind  { return KindAutogenerated }
func (GeneratedIndex) Kind() Kind { return KindGeneratedIndex }
func (ExternalLink) Kind() Kind   { return KindLink }

func (DocRef) node()         {}
func (Category) node()       {}
func (Autogenerated) node()  {}
func (GeneratedIndex) node() {}
func (ExternalLink) node()   {}

func (DocRef) link()         {}
func (GeneratedIndex) link() {}

// Sidebars maps a sidebar name to its ordered top-level nodes
type Sidebars map[string][]Node

// Names returns the sidebar names in sorted order
func (s Sidebars) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path locates a node inside a sidebar file. Elements are string keys
// or int indices.
type Path []any

// Key returns a copy of p extended with a mapping key
func (p Path) Key(k string) Path {
	return p.extend(k)
}

// Index returns a copy of p extended with a sequence index
func (p Path) Index(i int) Path {
	return p.extend(i)
}

func (p Path) extend(elem any) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, elem)
}

// Sidebar returns the sidebar name the path starts with, if any
func (p Path) Sidebar() string {
	if len(p) == 0 {
		return ""
	}
	name, _ := p[0].(string)
	return name
}

// String renders the path as tutorialSidebar[3].items[0]
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	var b strings.Builder
	for i, elem := range p {
		switch v := elem.(type) {
		case int:
			b.WriteString("[" + strconv.Itoa(v) + "]")
		case string:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(v)
		}
	}
	return b.String()
}
