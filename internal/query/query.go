// Package query selects sidebar nodes with boolean expressions such as
//
//	kind == "doc" && id startsWith "api/"
//	kind == "category" && items > 10
//
// Expressions are compiled with github.com/expr-lang/expr against Env.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/quantmind-br/sidenav-go/internal/nav"
)

// ErrEmptyExpression is returned by Compile for a blank expression
var ErrEmptyExpression = errors.New("query expression must not be empty")

// Env is what an expression sees for each node. Fields that do not
// apply to the node's kind are zero.
type Env struct {
	Kind        string `expr:"kind"`
	Sidebar     string `expr:"sidebar"`
	Path        string `expr:"path"`
	Depth       int    `expr:"depth"`
	ID          string `expr:"id"`
	Label       string `expr:"label"`
	Href        string `expr:"href"`
	DirName     string `expr:"dirName"`
	Title       string `expr:"title"`
	Description string `expr:"description"`
	Items       int    `expr:"items"`
	Collapsed   bool   `expr:"collapsed"`
	Collapsible bool   `expr:"collapsible"`
	Linked      bool   `expr:"linked"`
}

// Match is a node selected by a query
type Match struct {
	Path nav.Path
	Node nav.Node
}

// Query is a compiled expression
type Query struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks expression. It must evaluate to a bool.
func Compile(expression string) (*Query, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile query %q: %w", expression, err)
	}
	return &Query{source: expression, program: program}, nil
}

func (q *Query) String() string { return q.source }

// Matches reports whether the node at p satisfies the query
func (q *Query) Matches(p nav.Path, n nav.Node) (bool, error) {
	out, err := expr.Run(q.program, NewEnv(p, n))
	if err != nil {
		return false, fmt.Errorf("query %q at %s: %w", q.source, p, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Select returns the matching nodes in walk order
func (q *Query) Select(s nav.Sidebars) ([]Match, error) {
	var matches []Match
	for p, n := range nav.All(s) {
		ok, err := q.Matches(p, n)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, Match{Path: p, Node: n})
		}
	}
	return matches, nil
}

// NewEnv describes the node at p
func NewEnv(p nav.Path, n nav.Node) Env {
	env := Env{
		Kind:    string(n.Kind()),
		Sidebar: p.Sidebar(),
		Path:    p.String(),
		Depth:   depth(p),
	}
	switch v := n.(type) {
	case nav.DocRef:
		env.ID = v.ID
		env.Label = v.Label
	case nav.Category:
		env.Label = v.Label
		env.Items = len(v.Items)
		env.Collapsed = v.Collapsed
		env.Collapsible = v.Collapsible
		env.Linked = v.Link != nil
		if doc, ok := v.Link.(nav.DocRef); ok {
			env.ID = doc.ID
		}
	case nav.Autogenerated:
		env.DirName = v.DirName
	case nav.GeneratedIndex:
		env.Title = v.Title
		env.Description = v.Description
	case nav.ExternalLink:
		env.Label = v.Label
		env.Href = v.Href
	}
	return env
}

// depth counts list indexes in p, so top-level nodes have depth 1
func depth(p nav.Path) int {
	d := 0
	for _, elem := range p {
		if _, ok := elem.(int); ok {
			d++
		}
	}
	return d
}
