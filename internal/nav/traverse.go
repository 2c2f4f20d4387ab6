package nav

import (
	"errors"
	"iter"
)

// SkipChildren may be returned by a VisitFunc to skip the items of the
// category just visited. It is not returned by Walk.
var SkipChildren = errors.New("skip children")

// VisitFunc is called once per node by Walk
type VisitFunc func(p Path, n Node) error

// Walk visits every node of every sidebar in pre-order. Sidebars are
// visited in name order, items in declared order. Category links are
// attributes of their category and are not visited. Walk stops at the
// first error returned by visit.
func Walk(s Sidebars, visit VisitFunc) error {
	for _, name := range s.Names() {
		if err := walkItems(Path{name}, s[name], visit); err != nil {
			return err
		}
	}
	return nil
}

func walkItems(p Path, items []Node, visit VisitFunc) error {
	for i, n := range items {
		np := p.Index(i)
		err := visit(np, n)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if cat, ok := n.(Category); ok {
			if err := walkItems(np.Key("items"), cat.Items, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

var errStopIteration = errors.New("stop iteration")

// All returns the Walk order as a sequence of (path, node) pairs. The
// sequence can be ranged over any number of times.
func All(s Sidebars) iter.Seq2[Path, Node] {
	return func(yield func(Path, Node) bool) {
		_ = Walk(s, func(p Path, n Node) error {
			if !yield(p, n) {
				return errStopIteration
			}
			return nil
		})
	}
}

// Count returns the number of nodes Walk visits
func Count(s Sidebars) int {
	total := 0
	for range All(s) {
		total++
	}
	return total
}
