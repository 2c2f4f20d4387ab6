package nav

import (
	"context"
	"fmt"
)

// Resolver lists the nodes an autogenerated placeholder stands for.
// Implementations live outside this package; see internal/resolver for
// a filesystem-backed one.
type Resolver interface {
	ResolveAutogenerated(ctx context.Context, dirName string) ([]Node, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, dirName string) ([]Node, error)

// ResolveAutogenerated calls f
func (f ResolverFunc) ResolveAutogenerated(ctx context.Context, dirName string) ([]Node, error) {
	return f(ctx, dirName)
}

// Expand returns a copy of s in which every Autogenerated node is
// replaced, in place, by the nodes the resolver returns for its
// directory. Resolved nodes are not expanded again. s is not modified.
func Expand(ctx context.Context, s Sidebars, r Resolver) (Sidebars, error) {
	if r == nil {
		return nil, ErrNoResolver
	}
	out := make(Sidebars, len(s))
	for _, name := range s.Names() {
		items, err := expandItems(ctx, Path{name}, s[name], r)
		if err != nil {
			return nil, err
		}
		out[name] = items
	}
	return out, nil
}

func expandItems(ctx context.Context, p Path, items []Node, r Resolver) ([]Node, error) {
	out := make([]Node, 0, len(items))
	for i, n := range items {
		np := p.Index(i)
		switch v := n.(type) {
		case Autogenerated:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			resolved, err := r.ResolveAutogenerated(ctx, v.DirName)
			if err != nil {
				return nil, fmt.Errorf("expand %s (dirName %q): %w", np, v.DirName, err)
			}
			out = append(out, resolved...)
		case Category:
			children, err := expandItems(ctx, np.Key("items"), v.Items, r)
			if err != nil {
				return nil, err
			}
			v.Items = children
			out = append(out, v)
		default:
			out = append(out, n)
		}
	}
	return out, nil
}
