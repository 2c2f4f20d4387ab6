// Package resolver expands autogenerated sidebar items from a docs
// directory on disk. It implements nav.Resolver.
//
// Markdown files (.md, .mdx) become doc references and subdirectories
// become categories. Names starting with "_" or "." are skipped. A
// numeric prefix such as "02-" orders entries and is stripped from ids
// and labels. Ordering can be overridden with sidebar_position front
// matter or the position key of a _category_.json / _category_.yml
// file. A subdirectory's index.md, README.md or <dirname>.md becomes
// the category link.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/quantmind-br/sidenav-go/internal/nav"
)

// Sentinel errors for the resolver package
var (
	// ErrDirNotFound indicates the autogenerated directory does not exist
	ErrDirNotFound = errors.New("autogenerated directory not found")

	// ErrInvalidMetadata indicates an unreadable _category_ file
	ErrInvalidMetadata = errors.New("invalid category metadata")
)

var numberPrefix = regexp.MustCompile(`^(\d+)[-_.\s]+`)

var docExtensions = map[string]bool{".md": true, ".mdx": true}

// FS resolves autogenerated items against a docs root directory
type FS struct {
	root string
}

// NewFS creates a resolver rooted at the docs directory
func NewFS(root string) *FS {
	return &FS{root: root}
}

var _ nav.Resolver = (*FS)(nil)

// entry is a sortable directory listing item
type entry struct {
	name     string
	position *float64
	prefix   int
	node     nav.Node
}

// ResolveAutogenerated lists dirName (relative to the docs root)
func (r *FS) ResolveAutogenerated(ctx context.Context, dirName string) ([]nav.Node, error) {
	dir := filepath.Join(r.root, filepath.FromSlash(dirName))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	return r.list(ctx, dir, path.Clean(filepath.ToSlash(dirName)))
}

// list returns the nodes of dir, whose doc ids are prefixed with idDir
func (r *FS) list(ctx context.Context, dir, idDir string) ([]nav.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var entries []entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}

		var e *entry
		if de.IsDir() {
			e, err = r.category(ctx, filepath.Join(dir, name), joinID(idDir, stripPrefix(name)))
		} else if docExtensions[strings.ToLower(filepath.Ext(name))] {
			e, err = r.doc(filepath.Join(dir, name), idDir)
		}
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		e.name = name
		e.prefix = prefixNumber(name)
		entries = append(entries, *e)
	}

	sortEntries(entries)

	nodes := make([]nav.Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, e.node)
	}
	return nodes, nil
}

func (r *FS) doc(file, idDir string) (*entry, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	ref := nav.DocRef{ID: joinID(idDir, stripPrefix(base))}
	e := &entry{}

	if fm := parseFrontmatter(string(content)); fm != nil {
		if fm.ID != "" {
			ref.ID = joinID(idDir, fm.ID)
		}
		if fm.SidebarLabel != "" {
			ref.Label = fm.SidebarLabel
			ref.Explicit = true
		}
		e.position = fm.SidebarPosition
	}

	e.node = ref
	return e, nil
}

func (r *FS) category(ctx context.Context, dir, idDir string) (*entry, error) {
	meta, err := readCategoryMeta(dir)
	if err != nil {
		return nil, err
	}

	items, err := r.list(ctx, dir, idDir)
	if err != nil {
		return nil, err
	}

	cat := nav.Category{
		Label:       stripPrefix(filepath.Base(dir)),
		Collapsible: true,
		Collapsed:   true,
	}
	e := &entry{}
	if meta != nil {
		if meta.Label != "" {
			cat.Label = meta.Label
		}
		if meta.Collapsed != nil {
			cat.Collapsed = *meta.Collapsed
		}
		if meta.Collapsible != nil {
			cat.Collapsible = *meta.Collapsible
		}
		e.position = meta.Position
	}

	// An index doc becomes the category landing page.
	dirBase := path.Base(idDir)
	for i, n := range items {
		ref, ok := n.(nav.DocRef)
		if !ok {
			continue
		}
		base := strings.ToLower(path.Base(ref.ID))
		if base == "index" || base == "readme" || base == strings.ToLower(dirBase) {
			ref.Explicit = true
			cat.Link = ref
			items = append(items[:i:i], items[i+1:]...)
			break
		}
	}

	if len(items) == 0 && cat.Link == nil {
		return nil, nil
	}
	cat.Items = items
	e.node = cat
	return e, nil
}

// sortEntries orders by explicit position, then numeric prefix, then name
func sortEntries(entries []entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.position != nil) != (b.position != nil) {
			return a.position != nil
		}
		if a.position != nil && *a.position != *b.position {
			return *a.position < *b.position
		}
		if a.prefix != b.prefix {
			return a.prefix < b.prefix
		}
		return a.name < b.name
	})
}

func stripPrefix(name string) string {
	stripped := numberPrefix.ReplaceAllString(name, "")
	if stripped == "" {
		return name
	}
	return stripped
}

// prefixNumber returns the numeric prefix of name, or MaxInt when absent
func prefixNumber(name string) int {
	m := numberPrefix.FindStringSubmatch(name)
	if m == nil {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

func joinID(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}
