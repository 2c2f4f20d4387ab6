// Package nav loads, validates and walks documentation sidebars.
//
// A sidebar file maps sidebar names to ordered sequences of navigation
// nodes. The loader accepts the decoded literal (maps, slices and
// strings, as produced by encoding/json, yaml.v3 or a JavaScript
// runtime) and builds an immutable tree of typed nodes:
//
//	tutorialSidebar:
//	  - type: doc
//	    id: docs/intro
//	  - type: category
//	    label: Get started
//	    link: {type: doc, id: docs/get_started/first_steps}
//	    items:
//	      - docs/get_started/installation
//	      - type: link
//	        label: Change log
//	        href: https://example.com/CHANGELOG.md
//
// # Usage
//
//	sidebars, err := nav.Load(raw)
//	if err != nil {
//	    var shapeErr *nav.ShapeError
//	    if errors.As(err, &shapeErr) {
//	        log.Fatalf("%s: %s", shapeErr.Path, shapeErr.Msg)
//	    }
//	}
//
//	for path, node := range nav.All(sidebars) {
//	    fmt.Println(path, node.Kind())
//	}
//
//	for _, w := range nav.Validate(sidebars) {
//	    fmt.Println(w)
//	}
//
// Autogenerated nodes are left as placeholders. Expand replaces them
// using a caller-supplied Resolver.
package nav
