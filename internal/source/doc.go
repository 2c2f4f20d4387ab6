// Package source reads sidebar files from disk and decodes them into the
// literal structure accepted by nav.Load.
//
// # Formats
//
// The format is chosen by file extension:
//   - .json: a JSON object of sidebar name to item array
//   - .yaml, .yml: the same structure in YAML
//   - .toml: the same structure in TOML (inline tables for items)
//   - .js, .cjs, .mjs: a Docusaurus sidebars module. The file is
//     evaluated in an embedded JavaScript runtime and the value assigned
//     to module.exports (or exported as default) is used.
//
// # Usage
//
//	loader := source.NewLoader()
//	sidebars, warnings, err := loader.LoadSidebars("sidebars.js", source.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: sidebar file does not exist
//   - ErrInvalidFormat: file could not be decoded
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrNoExport: JavaScript module did not export an object
//   - ErrJSTimeout: JavaScript evaluation exceeded its time budget
//
// Structural problems found after decoding are reported by nav.Load as
// *nav.ShapeError.
package source
