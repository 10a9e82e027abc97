// Package gen renders resolved schema types into Go source.
//
// Each schema becomes one file holding:
//   - the enumerations its properties introduced
//   - a struct with json tags and a schema tag carrying validation bounds
//   - a constructor that applies the declared defaults
//
// Output goes through text/template and go/format.
package gen
