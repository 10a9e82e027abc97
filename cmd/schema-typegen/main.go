// Package main provides the CLI entrypoint for schema-typegen.
//
// schema-typegen resolves JSON schema documents into language-level type
// descriptors:
//   - resolve prints the descriptor of every property
//   - gen renders Go types for the resolved schemas
//   - symbols looks up numeric constants in the symbol registry
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
