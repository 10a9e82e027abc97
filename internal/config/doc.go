// Package config loads the schema-typegen YAML configuration.
package config
