// Package common holds small helpers shared across the internal packages.
package common
