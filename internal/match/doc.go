// Package match ranks candidate names by similarity to a misspelled one.
//
// Names are normalized (case-folded, separators dropped) before comparing
// them by normalized Levenshtein similarity.
package match
