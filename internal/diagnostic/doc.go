// Package diagnostic collects per-property resolution reports.
//
// A schema is resolved one property at a time and a failure on one property
// must not hide the others, so callers record failures here and decide at the
// end whether the run as a whole failed.
package diagnostic
