// Package model defines the data structures for print statement removal.
package model

import (
	"unprint.dev/pkg/unprint/pkg"
)

// Matches maps a statement's start line to its literal source text.
// Insertion order equals traversal order, which is ascending by line for a
// single top-to-bottom pass. Two statements starting on the same line (via
// semicolons or line continuations) collapse into one entry, the later one
// winning; a known limitation inherited from one-statement-per-line input.
type Matches = pkg.OrderedMap[int, string]

// NewMatches creates an empty Matches mapping.
func NewMatches() Matches {
	return pkg.NewOrderedMap[int, string]()
}
