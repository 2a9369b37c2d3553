package model

// Outcome classifies the result of processing one file.
type Outcome int

const (
	// Success indicates the file was read, parsed and transformed.
	Success Outcome = iota
	// StructuralFailure indicates the source could not be parsed.
	StructuralFailure
	// IOFailure indicates the file could not be read or written.
	IOFailure
)

// String returns a human-readable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case StructuralFailure:
		return "structural failure"
	case IOFailure:
		return "io failure"
	}

	return "unknown"
}

// FileResult holds the outcome of processing a single source file.
type FileResult struct {
	Path    Path
	Outcome Outcome
	Count   int     // number of print statements found
	Matches Matches // populated only in verbose mode
	Input   []byte  // original source, retained only when a diff was requested
	Output  []byte  // rewritten source, equal to the input when nothing changed
	Err     error   // underlying error for failed outcomes
}

// Changed reports whether the transform produced a different file body.
func (r FileResult) Changed() bool {
	return r.Outcome == Success && r.Count > 0
}
