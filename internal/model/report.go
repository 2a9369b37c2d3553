package model

// Exit codes for the whole run. Values from 126 upward are reserved by the
// shell, so failures use 123.
const (
	ExitOK          = 0
	ExitDryRunDirty = 1
	ExitFailure     = 123
)

// Report aggregates the results across every processed file. It is mutated
// only by the single driver loop, once per finished file.
type Report struct {
	DryRun  bool
	Verbose bool

	// FileCount is the number of files with at least one print statement.
	FileCount int

	// StatementCount is the number of print statements across all files.
	StatementCount int

	// FailureCount is the number of files that could not be read or
	// transformed. A file counts either here or in FileCount, never both.
	FailureCount int
}

// Add folds one file's result into the aggregate.
func (r *Report) Add(result FileResult) {
	if result.Outcome != Success {
		r.FailureCount++
		return
	}

	if result.Count > 0 {
		r.FileCount++
		r.StatementCount += result.Count
	}
}

// Empty reports whether the run produced neither changes nor failures.
func (r *Report) Empty() bool {
	return r.FileCount == 0 && r.FailureCount == 0
}

// ReturnCode derives the exit code for the whole run:
//   - any failures present: 123
//   - dry run that found changes and no failures: 1
//   - otherwise: 0
func (r *Report) ReturnCode() int {
	if r.FailureCount > 0 {
		return ExitFailure
	}

	if r.FileCount > 0 && r.DryRun {
		return ExitDryRunDirty
	}

	return ExitOK
}
