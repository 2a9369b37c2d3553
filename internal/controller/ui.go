// Package controller provides output adapters for displaying check results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "unprint.dev/pkg/unprint/internal/model"
)

// UI defines the interface for displaying per-file results and the end-of-run
// summary. Implementations can use different output methods (plain text,
// paged TUI, etc).
type UI interface {
	// DisplayMatches prints the verbose position report for one file: a
	// header bearing the file name, then one line per physical line of
	// each recorded statement. Prints nothing when the mapping is empty.
	DisplayMatches(path m.Path, matches m.Matches)

	// DisplayDiff prints a unified diff between the original and the
	// rewritten source.
	DisplayDiff(path m.Path, before, after []byte) error

	// DisplayFailure reports a failed file at the point of occurrence.
	DisplayFailure(result m.FileResult)

	// DisplaySummary prints the one-line aggregate summary, preceded in
	// verbose mode by a per-file statement count table.
	DisplaySummary(report *m.Report, results []m.FileResult)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the paging UI when attached to a terminal and plain output
// otherwise, so piped output stays grep-friendly.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
