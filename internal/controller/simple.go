package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "unprint.dev/pkg/unprint/internal/model"
)

const diffContextLines = 3

var (
	fileStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	lineNumberStyle = lipgloss.NewStyle().Faint(true)
	statementStyle  = lipgloss.NewStyle().Bold(true)
	failureStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	countStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	boldStyle       = lipgloss.NewStyle().Bold(true)
)

// SimpleUI implements UI using the cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMatches prints the file name followed by every recorded statement
// with its line number. A statement spanning several physical lines gets one
// report line per physical line, numbered consecutively from its start line.
func (s *SimpleUI) DisplayMatches(path m.Path, matches m.Matches) {
	if matches.Len() == 0 {
		return
	}

	s.printf("%s\n", fileStyle.Render(string(path)))

	_ = matches.Range(func(start int, text string) error {
		for offset, line := range strings.Split(text, "\n") {
			s.printf("  %s %s\n",
				lineNumberStyle.Render(strconv.Itoa(start+offset)),
				statementStyle.Render(line),
			)
		}

		return nil
	})
}

// DisplayDiff prints a unified diff of the rewrite for one file.
func (s *SimpleUI) DisplayDiff(path m.Path, before, after []byte) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: string(path),
		ToFile:   string(path),
		Context:  diffContextLines,
	})
	if err != nil {
		return fmt.Errorf("failed to render diff for %s: %w", path, err)
	}

	s.printf("%s", text)

	return nil
}

// DisplayFailure reports a failed file with an explanatory message.
func (s *SimpleUI) DisplayFailure(result m.FileResult) {
	var message string

	switch result.Outcome {
	case m.IOFailure:
		message = fmt.Sprintf("Could not read file %q, skipping: %v", string(result.Path), result.Err)
	case m.StructuralFailure:
		message = fmt.Sprintf("Failed to transform the file %q: %v", string(result.Path), result.Err)
	default:
		message = fmt.Sprintf("Unexpected failure for file %q: %v", string(result.Path), result.Err)
	}

	s.printf("%s\n", failureStyle.Render(message))
}

// DisplaySummary prints the aggregate outcome of the run.
func (s *SimpleUI) DisplaySummary(report *m.Report, results []m.FileResult) {
	if report.Empty() {
		s.printf("%s\n", boldStyle.Render("No print statements found. All good to go."))
		return
	}

	if report.Verbose && report.FileCount > 0 {
		s.printf("\n%s", renderStatementTable(results, report.StatementCount))
	}

	s.printf("%s\n", summaryLine(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// summaryLine builds the one-line run summary with dry-run aware wording.
func summaryLine(report *m.Report) string {
	transformed, removed, failed := "transformed", "removed", "failed to transform"
	if report.DryRun {
		transformed = "would be transformed"
		removed = "would be removed"
		failed = "would fail to transform"
	}

	var parts []string

	if report.FileCount > 0 {
		parts = append(parts,
			countStyle.Render(fmt.Sprintf("%d file%s ", report.FileCount, plural(report.FileCount)))+
				boldStyle.Render(transformed))
	}

	if report.StatementCount > 0 {
		parts = append(parts,
			countStyle.Render(fmt.Sprintf("%d print statement%s ", report.StatementCount, plural(report.StatementCount)))+
				boldStyle.Render(removed))
	}

	if report.FailureCount > 0 {
		parts = append(parts,
			failureStyle.Render(fmt.Sprintf("%d file%s %s", report.FailureCount, plural(report.FailureCount), failed)))
	}

	line := strings.Join(parts, ", ")

	// In verbose mode the summary gets its own paragraph below the listing.
	if report.Verbose && report.FileCount > 0 {
		line = "\n" + line
	}

	return line
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}

	return ""
}

// fileStat is one row of the verbose summary table.
type fileStat struct {
	path  string
	count int
}

func buildFileStats(results []m.FileResult) []fileStat {
	stats := make([]fileStat, 0, len(results))

	for _, result := range results {
		if result.Outcome != m.Success || result.Count == 0 {
			continue
		}

		stats = append(stats, fileStat{path: string(result.Path), count: result.Count})
	}

	return stats
}

func renderStatementTable(results []m.FileResult, totalStatements int) string {
	statsList := buildFileStats(results)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Print Statements"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, stat := range statsList {
		table.Append([]string{stat.path, fmt.Sprintf("%d", stat.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(statsList)),
		fmt.Sprintf("%d", totalStatements),
	})

	table.Render()

	return tableBuffer.String()
}
