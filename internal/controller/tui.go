package controller

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "unprint.dev/pkg/unprint/internal/model"
)

// TUI implements UI for interactive terminals. Per-file output behaves like
// SimpleUI; the verbose summary table is paged with Bubble Tea when it does
// not fit on screen.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplaySummary pages the verbose statement table when it is too long for
// the terminal, otherwise falls back to plain printing.
func (t *TUI) DisplaySummary(report *m.Report, results []m.FileResult) {
	if !report.Verbose || report.FileCount == 0 {
		t.SimpleUI.DisplaySummary(report, results)
		return
	}

	model := newStatementTableModel(buildFileStats(results), report.StatementCount)

	if f, ok := t.cmd.OutOrStdout().(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		t.SimpleUI.DisplaySummary(report, results)
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		// Fall back to plain output rather than losing the report.
		t.SimpleUI.DisplaySummary(report, results)
		return
	}

	t.printf("%s\n", summaryLine(report))
}

// statementTableModel is the Bubble Tea model for paging per-file statement
// counts.
type statementTableModel struct {
	stats           []fileStat
	totalStatements int
	height          int
	width           int
	offset          int // current scroll offset
	quitting        bool
}

func newStatementTableModel(stats []fileStat, totalStatements int) statementTableModel {
	return statementTableModel{
		stats:           stats,
		totalStatements: totalStatements,
	}
}

func (stm statementTableModel) Init() tea.Cmd {
	return nil
}

func (stm statementTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		stm.height = msg.Height
		stm.width = msg.Width

		return stm, nil

	case tea.KeyMsg:
		return stm.handleKeyPress(msg)
	}

	return stm, nil
}

//nolint:exhaustive // Key handling requires multiple cases for UI navigation
func (stm statementTableModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		stm.quitting = true
		return stm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		stm.quitting = true
		return stm, tea.Quit

	case "down", "j":
		stm.offset = min(stm.offset+1, stm.maxOffset())
		return stm, nil

	case "up", "k":
		stm.offset = max(stm.offset-1, 0)
		return stm, nil

	case "g", "home":
		stm.offset = 0
		return stm, nil

	case "G", "end":
		stm.offset = stm.maxOffset()
		return stm, nil

	case "d", "pgdown":
		stm.offset = min(stm.offset+stm.itemsPerPage(), stm.maxOffset())
		return stm, nil

	case "u", "pgup":
		stm.offset = max(stm.offset-stm.itemsPerPage(), 0)
		return stm, nil
	}

	return stm, nil
}

// itemsPerPage calculates how many rows fit on screen, reserving lines for
// the header, totals and the footer help.
func (stm statementTableModel) itemsPerPage() int {
	if stm.height == 0 {
		return 10
	}

	const reserved = 8

	available := stm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (stm statementTableModel) maxOffset() int {
	maxOff := len(stm.stats) - stm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (stm statementTableModel) needsPagination() bool {
	if len(stm.stats) == 0 {
		return false
	}

	return len(stm.stats) > stm.itemsPerPage() && stm.height > 0
}

func (stm statementTableModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Print statements per file (%d total)\n\n", stm.totalStatements)

	end := min(stm.offset+stm.itemsPerPage(), len(stm.stats))

	for _, stat := range stm.stats[stm.offset:end] {
		fmt.Fprintf(&b, "  %s %s\n",
			lineNumberStyle.Render(fmt.Sprintf("%4d", stat.count)),
			fileStyle.Render(stat.path),
		)
	}

	fmt.Fprintf(&b, "\n  %d-%d of %d files\n", stm.offset+1, end, len(stm.stats))
	b.WriteString(lineNumberStyle.Render("  j/k scroll · d/u page · g/G jump · q quit") + "\n")

	return b.String()
}
