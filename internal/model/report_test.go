package model

import (
	"testing"
)

func TestReportReturnCode(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected int
	}{
		{"clean run", Report{}, ExitOK},
		{"changes without dry run", Report{FileCount: 2, StatementCount: 5}, ExitOK},
		{"dry run with changes", Report{DryRun: true, FileCount: 1, StatementCount: 1}, ExitDryRunDirty},
		{"dry run without changes", Report{DryRun: true}, ExitOK},
		{"failures win over dry run", Report{DryRun: true, FileCount: 1, FailureCount: 1}, ExitFailure},
		{"failures only", Report{FailureCount: 3}, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := tt.report.ReturnCode(); code != tt.expected {
				t.Errorf("ReturnCode() = %d, expected %d", code, tt.expected)
			}
		})
	}
}

func TestReportAdd(t *testing.T) {
	var report Report

	report.Add(FileResult{Outcome: Success, Count: 2})
	report.Add(FileResult{Outcome: Success, Count: 0})
	report.Add(FileResult{Outcome: StructuralFailure})
	report.Add(FileResult{Outcome: IOFailure})

	if report.FileCount != 1 {
		t.Errorf("FileCount = %d, expected 1", report.FileCount)
	}

	if report.StatementCount != 2 {
		t.Errorf("StatementCount = %d, expected 2", report.StatementCount)
	}

	if report.FailureCount != 2 {
		t.Errorf("FailureCount = %d, expected 2", report.FailureCount)
	}
}

func TestReportEmpty(t *testing.T) {
	var report Report
	if !report.Empty() {
		t.Error("fresh report should be empty")
	}

	report.Add(FileResult{Outcome: Success, Count: 1})
	if report.Empty() {
		t.Error("report with a changed file should not be empty")
	}
}
