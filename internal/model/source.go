package model

// Path represents a file system path.
type Path string

// Mode holds the per-run flags that control how files are processed.
type Mode struct {
	// DryRun computes and reports matches without writing anything back.
	DryRun bool

	// Verbose records the position and literal text of every match.
	Verbose bool

	// Diff renders a unified diff of the would-be changes. Implies no
	// extra work when a file has no matches.
	Diff bool
}
