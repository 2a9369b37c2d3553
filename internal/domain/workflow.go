package domain

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"unprint.dev/pkg/unprint/internal/adapter"
	"unprint.dev/pkg/unprint/internal/controller"
	m "unprint.dev/pkg/unprint/internal/model"
)

// defaultFileMode is used for write-back when the original mode cannot be
// determined.
const defaultFileMode = os.FileMode(0o644)

// CheckArgs contains the arguments for one run.
type CheckArgs struct {
	Paths   []m.Path
	Ignore  []m.Path
	Mode    m.Mode
	Threads int
}

// Workflow drives the per-file pipeline: read, parse, transform, report, and
// conditionally write back.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (*m.Report, error)
}

type workflow struct {
	adapter.PythonFileAdapter
	adapter.SourceFSAdapter
	ui controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	pythonAdapter adapter.PythonFileAdapter,
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		PythonFileAdapter: pythonAdapter,
		SourceFSAdapter:   fsAdapter,
		ui:                ui,
	}
}

// Check processes every requested file and folds the results into an
// aggregate report. Per-file failures are reported and counted, never fatal:
// the run always proceeds to the next file.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (*m.Report, error) {
	report := &m.Report{DryRun: args.Mode.DryRun, Verbose: args.Mode.Verbose}
	paths := filterIgnored(args.Paths, args.Ignore)

	var results []m.FileResult
	if args.Threads > 1 {
		results = w.checkParallel(ctx, paths, args.Mode, args.Threads)
	} else {
		results = w.checkSequential(ctx, paths, args.Mode)
	}

	for _, result := range results {
		report.Add(result)
	}

	w.ui.DisplaySummary(report, results)

	return report, nil
}

// checkSequential processes files one at a time, displaying each file's
// output at the point of occurrence.
func (w *workflow) checkSequential(ctx context.Context, paths []m.Path, mode m.Mode) []m.FileResult {
	results := make([]m.FileResult, 0, len(paths))

	for _, path := range paths {
		result := w.checkFile(ctx, path, mode)
		w.display(result)
		results = append(results, result)
	}

	return results
}

// checkParallel processes files concurrently. Each worker writes into its own
// result slot, so no locking is needed; per-file output is buffered and
// flushed in the original input order once all workers finish.
func (w *workflow) checkParallel(ctx context.Context, paths []m.Path, mode m.Mode, threads int) []m.FileResult {
	results := make([]m.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = w.checkFile(gctx, path, mode)
			return nil
		})
	}

	_ = g.Wait()

	for _, result := range results {
		w.display(result)
	}

	return results
}

// checkFile runs the whole pipeline for one file. Once started it runs to
// completion; all errors are folded into the result instead of propagating.
func (w *workflow) checkFile(ctx context.Context, path m.Path, mode m.Mode) m.FileResult {
	result := m.FileResult{Path: path, Matches: m.NewMatches()}

	src, err := w.ReadFile(path)
	if err != nil {
		slog.Error("could not read file", "path", path, "error", err)

		result.Outcome = m.IOFailure
		result.Err = err

		return result
	}

	parsed, err := w.Parse(ctx, path, src)
	if err != nil {
		slog.Error("could not parse file", "path", path, "error", err)

		result.Outcome = m.StructuralFailure
		result.Err = err

		return result
	}

	defer parsed.Close()

	transformer := NewTransformer(mode)
	output := transformer.Transform(parsed)

	result.Outcome = m.Success
	result.Count = transformer.Count()
	result.Matches = transformer.Matches()
	result.Output = output

	if mode.Diff {
		result.Input = src
	}

	if !mode.DryRun && result.Count > 0 {
		if err := w.writeBack(path, output); err != nil {
			slog.Error("could not write file", "path", path, "error", err)

			result.Outcome = m.IOFailure
			result.Err = err

			return result
		}

		slog.Debug("rewrote file", "path", path, "statements", result.Count)
	}

	return result
}

// writeBack persists the rewritten source, preserving the original file mode
// when it can be read.
func (w *workflow) writeBack(path m.Path, content []byte) error {
	perm := defaultFileMode

	if info, err := w.FileInfo(path); err == nil {
		perm = info.Mode()
	}

	return w.WriteFile(path, content, perm)
}

// display emits one file's output: failures at the point of occurrence,
// verbose match listings and the optional diff for changed files.
func (w *workflow) display(result m.FileResult) {
	if result.Outcome != m.Success {
		w.ui.DisplayFailure(result)
		return
	}

	if result.Count == 0 {
		return
	}

	w.ui.DisplayMatches(result.Path, result.Matches)

	if len(result.Input) > 0 {
		_ = w.ui.DisplayDiff(result.Path, result.Input, result.Output)
	}
}

// filterIgnored drops the requested paths that appear in the ignore list.
func filterIgnored(paths, ignore []m.Path) []m.Path {
	if len(ignore) == 0 {
		return paths
	}

	skip := make(map[m.Path]struct{}, len(ignore))
	for _, path := range ignore {
		skip[path] = struct{}{}
	}

	kept := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		if _, ignored := skip[path]; ignored {
			continue
		}

		kept = append(kept, path)
	}

	return kept
}
