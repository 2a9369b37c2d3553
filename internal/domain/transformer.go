package domain

import (
	"slices"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"unprint.dev/pkg/unprint/internal/adapter"
	m "unprint.dev/pkg/unprint/internal/model"
)

// Transformer performs a single top-to-bottom traversal of one parsed file.
// It counts every print statement, records positions in verbose mode, and
// plans byte-splice edits unless running dry. A Transformer is created per
// file and must not be reused.
type Transformer struct {
	mode    m.Mode
	count   int
	matches m.Matches

	edits []edit
	// blocks that already received their pass placeholder, keyed by the
	// block's start byte.
	passPlanned map[uint]struct{}
}

// edit replaces src[start:end) with replacement. Removal uses an empty
// replacement.
type edit struct {
	start, end  uint
	replacement []byte
}

// NewTransformer creates a Transformer for one invocation.
func NewTransformer(mode m.Mode) *Transformer {
	return &Transformer{
		mode:        mode,
		matches:     m.NewMatches(),
		passPlanned: make(map[uint]struct{}),
	}
}

// Count returns the number of print statements found so far.
func (t *Transformer) Count() int {
	return t.count
}

// Matches returns the recorded line-to-text mapping. Empty unless verbose
// mode was set.
func (t *Transformer) Matches() m.Matches {
	return t.matches
}

// Transform traverses the parsed tree and returns the rewritten source.
// When no statement matches the returned bytes equal the input exactly.
// Under dry-run the rewrite is still computed when a diff was requested, but
// the caller never writes it back. Only matched statements are spliced out;
// every other byte, including comments, blank lines and multi-byte
// characters, passes through untouched.
func (t *Transformer) Transform(parsed *adapter.ParseResult) []byte {
	src := parsed.Source()
	t.visit(parsed.Root(), src)

	if len(t.edits) == 0 {
		return src
	}

	return applyEdits(src, coalesceLineEdits(src, t.edits))
}

// visit walks named children in document order, which keeps recorded matches
// ascending by line. Matched statements are not descended into.
func (t *Transformer) visit(node sitter.Node, src []byte) {
	for i := range node.NamedChildCount() {
		child := node.NamedChild(i)
		if IsPrintStatement(child, src) {
			t.match(node, child, src)
			continue
		}

		t.visit(child, src)
	}
}

// match handles one matched statement: count, optional record, planned edit.
func (t *Transformer) match(parent, stmt sitter.Node, src []byte) {
	t.count++

	if t.mode.Verbose {
		line := int(stmt.StartPoint().Row) + 1
		t.matches.Set(line, stmt.Content(src))
	}

	if t.mode.DryRun && !t.mode.Diff {
		return
	}

	if t.needsPlaceholder(parent, src) {
		t.edits = append(t.edits, edit{
			start:       stmt.StartByte(),
			end:         stmt.EndByte(),
			replacement: []byte(placeholderStatement),
		})

		return
	}

	start, end := removalSpan(stmt, src)
	t.edits = append(t.edits, edit{start: start, end: end})
}

// needsPlaceholder decides whether this match must become a pass statement
// instead of disappearing. That is the case for the first match in a block
// whose statements are all print statements; the module itself may become
// empty, an empty file is valid Python.
func (t *Transformer) needsPlaceholder(parent sitter.Node, src []byte) bool {
	if parent.Type() != nodeBlock {
		return false
	}

	key := parent.StartByte()
	if _, planned := t.passPlanned[key]; planned {
		return false
	}

	if !blockFullyMatched(parent, src) {
		return false
	}

	t.passPlanned[key] = struct{}{}

	return true
}

// blockFullyMatched reports whether every statement in the block is a print
// statement. Comments do not count as statements: a block left with only
// comments still needs its placeholder.
func blockFullyMatched(block sitter.Node, src []byte) bool {
	for i := range block.NamedChildCount() {
		child := block.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}

		if !IsPrintStatement(child, src) {
			return false
		}
	}

	return true
}

// removalSpan widens a statement's byte span for removal. When the statement
// owns its source line(s) outright, the span covers the full lines including
// leading indentation, any trailing comment and the final newline. When other
// code shares the line (semicolon-separated statements), the span covers the
// statement plus one adjacent separator so the neighbours stay well-formed.
func removalSpan(stmt sitter.Node, src []byte) (uint, uint) {
	start := stmt.StartByte()
	end := stmt.EndByte()

	lineStart := start - stmt.StartPoint().Column

	lineEnd := end
	for lineEnd < uint(len(src)) && src[lineEnd] != '\n' {
		lineEnd++
	}

	if isBlank(src[lineStart:start]) && isLineTail(src[end:lineEnd]) {
		if lineEnd < uint(len(src)) {
			lineEnd++ // consume the newline as well
		}

		return lineStart, lineEnd
	}

	// Shared line: absorb the separator before the statement if there is
	// one, otherwise the one after it.
	if pos, ok := precedingSeparator(src, lineStart, start); ok {
		return pos, end
	}

	return start, trailingSeparator(src, end)
}

// isBlank reports whether every byte is horizontal whitespace.
func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}

	return true
}

// isLineTail reports whether the rest of a line is ignorable when the line is
// removed: whitespace, optionally followed by a comment.
func isLineTail(b []byte) bool {
	for i, c := range b {
		if c == '#' {
			return isBlank(b[:i])
		}
	}

	return isBlank(b)
}

// precedingSeparator scans back from start for a semicolon separator and
// returns the position removal should begin at, skipping the whitespace
// before it so the previous statement keeps a clean tail.
func precedingSeparator(src []byte, lineStart, start uint) (uint, bool) {
	i := start
	for i > lineStart && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}

	if i > lineStart && src[i-1] == ';' {
		i--
		for i > lineStart && (src[i-1] == ' ' || src[i-1] == '\t') {
			i--
		}

		return i, true
	}

	return 0, false
}

// trailingSeparator extends end past a following semicolon separator and its
// whitespace.
func trailingSeparator(src []byte, end uint) uint {
	i := end
	for i < uint(len(src)) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}

	if i < uint(len(src)) && src[i] == ';' {
		i++
		for i < uint(len(src)) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}

		return i
	}

	return end
}

// coalesceLineEdits merges consecutive removals that together empty a shared
// line into one whole-line removal, so `print(1); print(2)` takes its line
// with it instead of leaving a blank one behind. Placeholder edits and spans
// reaching past their line pass through untouched.
func coalesceLineEdits(src []byte, edits []edit) []edit {
	out := make([]edit, 0, len(edits))

	for i := 0; i < len(edits); {
		e := edits[i]
		if len(e.replacement) > 0 {
			out = append(out, e)
			i++

			continue
		}

		lineStart := e.start
		for lineStart > 0 && src[lineStart-1] != '\n' {
			lineStart--
		}

		lineEnd := e.start
		for lineEnd < uint(len(src)) && src[lineEnd] != '\n' {
			lineEnd++
		}

		j := i
		for j < len(edits) && len(edits[j].replacement) == 0 &&
			edits[j].start >= lineStart && edits[j].start <= lineEnd &&
			edits[j].end <= lineEnd+1 {
			j++
		}

		if j > i && lineBlankWithout(src, lineStart, lineEnd, edits[i:j]) {
			end := lineEnd
			if end < uint(len(src)) {
				end++ // consume the newline as well
			}

			out = append(out, edit{start: lineStart, end: end})
			i = j

			continue
		}

		out = append(out, e)
		i++
	}

	return out
}

// lineBlankWithout reports whether the line [lineStart, lineEnd) holds only
// whitespace once the given removal spans are taken out.
func lineBlankWithout(src []byte, lineStart, lineEnd uint, removals []edit) bool {
	for pos := lineStart; pos < lineEnd; pos++ {
		if coveredBy(pos, removals) {
			continue
		}

		if c := src[pos]; c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}

	return true
}

func coveredBy(pos uint, removals []edit) bool {
	for _, e := range removals {
		if pos >= e.start && pos < e.end {
			return true
		}
	}

	return false
}

// applyEdits splices the planned edits into a fresh buffer, back to front so
// earlier offsets stay valid. Spans widened by separator absorption can touch
// a neighbouring edit; the earlier span is clamped so nothing is removed
// twice.
func applyEdits(src []byte, edits []edit) []byte {
	out := slices.Clone(src)

	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		if i+1 < len(edits) && e.end > edits[i+1].start {
			e.end = edits[i+1].start
		}

		out = slices.Concat(out[:e.start], e.replacement, out[e.end:])
	}

	return out
}
