package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unprint.dev/pkg/unprint/internal/adapter"
	m "unprint.dev/pkg/unprint/internal/model"
)

func transform(t *testing.T, mode m.Mode, source string) (string, *Transformer) {
	t.Helper()

	python := adapter.NewTreeSitterPythonFileAdapter()

	parsed, err := python.Parse(context.Background(), "test.py", []byte(source))
	require.NoError(t, err)
	defer parsed.Close()

	tr := NewTransformer(mode)
	output := tr.Transform(parsed)

	return string(output), tr
}

func TestTransformRewrites(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
		count    int
	}{
		{
			name:     "statement between assignments",
			source:   "a = 5\nprint(\"x\")\nb = a + 2\n",
			expected: "a = 5\nb = a + 2\n",
			count:    1,
		},
		{
			name:     "no print statements",
			source:   "a = 5\nb = a + 2\n",
			expected: "a = 5\nb = a + 2\n",
			count:    0,
		},
		{
			name:     "indentation of removed line",
			source:   "if x:\n    print(\"x\")\n    y = 1\n",
			expected: "if x:\n    y = 1\n",
			count:    1,
		},
		{
			name:     "sole statement in function body",
			source:   "def f():\n    print(\"x\")\n",
			expected: "def f():\n    pass\n",
			count:    1,
		},
		{
			name:     "fully matched body collapses to one pass",
			source:   "def f():\n    print(1)\n    print(2)\n",
			expected: "def f():\n    pass\n",
			count:    2,
		},
		{
			name:     "comments do not keep a body alive",
			source:   "def f():\n    # note\n    print(1)\n",
			expected: "def f():\n    # note\n    pass\n",
			count:    1,
		},
		{
			name:     "body with surviving statement needs no pass",
			source:   "def f():\n    print(1)\n    x = 1\n",
			expected: "def f():\n    x = 1\n",
			count:    1,
		},
		{
			name:     "module may become empty",
			source:   "print(\"x\")\n",
			expected: "",
			count:    1,
		},
		{
			name:     "multi-line call",
			source:   "print(\n    \"x\",\n)\ny = 1\n",
			expected: "y = 1\n",
			count:    1,
		},
		{
			name:     "trailing comment goes with the line",
			source:   "print(\"x\")  # debug\nx = 1\n",
			expected: "x = 1\n",
			count:    1,
		},
		{
			name:     "semicolon separated, print first",
			source:   "print(1); b = 2\n",
			expected: "b = 2\n",
			count:    1,
		},
		{
			name:     "semicolon separated, print last",
			source:   "a = 1; print(2)\n",
			expected: "a = 1\n",
			count:    1,
		},
		{
			name:     "nested bodies",
			source:   "class C:\n    def f(self):\n        if x:\n            print(\"deep\")\n        return x\n",
			expected: "class C:\n    def f(self):\n        if x:\n            pass\n        return x\n",
			count:    1,
		},
		{
			name:     "multi-byte characters survive the splice",
			source:   "x = \"héllo ✓\"\nprint(\"héllo\")\ny = \"日本\"\n",
			expected: "x = \"héllo ✓\"\ny = \"日本\"\n",
			count:    1,
		},
		{
			name:     "missing final newline",
			source:   "a = 5\nprint(\"x\")",
			expected: "a = 5\n",
			count:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, tr := transform(t, m.Mode{}, tt.source)

			assert.Equal(t, tt.expected, output)
			assert.Equal(t, tt.count, tr.Count())
		})
	}
}

func TestTransformDryRunLeavesSourceUntouched(t *testing.T) {
	source := "a = 5\nprint(\"x\")\nb = a + 2\n"

	output, tr := transform(t, m.Mode{DryRun: true}, source)

	assert.Equal(t, source, output)
	assert.Equal(t, 1, tr.Count())
}

func TestTransformDryRunWithDiffStillRewrites(t *testing.T) {
	output, tr := transform(t, m.Mode{DryRun: true, Diff: true}, "print(\"x\")\ny = 1\n")

	assert.Equal(t, "y = 1\n", output)
	assert.Equal(t, 1, tr.Count())
}

func TestTransformVerboseRecordsMatchesInOrder(t *testing.T) {
	source := "print(\"a\")\nx = 1\nprint(\"b\")\n"

	_, tr := transform(t, m.Mode{DryRun: true, Verbose: true}, source)

	require.Equal(t, 2, tr.Count())
	assert.Equal(t, []int{1, 3}, tr.Matches().Keys())

	text, ok := tr.Matches().Get(1)
	require.True(t, ok)
	assert.Equal(t, "print(\"a\")", text)

	text, ok = tr.Matches().Get(3)
	require.True(t, ok)
	assert.Equal(t, "print(\"b\")", text)
}

func TestTransformVerboseRecordsMultiLineStatement(t *testing.T) {
	_, tr := transform(t, m.Mode{Verbose: true}, "print(\n    \"x\",\n)\n")

	require.Equal(t, []int{1}, tr.Matches().Keys())

	text, ok := tr.Matches().Get(1)
	require.True(t, ok)
	assert.Equal(t, "print(\n    \"x\",\n)", text)
}

func TestTransformWithoutVerboseRecordsNothing(t *testing.T) {
	_, tr := transform(t, m.Mode{}, "print(\"a\")\n")

	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, 0, tr.Matches().Len())
}

func TestTransformIsIdempotent(t *testing.T) {
	first, tr := transform(t, m.Mode{}, "a = 5\nprint(\"x\")\ndef f():\n    print(1)\n")
	require.Equal(t, 2, tr.Count())

	second, tr := transform(t, m.Mode{}, first)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, tr.Count())
}

func TestTransformSameLineStatementsRemoveTheirLine(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
		count    int
	}{
		{
			name:     "fully matched line disappears",
			source:   "print(1); print(2)\nx = 1\n",
			expected: "x = 1\n",
			count:    2,
		},
		{
			name:     "fully matched indented line disappears",
			source:   "if x:\n    print(1); print(2)\n    y = 1\n",
			expected: "if x:\n    y = 1\n",
			count:    2,
		},
		{
			name:     "three matches on one line",
			source:   "print(1); print(2); print(3)\nx = 1\n",
			expected: "x = 1\n",
			count:    3,
		},
		{
			name:     "surviving statement keeps the line",
			source:   "a = 1; print(1); print(2)\n",
			expected: "a = 1\n",
			count:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, tr := transform(t, m.Mode{}, tt.source)

			assert.Equal(t, tt.count, tr.Count())
			assert.Equal(t, tt.expected, output)
		})
	}
}
