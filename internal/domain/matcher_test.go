package domain

import (
	"context"
	"testing"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"unprint.dev/pkg/unprint/internal/adapter"
)

// firstStatement returns the first expression_statement in the source, which
// is what the matcher is fed during traversal.
func firstStatement(t *testing.T, source string) (sitter.Node, []byte, func()) {
	t.Helper()

	python := adapter.NewTreeSitterPythonFileAdapter()

	parsed, err := python.Parse(context.Background(), "test.py", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	node, found := findStatement(parsed.Root())
	if !found {
		t.Fatalf("no expression statement in %q", source)
	}

	return node, parsed.Source(), parsed.Close
}

func findStatement(node sitter.Node) (sitter.Node, bool) {
	if node.Type() == nodeExpressionStatement {
		return node, true
	}

	for i := range node.NamedChildCount() {
		if found, ok := findStatement(node.NamedChild(i)); ok {
			return found, true
		}
	}

	return sitter.Node{}, false
}

func TestIsPrintStatement(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected bool
	}{
		{"no arguments", "print()\n", true},
		{"one argument", "print(\"x\")\n", true},
		{"many arguments", "print(a, b, sep=\", \")\n", true},
		{"star arguments", "print(*values)\n", true},
		{"nested call argument", "print(len(items))\n", true},
		{"inside function body", "def f():\n    print(\"x\")\n", true},
		{"other call", "log(\"x\")\n", false},
		{"assigned call", "x = print(\"y\")\n", false},
		{"attribute call", "logger.print(\"x\")\n", false},
		{"subscript call", "handlers[0](\"x\")\n", false},
		{"sub-expression call", "f(print(1))\n", false},
		{"bare identifier", "print\n", false},
		{"string expression", "\"print('x')\"\n", false},
		{"prefixed identifier", "pprint(\"x\")\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, src, closeTree := firstStatement(t, tt.source)
			defer closeTree()

			if got := IsPrintStatement(node, src); got != tt.expected {
				t.Errorf("IsPrintStatement(%q) = %v, expected %v", tt.source, got, tt.expected)
			}
		})
	}
}

func TestIsPrintStatementNonStatementNode(t *testing.T) {
	python := adapter.NewTreeSitterPythonFileAdapter()

	parsed, err := python.Parse(context.Background(), "test.py", []byte("print(\"x\")\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	defer parsed.Close()

	// The module root itself must never match.
	if IsPrintStatement(parsed.Root(), parsed.Source()) {
		t.Error("module node should not match")
	}
}
