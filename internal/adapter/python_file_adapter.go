package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	forest "github.com/alexaandru/go-sitter-forest/python"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	m "unprint.dev/pkg/unprint/internal/model"
)

// ErrSyntax indicates the parse tree contains error nodes, i.e. the input is
// not valid Python. Distinct from I/O errors so the caller can attribute the
// failure correctly.
var ErrSyntax = errors.New("source contains syntax errors")

var errNoRootNode = errors.New("parser returned no root node")

// PythonFileAdapter encapsulates Python-specific parsing so the domain layer
// can focus on matching and rewriting while delegating grammar details to an
// infrastructure component.
type PythonFileAdapter interface {
	// Parse builds a lossless syntax tree for the provided source bytes.
	// The returned tree must be closed by the caller.
	Parse(ctx context.Context, path m.Path, src []byte) (*ParseResult, error)
}

// ParseResult owns one parsed syntax tree. Nodes obtained from Root are only
// valid until Close is called.
type ParseResult struct {
	tree   *sitter.Tree
	root   sitter.Node
	source []byte
}

// Root returns the root node of the parsed tree.
func (p *ParseResult) Root() sitter.Node {
	return p.root
}

// Source returns the bytes the tree was parsed from.
func (p *ParseResult) Source() []byte {
	return p.source
}

// Close releases the underlying tree. Safe to call more than once.
func (p *ParseResult) Close() {
	if p.tree != nil {
		p.tree.Close()
		p.tree = nil
	}
}

// TreeSitterPythonFileAdapter provides a concrete PythonFileAdapter backed by
// the tree-sitter Python grammar. Parsers are pooled because constructing one
// is not free and the tool processes many files in sequence.
type TreeSitterPythonFileAdapter struct {
	parserPool sync.Pool
}

var errPoolType = errors.New("parser pool returned unexpected type")

// NewTreeSitterPythonFileAdapter constructs a TreeSitterPythonFileAdapter.
func NewTreeSitterPythonFileAdapter() *TreeSitterPythonFileAdapter {
	lang := sitter.NewLanguage(forest.GetLanguage())

	return &TreeSitterPythonFileAdapter{
		parserPool: sync.Pool{
			New: func() any {
				parser := sitter.NewParser()
				parser.SetLanguage(lang)

				return parser
			},
		},
	}
}

// Parse parses the given source and returns the tree, or ErrSyntax when the
// input is not valid Python.
func (a *TreeSitterPythonFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*ParseResult, error) {
	parser, ok := a.parserPool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer a.parserPool.Put(parser)

	tree, err := parser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	root := tree.RootNode()
	if root.IsNull() {
		tree.Close()
		return nil, fmt.Errorf("%s: %w", path, errNoRootNode)
	}

	// Tree-sitter always produces a tree; malformed input surfaces as
	// ERROR or MISSING nodes, both covered by HasError.
	if root.HasError() {
		tree.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrSyntax)
	}

	return &ParseResult{tree: tree, root: root, source: src}, nil
}
