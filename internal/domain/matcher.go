// Package domain contains the matching and rewriting core of unprint.
package domain

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Tree-sitter Python node kinds and fields the matcher cares about.
const (
	nodeExpressionStatement = "expression_statement"
	nodeCall                = "call"
	nodeIdentifier          = "identifier"
	nodeComment             = "comment"
	nodeBlock               = "block"

	fieldFunction = "function"
)

// printIdentifier is the fixed target: a statement-level call to this bare
// name matches, nothing else does.
const printIdentifier = "print"

// placeholderStatement keeps a block syntactically valid when every statement
// in it is removed.
const placeholderStatement = "pass"

// IsPrintStatement reports whether node is a statement whose sole content is
// a call to the bare identifier `print`. Arguments are irrelevant to the
// match. Attribute calls (obj.print), subscripts, assignments and calls used
// as sub-expressions never match. Total over any node shape, no side effects.
func IsPrintStatement(node sitter.Node, src []byte) bool {
	if node.Type() != nodeExpressionStatement {
		return false
	}

	// An expression statement carrying an assignment, or several
	// expressions, is not a bare call.
	if node.NamedChildCount() != 1 {
		return false
	}

	call := node.NamedChild(0)
	if call.Type() != nodeCall {
		return false
	}

	fn := call.ChildByFieldName(fieldFunction)
	if fn.IsNull() || fn.Type() != nodeIdentifier {
		return false
	}

	return fn.Content(src) == printIdentifier
}
