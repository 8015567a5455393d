// Package ast defines the abstract syntax tree representation of Mithra code.
//
// The node set is closed: the parser produces exactly these shapes and the
// evaluator consumes exactly these shapes. Nodes are immutable once
// constructed; nothing mutates a node after parsing.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a source-like rendering of the node. Parsing the
	// rendering of a node yields a structurally equal node.
	String() string

	exprNode()
}

// Program is the ordered sequence of top-level expressions in one
// Mithra source text.
type Program struct {
	Stmts []Node
}

func (p *Program) String() string {
	var out []byte
	for i, stmt := range p.Stmts {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, stmt.String()...)
	}
	return string(out)
}
