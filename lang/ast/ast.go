// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and interpreter. Expressions and statements are
// two disjoint families of tagged variants: there is no shared mutable
// state, and each expression node has stable pointer identity so that the
// resolver can key its depth table on the expression itself rather than on
// its contents.
package ast

// Node is implemented by every expression and statement node.
type Node interface {
	// Line returns the source line this node is most closely associated
	// with, for error reporting.
	Line() int
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}
