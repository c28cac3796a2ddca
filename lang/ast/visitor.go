package ast

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor is called for each node participating in a call to Walk. Returning
// a nil Visitor from Visit skips the node's children.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk visits node with v, then recurses into its children (if any),
// calling Visit again on exit. This is used by diagnostic tooling (the
// `ast` printer); the resolver and interpreter walk the tree directly with
// type switches instead, since they need to return different things
// (errors, values) at each node rather than a uniform Visitor result.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	walkChildren(v, node)
	v.Visit(node, VisitExit)
}

func walkChildren(v Visitor, node Node) {
	switch n := node.(type) {
	case *Literal:
	case *Grouping:
		Walk(v, n.Expression)
	case *Unary:
		Walk(v, n.Right)
	case *Binary:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Logical:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Variable:
	case *Assign:
		Walk(v, n.Value)
	case *Call:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Get:
		Walk(v, n.Object)
	case *Set:
		Walk(v, n.Object)
		Walk(v, n.Value)
	case *This:
	case *Super:

	case *ExpressionStmt:
		Walk(v, n.Expression)
	case *PrintStmt:
		Walk(v, n.Expression)
	case *VarStmt:
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}
	case *BlockStmt:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *IfStmt:
		Walk(v, n.Condition)
		Walk(v, n.ThenBranch)
		if n.ElseBranch != nil {
			Walk(v, n.ElseBranch)
		}
	case *WhileStmt:
		Walk(v, n.Condition)
		Walk(v, n.Body)
		if n.Increment != nil {
			Walk(v, n.Increment)
		}
	case *AbortLoopStmt:
	case *FunctionStmt:
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ClassStmt:
		if n.Superclass != nil {
			Walk(v, n.Superclass)
		}
		for _, m := range n.Methods {
			Walk(v, m)
		}
	default:
		panic("ast: unexpected node type in Walk")
	}
}
