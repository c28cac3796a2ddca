package ast

import "github.com/manurFR/lox/lang/token"

type (
	// Literal is a literal value baked into the source: a number, string,
	// boolean or nil. Value holds the raw Go representation produced by the
	// scanner (nil, bool, float64 or string); it is converted to a runtime
	// Value by the interpreter, keeping this package free of any dependency
	// on the runtime value representation.
	Literal struct {
		Value any
		Ln    int
	}

	// Grouping is a parenthesized expression, e.g. (a + b).
	Grouping struct {
		Expression Expr
		Ln         int
	}

	// Unary is a prefix operator expression, e.g. -a or !a.
	Unary struct {
		Operator token.Token
		Right    Expr
	}

	// Binary is an infix operator expression, e.g. a + b.
	Binary struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Logical is 'and'/'or', kept distinct from Binary because both
	// short-circuit and never coerce their result to a boolean.
	Logical struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Variable is a read of a named binding.
	Variable struct {
		Name token.Token
	}

	// Assign writes a value to an existing named binding.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	// Call invokes a callee with a list of argument expressions. Paren is
	// the closing parenthesis token, used to report arity and call-target
	// errors on the right line.
	Call struct {
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}

	// Get reads a property (field or method) off an instance.
	Get struct {
		Object Expr
		Name   token.Token
	}

	// Set writes a field on an instance.
	Set struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// This refers to the implicit receiver inside a method body.
	This struct {
		Keyword token.Token
	}

	// Super refers to a method defined on the enclosing class's superclass.
	Super struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (n *Literal) Line() int  { return n.Ln }
func (n *Grouping) Line() int { return n.Ln }
func (n *Unary) Line() int    { return n.Operator.Line }
func (n *Binary) Line() int   { return n.Operator.Line }
func (n *Logical) Line() int  { return n.Operator.Line }
func (n *Variable) Line() int { return n.Name.Line }
func (n *Assign) Line() int   { return n.Name.Line }
func (n *Call) Line() int     { return n.Paren.Line }
func (n *Get) Line() int      { return n.Name.Line }
func (n *Set) Line() int      { return n.Name.Line }
func (n *This) Line() int     { return n.Keyword.Line }
func (n *Super) Line() int    { return n.Keyword.Line }

func (n *Literal) exprNode()  {}
func (n *Grouping) exprNode() {}
func (n *Unary) exprNode()    {}
func (n *Binary) exprNode()   {}
func (n *Logical) exprNode()  {}
func (n *Variable) exprNode() {}
func (n *Assign) exprNode()   {}
func (n *Call) exprNode()     {}
func (n *Get) exprNode()      {}
func (n *Set) exprNode()      {}
func (n *This) exprNode()     {}
func (n *Super) exprNode()    {}
