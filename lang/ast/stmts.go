package ast

import "github.com/manurFR/lox/lang/token"

type (
	// ExpressionStmt is an expression evaluated for its side effects, its
	// result discarded.
	ExpressionStmt struct {
		Expression Expr
	}

	// PrintStmt evaluates an expression and writes its canonical string form
	// followed by a newline.
	PrintStmt struct {
		Keyword    token.Token
		Expression Expr
	}

	// VarStmt declares a new binding in the current environment, optionally
	// initialized; an absent Initializer means the variable starts as nil.
	VarStmt struct {
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt introduces a new lexical scope around a list of statements.
	BlockStmt struct {
		Statements []Stmt
	}

	// IfStmt executes ThenBranch or ElseBranch depending on Condition's
	// truthiness; ElseBranch is nil when there is no else clause.
	IfStmt struct {
		Condition  Expr
		ThenBranch Stmt
		ElseBranch Stmt
	}

	// WhileStmt is the sole looping construct. Increment is non-nil only
	// when this node was synthesized from a for-loop's increment clause: it
	// still runs after the body even when the body abandons the iteration
	// with 'continue'.
	WhileStmt struct {
		Keyword   token.Token
		Condition Expr
		Body      Stmt
		Increment Stmt
	}

	// AbortLoopStmt is either 'break' or 'continue', distinguished by
	// Keyword.Kind.
	AbortLoopStmt struct {
		Keyword token.Token
	}

	// FunctionStmt declares a named function (or, as a ClassStmt.Methods
	// element, a method) in the enclosing scope.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt unwinds the current function call; Value is nil for a bare
	// 'return'.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr
	}

	// ClassStmt declares a class, with an optional superclass reference and
	// a list of method declarations.
	ClassStmt struct {
		Name       token.Token
		Superclass *Variable // nil if no 'class Foo < Bar' clause
		Methods    []*FunctionStmt
	}
)

func (n *ExpressionStmt) Line() int { return n.Expression.Line() }
func (n *PrintStmt) Line() int      { return n.Keyword.Line }
func (n *VarStmt) Line() int        { return n.Name.Line }
func (n *BlockStmt) Line() int {
	if len(n.Statements) > 0 {
		return n.Statements[0].Line()
	}
	return 0
}
func (n *IfStmt) Line() int        { return n.Condition.Line() }
func (n *WhileStmt) Line() int     { return n.Keyword.Line }
func (n *AbortLoopStmt) Line() int { return n.Keyword.Line }
func (n *FunctionStmt) Line() int  { return n.Name.Line }
func (n *ReturnStmt) Line() int    { return n.Keyword.Line }
func (n *ClassStmt) Line() int     { return n.Name.Line }

func (n *ExpressionStmt) stmtNode() {}
func (n *PrintStmt) stmtNode()      {}
func (n *VarStmt) stmtNode()        {}
func (n *BlockStmt) stmtNode()      {}
func (n *IfStmt) stmtNode()         {}
func (n *WhileStmt) stmtNode()      {}
func (n *AbortLoopStmt) stmtNode()  {}
func (n *FunctionStmt) stmtNode()   {}
func (n *ReturnStmt) stmtNode()     {}
func (n *ClassStmt) stmtNode()      {}
