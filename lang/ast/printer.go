package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints an AST as an indented tree, one node description per
// line. It exists for the diagnostic `ast` CLI subcommand; the resolver and
// interpreter never use it.
type Printer struct {
	Output io.Writer
}

// Print walks n and writes an indented description of every node to
// p.Output.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.print(n, p.depth-1)
	return p
}

func (p *printer) print(n Node, indent int) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s[line %d] %s\n", strings.Repeat(". ", indent), n.Line(), describe(n))
}

func describe(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return fmt.Sprintf("literal %v", n.Value)
	case *Grouping:
		return "group"
	case *Unary:
		return "unary " + n.Operator.Lexeme
	case *Binary:
		return "binary " + n.Operator.Lexeme
	case *Logical:
		return "logical " + n.Operator.Lexeme
	case *Variable:
		return "var " + n.Name.Lexeme
	case *Assign:
		return "assign " + n.Name.Lexeme
	case *Call:
		return fmt.Sprintf("call (%d args)", len(n.Args))
	case *Get:
		return "get ." + n.Name.Lexeme
	case *Set:
		return "set ." + n.Name.Lexeme
	case *This:
		return "this"
	case *Super:
		return "super." + n.Method.Lexeme
	case *ExpressionStmt:
		return "expr stmt"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "var decl " + n.Name.Lexeme
	case *BlockStmt:
		return fmt.Sprintf("block (%d stmts)", len(n.Statements))
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *AbortLoopStmt:
		return n.Keyword.Lexeme
	case *FunctionStmt:
		return fmt.Sprintf("fn decl %s (%d params)", n.Name.Lexeme, len(n.Params))
	case *ReturnStmt:
		return "return"
	case *ClassStmt:
		return "class decl " + n.Name.Lexeme
	default:
		return fmt.Sprintf("%T", n)
	}
}
