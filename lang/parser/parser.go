// Package parser implements the recursive-descent parser that turns a token
// stream into the AST consumed by the resolver and interpreter. Like the
// scanner, it is an external collaborator of the core: its only obligation
// is to deliver a well-formed AST, reporting syntax errors into the shared
// errs.List accumulator and never panicking past its own boundary.
package parser

import (
	"strconv"

	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/token"
)

// Parse parses a full program (a sequence of declarations) from toks,
// reporting syntax errors into el. It always returns as many statements as
// it could recover, even in the presence of errors; callers that care about
// correctness must check el.Err() (or the returned error) before using the
// result.
func Parse(toks []token.Token, el *errs.List) ([]ast.Stmt, error) {
	p := &parser{toks: toks, errs: el}
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, el.Err()
}

// ParseExpression parses a single expression from the start of toks; any
// tokens after that expression are left unread and are not reported. It is used by
// the `evaluate` subcommand, which operates on a bare expression rather than
// a full program.
func ParseExpression(toks []token.Token, el *errs.List) (ast.Expr, error) {
	p := &parser{toks: toks, errs: el}
	expr := p.safeExpression()
	return expr, el.Err()
}

// parseError is panicked internally to unwind to the nearest statement
// boundary on a syntax error; it never escapes the parser package.
type parseError struct{}

type parser struct {
	toks    []token.Token
	current int
	errs    *errs.List
}

func (p *parser) peek() token.Token   { return p.toks[p.current] }
func (p *parser) previous() token.Token { return p.toks[p.current-1] }
func (p *parser) isAtEnd() bool       { return p.peek().Kind == token.EOF }

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.error(p.peek(), message)
	panic(parseError{})
}

func (p *parser) error(tok token.Token, message string) {
	line := strconv.Itoa(tok.Line)
	if tok.Kind == token.EOF {
		p.errs.Add(tok.Line, "[line "+line+"] Error at end: "+message)
	} else {
		p.errs.Add(tok.Line, "[line "+line+"] Error at '"+tok.Lexeme+"': "+message)
	}
}

// synchronize discards tokens until it reaches what looks like a statement
// boundary, so that parsing can resume and surface more than one error per
// pass.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// safeExpression parses a single expression, recovering to EOF on error
// instead of leaving the parser in a mid-statement state (there is no
// statement boundary to synchronize to for a bare expression).
func (p *parser) safeExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			expr = nil
		}
	}()
	return p.expression()
}
