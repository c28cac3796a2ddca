package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/parser"
	"github.com/manurFR/lox/lang/scanner"
)

// Parse parses args[0] and reports syntax errors, printing nothing to
// stdout on success: it only exists to let a caller check that a file is
// syntactically well-formed without running it.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	_, err := parseFile(stdio, args[0])
	return err
}

// Ast parses args[0] and prints an indented description of every top-level
// statement's syntax tree to stdout.
func (c *Cmd) Ast(_ context.Context, stdio mainer.Stdio, args []string) error {
	stmts, err := parseFile(stdio, args[0])
	if err != nil {
		return err
	}
	printer := ast.Printer{Output: stdio.Stdout}
	for _, stmt := range stmts {
		if perr := printer.Print(stmt); perr != nil {
			fmt.Fprintln(stdio.Stderr, perr)
			return perr
		}
	}
	return nil
}

func parseFile(stdio mainer.Stdio, path string) ([]ast.Stmt, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, err
	}

	el := &errs.List{}
	toks := scanner.ScanTokens(string(src), el)
	stmts, _ := parser.Parse(toks, el)

	if el.Err() != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return nil, staticPhaseError{}
	}
	return stmts, nil
}
