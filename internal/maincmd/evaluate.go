package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/interpreter"
	"github.com/manurFR/lox/lang/parser"
	"github.com/manurFR/lox/lang/resolver"
	"github.com/manurFR/lox/lang/scanner"
)

// Evaluate reads args[0] as a single expression (not a full program),
// resolves and evaluates it, and prints its canonical value to stdout.
func (c *Cmd) Evaluate(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	el := &errs.List{}
	toks := scanner.ScanTokens(string(src), el)
	expr, perr := parser.ParseExpression(toks, el)
	if perr != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return staticPhaseError{}
	}

	locals, rerr := resolver.ResolveExpr(expr, el)
	if rerr != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return staticPhaseError{}
	}

	in := interpreter.New(stdio.Stdout)
	value, evalErr := in.EvaluateExpr(expr, locals)
	if evalErr != nil {
		printRuntimeError(stdio, evalErr)
		return runtimePhaseError{}
	}

	fmt.Fprintln(stdio.Stdout, interpreter.Stringify(value))
	return nil
}
