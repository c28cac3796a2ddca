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

// Run scans, parses, resolves and interprets args[0] as a full program.
// Static errors (lexical, syntactic or semantic) are reported and exit 65
// before any code runs; a runtime error aborts execution and exits 70.
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return runSource(stdio, interpreter.New(stdio.Stdout), string(src))
}

// runSource is shared by Run and the REPL: it scans, parses, resolves and
// interprets src against the given interpreter (which the REPL reuses
// across turns so that the global environment persists).
func runSource(stdio mainer.Stdio, in *interpreter.Interpreter, src string) error {
	el := &errs.List{}
	toks := scanner.ScanTokens(src, el)
	stmts, perr := parser.Parse(toks, el)
	if perr != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return staticPhaseError{}
	}

	locals, rerr := resolver.Resolve(stmts, el)
	if rerr != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return staticPhaseError{}
	}

	if err := in.Interpret(stmts, locals); err != nil {
		printRuntimeError(stdio, err)
		return runtimePhaseError{}
	}
	return nil
}
