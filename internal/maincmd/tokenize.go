package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/scanner"
)

// Tokenize scans args[0] and prints one line per token to stdout. It never
// returns a runtime-phase error: lexical errors are static errors (exit 65).
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	el := &errs.List{}
	toks := scanner.ScanTokens(string(src), el)
	for _, tok := range toks {
		fmt.Fprintf(stdio.Stdout, "%s\n", tok)
	}

	if el.Err() != nil {
		el.Sort()
		el.Print(stdio.Stderr)
		return staticPhaseError{}
	}
	return nil
}
