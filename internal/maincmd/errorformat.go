package maincmd

import (
	"errors"
	"fmt"

	"github.com/mna/mainer"
	"github.com/manurFR/lox/lang/interpreter"
)

// printRuntimeError writes a runtime error to stderr in the mandated
// "<message>\n[line N]" form. Every runtime error reaching the front end
// is a *interpreter.RuntimeError; anything else is a bug in the core and
// is reported as-is rather than swallowed.
func printRuntimeError(stdio mainer.Stdio, err error) {
	var rerr *interpreter.RuntimeError
	if errors.As(err, &rerr) {
		fmt.Fprintf(stdio.Stderr, "%s\n[line %d]\n", rerr.Message, rerr.Token.Line)
		return
	}
	fmt.Fprintln(stdio.Stderr, err)
}
