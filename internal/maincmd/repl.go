package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/manurFR/lox/lang/interpreter"
)

// Repl starts an interactive read-eval-print loop: each line is run as its
// own program against a single interpreter whose global environment
// persists across turns. A runtime error is reported but does not end the
// session; a blank line or end of input does.
func (c *Cmd) Repl(_ context.Context, stdio mainer.Stdio, _ []string) error {
	in := interpreter.New(stdio.Stdout)
	scanner := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "" {
			return nil
		}

		// Errors at this level are reported to stderr by runSource already;
		// the REPL only cares that the prompt keeps coming back afterward.
		_ = runSource(stdio, in, line)
	}
}
