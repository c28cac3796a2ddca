// Package maincmd implements the command-line front end: argument parsing,
// subcommand dispatch, and translating the outcome of each phase
// (lexical/syntactic/semantic error vs. runtime error vs. success) into the
// exit codes and byte-exact error formatting the language's front end is
// required to produce. It is an external collaborator of the execution
// core: it feeds the core a source string and relays the core's output and
// errors, but holds none of the language's own semantics.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox language.

The <command> can be one of:
       tokenize                  Scan a file and print its token stream.
       parse                     Parse a file and report syntax errors,
                                 printing nothing on success.
       ast                       Parse a file and print its syntax tree.
       evaluate                  Parse <path> as a single expression
                                 (not a full program), evaluate it, and
                                 print its value.
       run                       Run a file as a full program.
       repl                      Start an interactive read-eval-print loop.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// exitCoder is implemented by errors that need to force a specific process
// exit code rather than the generic mainer.Failure; every phase error this
// package produces implements it.
type exitCoder interface {
	ExitCode() int
}

// staticPhaseError is returned by a command when the scanner, parser or
// resolver reported at least one error; it is never the transport for the
// error text itself (each phase already printed its own messages to
// stderr in the required format) — it exists only to force exit code 65.
type staticPhaseError struct{}

func (staticPhaseError) Error() string { return "static error" }
func (staticPhaseError) ExitCode() int { return 65 }

// runtimePhaseError forces exit code 70 after a runtime error has already
// been printed to stderr in the required format.
type runtimePhaseError struct{}

func (runtimePhaseError) Error() string { return "runtime error" }
func (runtimePhaseError) ExitCode() int { return 70 }

// Cmd is the mainer.Handler implementation for the lox binary: it holds
// the parsed flags and dispatches to one of the exported command methods
// below, found by reflection the same way regardless of which subcommands
// this binary happens to expose.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if cmdName != "repl" && len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a source path must be provided", cmdName)
	}
	return nil
}

// Main is the mainer.Handler entry point: it parses flags, dispatches to
// the resolved subcommand, and maps the result to a process exit code.
// Exit code 0 is success, 65 is a static (lexical/syntactic/semantic)
// error, 70 is a runtime error, matching the contract every subcommand
// that touches the core execution pipeline must honor.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		var ec exitCoder
		if errors.As(err, &ec) {
			return mainer.ExitCode(ec.ExitCode())
		}
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds finds every method of v whose signature matches a subcommand
// handler (context.Context, mainer.Stdio, []string) error and indexes it
// by its lower-cased method name, so that adding a new subcommand is just
// adding a new exported method — no registration list to keep in sync.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
