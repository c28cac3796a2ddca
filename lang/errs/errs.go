// Package errs implements the error accumulator shared by the scanner,
// parser and resolver phases of the pipeline. It plays the same role as
// go/scanner.ErrorList in the standard library (and in the scanner package
// this project is descended from): errors are appended as they are found so
// that the front end can report as many of them as possible in one pass,
// then decide on an exit code once reporting is done.
//
// The message format it carries is the one mandated for this language's
// front end ("[line N] Error at 'lexeme': message"), so unlike
// go/scanner.ErrorList it cannot simply reuse the standard library's
// Error.Error rendering; callers build the final message text before
// calling Add.
package errs

import (
	"io"
	"sort"
	"strings"
)

// StaticError is a single reported lexical, syntactic or semantic error.
type StaticError struct {
	Line int
	Msg  string
}

func (e *StaticError) Error() string { return e.Msg }

// List accumulates StaticErrors across a scan/parse/resolve pipeline. The
// zero value is ready to use. A List is never shared across REPL turns: each
// turn gets its own, so that errors from a failed line don't leak into the
// next one.
type List struct {
	errors []*StaticError
}

// Add appends a new error to the list.
func (l *List) Add(line int, msg string) {
	l.errors = append(l.errors, &StaticError{Line: line, Msg: msg})
}

// Len reports how many errors have been accumulated.
func (l *List) Len() int { return len(l.errors) }

// Sort orders the errors by line number, stably, so that errors are reported
// in source order regardless of which phase or sub-pass produced them.
func (l *List) Sort() {
	sort.SliceStable(l.errors, func(i, j int) bool { return l.errors[i].Line < l.errors[j].Line })
}

// Errors returns the accumulated errors in their current order.
func (l *List) Errors() []*StaticError { return l.errors }

// Err returns the list itself as an error if it contains at least one
// element, else nil. This mirrors go/scanner.ErrorList.Err.
func (l *List) Err() error {
	if len(l.errors) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	switch len(l.errors) {
	case 0:
		return "no errors"
	case 1:
		return l.errors[0].Msg
	default:
		return l.errors[0].Msg + strings.Repeat("\n", 1) + "..."
	}
}

// Print writes each error's already-formatted message to w, one per line.
func (l *List) Print(w io.Writer) {
	for _, e := range l.errors {
		io.WriteString(w, e.Msg)
		io.WriteString(w, "\n")
	}
}
