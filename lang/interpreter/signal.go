package interpreter

import "github.com/manurFR/lox/lang/token"

// returnSignal, breakSignal and continueSignal are the non-local control
// flow mechanism for 'return', 'break' and 'continue'. They are carried as
// the error result of statement execution and unwound by the nearest
// enclosing construct that knows how to handle them (Call for return,
// the while-loop evaluator for break/continue), exactly like Go's own
// panic/recover is used one level up to escape a parse error. None of
// these ever reaches a caller as an actual error: executeBlock passes them
// through, and Function.Call, executeWhile and Interpret type-assert for
// them explicitly.
type returnSignal struct{ value Value }

func (returnSignal) Error() string { return "return outside of a function" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside of a loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside of a loop" }

// RuntimeError is a dynamic-type or dynamic-semantics violation detected
// while evaluating an expression or executing a statement: the wrong
// number of arguments to a call, a binary operator applied to
// incompatible types, an undefined property access, and so on. It carries
// the token nearest the failure so the front end can format
// "<message>\n[line N]" as required.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}
