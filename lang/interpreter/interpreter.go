// Package interpreter implements the tree-walking evaluator: the
// environment chain, the function/class/instance runtime model, and the
// recursive AST walk that gives programs their meaning. It consumes the
// depth map produced by the resolver package and never re-derives scoping
// information on its own.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/resolver"
	"github.com/manurFR/lox/lang/token"
)

// Interpreter walks a resolved program. Stdout receives the output of
// 'print' statements and is the only I/O the language performs besides the
// native clock function.
type Interpreter struct {
	Globals *Environment
	Stdout  io.Writer

	env    *Environment
	locals resolver.Locals
}

// New builds an interpreter with a fresh global environment seeded with
// the native bindings every program starts with.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", NewNativeFunction("clock", 0, func(*Interpreter, []Value) (Value, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
	return &Interpreter{Globals: globals, Stdout: stdout, env: globals}
}

// Interpret executes a resolved program's statements in order against the
// interpreter's current environment (the global environment on a fresh
// Interpreter, or the environment left over from a prior REPL turn). It
// returns the first RuntimeError encountered, if any; a 'return', 'break'
// or 'continue' signal escaping to this level is a resolver bug, not a
// user-facing error, and is reported as such rather than silently ignored.
// Depths recorded by earlier calls are kept alongside the new ones, so a
// function declared in a prior REPL turn still finds its locals.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	if in.locals == nil {
		in.locals = make(resolver.Locals, len(locals))
	}
	for expr, depth := range locals {
		in.locals[expr] = depth
	}
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			switch err.(type) {
			case returnSignal, breakSignal, continueSignal:
				return fmt.Errorf("internal error: unhandled control-flow signal escaped to top level: %w", err)
			default:
				return err
			}
		}
	}
	return nil
}

// EvaluateExpr evaluates a single bare expression against the
// interpreter's current environment, used by the 'evaluate' front-end
// command which operates on an expression rather than a full program.
func (in *Interpreter) EvaluateExpr(expr ast.Expr, locals resolver.Locals) (Value, error) {
	in.locals = locals
	return in.evaluate(expr)
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(stmt.Expression)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(stmt.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, Stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if stmt.Initializer != nil {
			v, err := in.evaluate(stmt.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(stmt.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(stmt.Statements, NewChildEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execute(stmt.ThenBranch)
		}
		if stmt.ElseBranch != nil {
			return in.execute(stmt.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		return in.executeWhile(stmt)

	case *ast.AbortLoopStmt:
		if stmt.Keyword.Kind == token.BREAK {
			return breakSignal{}
		}
		return continueSignal{}

	case *ast.FunctionStmt:
		fn := NewFunction(stmt, in.env, false)
		in.env.Define(stmt.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if stmt.Value != nil {
			v, err := in.evaluate(stmt.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.ClassStmt:
		return in.executeClass(stmt)

	default:
		panic("interpreter: unexpected stmt type")
	}
}

// executeBlock runs stmts against env, always restoring the interpreter's
// previous environment on the way out, including when a control-flow
// signal or runtime error is propagating.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeWhile(stmt *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}

		err = in.execute(stmt.Body)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return nil
			case continueSignal:
				// fall through to increment below
			default:
				return err
			}
		}

		if stmt.Increment != nil {
			if err := in.execute(stmt.Increment); err != nil {
				return err
			}
		}
	}
}

func (in *Interpreter) executeClass(stmt *ast.ClassStmt) error {
	var superclass *Class
	if stmt.Superclass != nil {
		v, err := in.evaluate(stmt.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(stmt.Name.Lexeme, nil)

	classEnv := in.env
	if superclass != nil {
		classEnv = NewChildEnvironment(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, method := range stmt.Methods {
		methods[method.Name.Lexeme] = NewFunction(method, classEnv, method.Name.Lexeme == "init")
	}

	class := NewClass(stmt.Name.Lexeme, superclass, methods)
	in.env.Assign(stmt.Name.Lexeme, class)
	return nil
}
