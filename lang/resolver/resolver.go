// Package resolver implements the static semantic pass that runs between
// parsing and evaluation. For every variable, 'this' and 'super' reference
// in the program it records the number of enclosing lexical scopes to cross
// to reach the scope that declares the name -- its "depth" -- so that the
// interpreter never has to walk the environment chain to resolve a name at
// run time. It also enforces the language's static rules: no duplicate
// declaration in a local scope, no 'return'/'break'/'continue' out of
// place, no 'this'/'super' outside class context, no self-inheritance.
//
// This is a single pass with no side effects of its own: resolving a print
// statement does not print anything, and resolving a while loop visits its
// body exactly once regardless of how many times it would actually run.
package resolver

import (
	"strconv"

	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/token"
)

// FunctionKind tracks what kind of function body is currently being
// resolved, to validate 'return' and the initializer-return restriction.
type FunctionKind int

const (
	FKNone FunctionKind = iota
	FKFunction
	FKMethod
	FKInitializer
)

// ClassKind tracks whether the current scope is inside a class body, and
// whether that class has a superclass, to validate 'this' and 'super'.
type ClassKind int

const (
	CKNone ClassKind = iota
	CKClass
	CKSubclass
)

// LoopKind tracks whether the current scope is inside a loop body, to
// validate 'break' and 'continue'.
type LoopKind int

const (
	LKNone LoopKind = iota
	LKLoop
)

// bindState is the two-phase state of a name within a scope: declared means
// the name exists but its initializer hasn't finished resolving yet (so
// referencing it is an error, catching `var a = a;`); defined means it is
// fully usable.
type bindState int

const (
	declared bindState = iota
	defined
)

// Locals is the resolve map produced by Resolve: the association from an
// expression's identity (its pointer, since two syntactically identical
// expressions at different source sites are always distinct objects) to the
// number of scopes to cross to reach its binding. An expression absent from
// Locals is either not a variable/this/super reference, or one that resolves
// to the global environment.
type Locals map[ast.Expr]int

// Resolve runs the static pass over a parsed program and returns the
// resulting Locals map. Errors are accumulated into el rather than aborting
// the pass, so that the front end can report every static error found
// before deciding to exit; the returned error, if non-nil, is el itself.
func Resolve(stmts []ast.Stmt, el *errs.List) (Locals, error) {
	r := &resolver{locals: make(Locals), errs: el}
	r.resolveStmts(stmts)
	return r.locals, el.Err()
}

// ResolveExpr runs the static pass over a single bare expression, used by
// the 'evaluate' front-end command which operates outside the context of
// a full program. A bare expression can still reference 'this' or 'super'
// incorrectly, so the same validation applies; it just never sees a
// Function, Class or loop construct to push scopes for.
func ResolveExpr(expr ast.Expr, el *errs.List) (Locals, error) {
	r := &resolver{locals: make(Locals), errs: el}
	r.resolveExpr(expr)
	return r.locals, el.Err()
}

type resolver struct {
	scopes          []map[string]bindState
	locals          Locals
	currentFunction FunctionKind
	currentClass    ClassKind
	currentLoop     LoopKind
	errs            *errs.List
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bindState)) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) innermost() map[string]bindState {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare introduces name into the current local scope in the "declared"
// state. At the global scope (no open scopes) this is a deliberate no-op:
// duplicate top-level declarations are allowed, only local shadowing within
// the same block is rejected.
func (r *resolver) declare(name token.Token) {
	scope := r.innermost()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.errorf(name, "A variable with the same name is already present in the same scope.")
	}
	scope[name.Lexeme] = declared
}

func (r *resolver) define(name token.Token) {
	scope := r.innermost()
	if scope == nil {
		return
	}
	scope[name.Lexeme] = defined
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name. If found, it records the crossing distance in Locals; if not
// found in any local scope, it records nothing, which the interpreter
// interprets as "look it up in the global environment".
func (r *resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) errorf(tok token.Token, message string) {
	r.errs.Add(tok.Line, "[line "+strconv.Itoa(tok.Line)+"] Error at '"+tok.Lexeme+"': "+message)
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(stmt.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(stmt.Name)
		if stmt.Initializer != nil {
			r.resolveExpr(stmt.Initializer)
		}
		r.define(stmt.Name)

	case *ast.FunctionStmt:
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, FKFunction)

	case *ast.ClassStmt:
		enclosingClass := r.currentClass
		r.currentClass = CKClass

		r.declare(stmt.Name)
		r.define(stmt.Name)

		if stmt.Superclass != nil {
			if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
				r.errorf(stmt.Superclass.Name, "A class can't inherit from itself.")
			}
			r.currentClass = CKSubclass
			r.resolveExpr(stmt.Superclass)

			r.beginScope()
			r.innermost()["super"] = defined
		}

		r.beginScope()
		r.innermost()["this"] = defined
		for _, method := range stmt.Methods {
			kind := FKMethod
			if method.Name.Lexeme == "init" {
				kind = FKInitializer
			}
			r.resolveFunction(method, kind)
		}
		r.endScope()

		if stmt.Superclass != nil {
			r.endScope()
		}

		r.currentClass = enclosingClass

	case *ast.ExpressionStmt:
		r.resolveExpr(stmt.Expression)

	case *ast.IfStmt:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.ThenBranch)
		if stmt.ElseBranch != nil {
			r.resolveStmt(stmt.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(stmt.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == FKNone {
			r.errorf(stmt.Keyword, "Can't use 'return' in top-level code.")
		}
		if stmt.Value != nil {
			if r.currentFunction == FKInitializer {
				r.errorf(stmt.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(stmt.Value)
		}

	case *ast.WhileStmt:
		enclosingLoop := r.currentLoop
		r.currentLoop = LKLoop
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Body)
		if stmt.Increment != nil {
			r.resolveStmt(stmt.Increment)
		}
		r.currentLoop = enclosingLoop

	case *ast.AbortLoopStmt:
		if r.currentLoop != LKLoop {
			r.errorf(stmt.Keyword, "Can't use '"+stmt.Keyword.Lexeme+"' outside of a loop.")
		}

	default:
		panic("resolver: unexpected stmt type")
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind FunctionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	enclosingLoop := r.currentLoop
	r.currentLoop = LKNone

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
	r.currentLoop = enclosingLoop
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.Variable:
		if scope := r.innermost(); scope != nil {
			if state, ok := scope[expr.Name.Lexeme]; ok && state == declared {
				r.errorf(expr.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(expr, expr.Name)

	case *ast.Assign:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr, expr.Name)

	case *ast.Binary:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Logical:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Call:
		r.resolveExpr(expr.Callee)
		for _, arg := range expr.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(expr.Object)

	case *ast.Set:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Object)

	case *ast.Super:
		switch r.currentClass {
		case CKNone:
			r.errorf(expr.Keyword, "Can't use 'super' outside of a class.")
		case CKClass:
			r.errorf(expr.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(expr, expr.Keyword)

	case *ast.This:
		if r.currentClass == CKNone {
			r.errorf(expr.Keyword, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(expr, expr.Keyword)

	case *ast.Grouping:
		r.resolveExpr(expr.Expression)

	case *ast.Literal:
		// no variables or sub-expressions inside a literal

	case *ast.Unary:
		r.resolveExpr(expr.Right)

	default:
		panic("resolver: unexpected expr type")
	}
}
