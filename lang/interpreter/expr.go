package interpreter

import (
	"strconv"

	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return expr.Value, nil

	case *ast.Grouping:
		return in.evaluate(expr.Expression)

	case *ast.Unary:
		return in.evalUnary(expr)

	case *ast.Binary:
		return in.evalBinary(expr)

	case *ast.Logical:
		return in.evalLogical(expr)

	case *ast.Variable:
		return in.lookupVariable(expr.Name, expr)

	case *ast.Assign:
		value, err := in.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[expr]; ok {
			in.env.AssignAt(distance, expr.Name.Lexeme, value)
		} else if !in.Globals.Assign(expr.Name.Lexeme, value) {
			return nil, NewRuntimeError(expr.Name, "Undefined variable '"+expr.Name.Lexeme+"'.")
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(expr)

	case *ast.Get:
		return in.evalGet(expr)

	case *ast.Set:
		return in.evalSet(expr)

	case *ast.This:
		return in.lookupVariable(expr.Keyword, expr)

	case *ast.Super:
		return in.evalSuper(expr)

	default:
		panic("interpreter: unexpected expr type")
	}
}

// lookupVariable resolves name/expr using the recorded depth when present
// (the common case in a fully resolved program), falling back to the
// global environment for names the resolver left unannotated.
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (in *Interpreter) evalUnary(expr *ast.Unary) (Value, error) {
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	default:
		panic("interpreter: unexpected unary operator")
	}
}

func (in *Interpreter) evalLogical(expr *ast.Logical) (Value, error) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	if expr.Operator.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(expr.Right)
}

func (in *Interpreter) evalBinary(expr *ast.Binary) (Value, error) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.MINUS:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a - b })
	case token.SLASH:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a / b })
	case token.STAR:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a * b })
	case token.PLUS:
		return evalPlus(expr.Operator, left, right)
	case token.GREATER:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a > b })
	case token.GREATER_EQUAL:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a >= b })
	case token.LESS:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a < b })
	case token.LESS_EQUAL:
		return numberBinary(expr.Operator, left, right, func(a, b float64) Value { return a <= b })
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	default:
		panic("interpreter: unexpected binary operator")
	}
}

func numberBinary(op token.Token, left, right Value, f func(a, b float64) Value) (Value, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, NewRuntimeError(op, "Operands must be numbers.")
	}
	return f(l, r), nil
}

func evalPlus(op token.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) evalCall(expr *ast.Call) (Value, error) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, NewRuntimeError(expr.Paren, arityMessage(callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func arityMessage(expected, got int) string {
	return "Expected " + strconv.Itoa(expected) + " arguments but got " + strconv.Itoa(got) + "."
}

func (in *Interpreter) evalGet(expr *ast.Get) (Value, error) {
	object, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only class instances have properties callable by '.'.")
	}
	v, ok := instance.Get(expr.Name.Lexeme)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Undefined property '"+expr.Name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalSet(expr *ast.Set) (Value, error) {
	object, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only class instances have fields.")
	}
	value, err := in.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(expr *ast.Super) (Value, error) {
	distance := in.locals[expr]
	superclass, _ := in.env.GetAt(distance, "super").(*Class)

	// The synthetic 'this' scope is always the one immediately inside the
	// 'super' scope, so it sits exactly one hop closer than 'super' itself.
	instance, _ := in.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(expr.Method, "Undefined property '"+expr.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
