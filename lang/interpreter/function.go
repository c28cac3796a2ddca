package interpreter

import "github.com/manurFR/lox/lang/ast"

// Function is a user-defined function or method: its declaration, the
// environment it closed over at the point it was declared, and whether it
// is a class's 'init' method, which makes 'return' with no value still
// yield the instance rather than nil.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

func (f *Function) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }

// Bind returns a copy of the method bound to instance: a new closure
// wrapping f's closure with 'this' defined, so that the method body can
// refer to the receiver without the resolver having had to know about
// instances.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

// Call executes the function body in a fresh environment nested under its
// closure, with parameters bound to the given arguments. A 'return'
// statement surfaces here as a returnSignal carried on error, which Call
// unwraps into a normal result.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// NativeFunction wraps a Go function as a callable value, for built-ins
// like clock that have no declaration or closure of their own.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, args []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }
func (n *NativeFunction) String() string {
	return "<fn " + n.name + " (native)>"
}
func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
