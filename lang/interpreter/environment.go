package interpreter

import "github.com/dolthub/swiss"

// Environment is one frame of the lexical scope chain: the global
// environment, a function call's local frame, or a block's inner scope.
// Bindings are stored in a Swiss-table hash map, the same structure the
// language's class instances use for their fields, rather than a plain Go
// map: both are write-heavy, short-lived, small-to-medium maps keyed by
// identifier, which is exactly Swiss tables' sweet spot.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment creates a top-level environment with no enclosing scope,
// used once for the program's globals.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChildEnvironment creates a new scope nested inside enclosing, used for
// block bodies, function calls and method calls.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, overwriting any existing
// binding of the same name in this same scope. Re-declaring a name in the
// same scope is a resolver-time error except at global scope, where it is
// allowed and simply rebinds.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name starting at this environment and walking outward
// through enclosing scopes. It is only used for globals and other
// references the resolver could not statically bind (there are none in a
// fully resolved program other than true global lookups).
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values.Get(name); ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign walks outward from this environment looking for an existing
// binding of name to overwrite. It reports false if no such binding exists
// anywhere in the chain, which the interpreter turns into an undefined
// variable runtime error.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// Ancestor walks exactly distance scopes outward. The resolver guarantees
// that a binding resolved to some distance always has that many enclosing
// scopes at run time, so this never needs to check for a nil enclosing.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment exactly distance scopes out, as
// determined by the resolver. This is the fast path used for every local
// variable, 'this' and 'super' reference in a fully resolved program.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.Ancestor(distance).values.Get(name)
	return v
}

// AssignAt writes value to name in the environment exactly distance scopes
// out, as determined by the resolver.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.Ancestor(distance).values.Put(name, value)
}
