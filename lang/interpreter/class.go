package interpreter

import "github.com/dolthub/swiss"

// Class is a runtime class value. Calling it instantiates a new Instance;
// looking up a method walks the single-inheritance chain through
// Superclass.
type Class struct {
	Name       string
	Superclass *Class
	methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods}
}

func (c *Class) String() string { return "<class " + c.Name + ">" }

// FindMethod looks up name on this class, falling back to the superclass
// chain. It returns nil if no class in the chain declares the method.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of 'init', or 0 if the class declares no initializer.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: it allocates a fresh Instance and, if the
// class (or an ancestor) declares an 'init' method, runs it bound to the
// new instance before returning it.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a reference to the class that created it
// plus its own field storage, which shadows methods of the same name.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return "<instanceof " + i.class.Name + ">" }

// Get reads a property off the instance: a field, if one has been set,
// else a method bound to this instance. It reports ok=false if neither
// exists, which the interpreter turns into an undefined-property error.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if method := i.class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a field on the instance, creating it if absent. Fields are
// never resolved statically, so setting an unknown name is always allowed.
func (i *Instance) Set(name string, value Value) {
	i.fields.Put(name, value)
}
