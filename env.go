package clasp

import (
	"fmt"
	"log"
)

// Env is a chain of binding frames. Frames are shared: every closure or call
// frame created within an Env holds a reference to it, not a copy.
type Env struct {
	parent *Env
	st     *symbolTable

	// opts is shared by every frame that descends from the same root.
	opts *Options
}

// NewEnv creates an empty frame on top of parent. A nil parent creates an
// empty root, without builtins.
func NewEnv(parent *Env) *Env {
	env := &Env{
		parent: parent,
		st:     newSymbolTable(),
	}
	if parent != nil {
		env.opts = parent.opts
	} else {
		opts := Options{}.withDefaults()
		env.opts = &opts
	}
	return env
}

// NewRootEnv creates a root environment holding every builtin procedure.
func NewRootEnv(opts Options) *Env {
	env := NewEnv(nil)
	for _, p := range builtins {
		env.st.Set(p.Name, NewPrimitiveValue(p))
	}
	env.SetOptions(opts)
	return env
}

// Parent returns the enclosing environment, nil for a root.
func (env *Env) Parent() *Env {
	return env.parent
}

func (env *Env) root() *Env {
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Options returns the options shared by every frame of this environment.
func (env *Env) Options() Options {
	return *env.opts
}

// SetOptions replaces the options of the environment and of every frame
// that shares its root.
func (env *Env) SetOptions(opts Options) {
	*env.opts = opts.withDefaults()

	root := env.root()
	if opts.HostEval {
		if !root.st.Has(hostPrimitive.Name) {
			root.st.Set(hostPrimitive.Name, NewPrimitiveValue(hostPrimitive))
		}
		return
	}
	if v, ok := root.st.Get(hostPrimitive.Name); ok && v.Type == ValueTypePrimitive && v.Primitive() == hostPrimitive {
		root.st.Delete(hostPrimitive.Name)
	}
}

func (env *Env) logger() *log.Logger {
	return env.opts.Logger
}

// Define binds name in the current frame. It fails if the frame already
// holds name.
func (env *Env) Define(name string, value *Value) error {
	if env.st.Has(name) {
		return fmt.Errorf("%w: %s already defined", ErrRedefinition, name)
	}
	env.st.Set(name, value)
	return nil
}

// Set overwrites name in the nearest frame that holds it.
func (env *Env) Set(name string, value *Value) error {
	for e := env; e != nil; e = e.parent {
		if e.st.Has(name) {
			e.st.Set(name, value)
			return nil
		}
	}
	return fmt.Errorf("%w: %s not defined before set!", ErrRedefinition, name)
}

// Lookup returns the value bound to name in the nearest frame that holds it.
func (env *Env) Lookup(name string) (*Value, bool) {
	for e := env; e != nil; e = e.parent {
		if value, ok := e.st.Get(name); ok {
			return value, true
		}
	}
	return nil, false
}

// Get is like Lookup, but fails when name is unbound.
func (env *Env) Get(name string) (*Value, error) {
	value, ok := env.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundVariable, name)
	}
	return value, nil
}

func (env *Env) String() string {
	depth := 0
	for e := env.parent; e != nil; e = e.parent {
		depth++
	}
	return fmt.Sprintf("[env depth=%d names=%d] (%p)", depth, env.st.Len(), env)
}
