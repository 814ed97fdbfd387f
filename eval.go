package clasp

import (
	"fmt"
	"strings"

	"github.com/xiam/clasp/ast"
	"github.com/xiam/clasp/lexer"
)

type specialForm func(node *ast.Node, args []*ast.Node, env *Env) (*Value, error)

var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"def":    evalDef,
		"let":    evalLet,
		"set!":   evalSet,
		"if":     evalIf,
		"lambda": evalLambda,
		"=>":     evalLambda,
		"while":  evalWhile,
		"str":    evalStr,
	}
}

// Closure is a procedure defined by lambda. It keeps a reference to the
// environment it was created in.
type Closure struct {
	Params []string
	Body   *ast.Node
	Env    *Env
}

// Invoke binds args to the parameters in a new frame on top of the captured
// environment and evaluates the body there.
func (c *Closure) Invoke(args []*Value) (*Value, error) {
	if len(args) != len(c.Params) {
		return nil, arityErrorf("lambda", fmt.Sprintf("%d arguments", len(c.Params)), len(args))
	}
	frame := NewEnv(c.Env)
	for i := range c.Params {
		if err := frame.Define(c.Params[i], args[i]); err != nil {
			return nil, err
		}
	}
	return Eval(c.Body, frame)
}

// PrimitiveFunc implements a builtin procedure. env is the environment of
// the caller.
type PrimitiveFunc func(env *Env, args []*Value) (*Value, error)

// Primitive is a builtin procedure. Arity is the exact number of arguments,
// or the minimum when Variadic is set.
type Primitive struct {
	Name     string
	Arity    int
	Variadic bool
	Fn       PrimitiveFunc
}

// Invoke checks the number of arguments and calls the implementation.
func (p *Primitive) Invoke(env *Env, args []*Value) (*Value, error) {
	if p.Variadic {
		if len(args) < p.Arity {
			return nil, arityErrorf(p.Name, fmt.Sprintf("at least %d arguments", p.Arity), len(args))
		}
	} else if len(args) != p.Arity {
		return nil, arityErrorf(p.Name, fmt.Sprintf("%d arguments", p.Arity), len(args))
	}
	return p.Fn(env, args)
}

// Apply invokes a callable value with already evaluated arguments.
func Apply(fn *Value, args []*Value, env *Env) (*Value, error) {
	switch fn.Type {
	case ValueTypePrimitive:
		return fn.Primitive().Invoke(env, args)
	case ValueTypeClosure:
		return fn.Closure().Invoke(args)
	}
	return nil, fmt.Errorf("%w: %v", ErrNotCallable, fn)
}

// Eval evaluates a single expression against env.
func Eval(node *ast.Node, env *Env) (*Value, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		return NewIntValue(node.Value().(int64)), nil

	case ast.NodeTypeFloat:
		return NewFloatValue(node.Value().(float64)), nil

	case ast.NodeTypeString:
		return NewStringValue(unquote(node.Value().(string))), nil

	case ast.NodeTypeSymbol:
		name := node.Value().(string)
		switch name {
		case "True":
			return True, nil
		case "False":
			return False, nil
		}
		return env.Get(name)

	case ast.NodeTypeList:
		return evalCombination(node, env)
	}

	panic("unreachable")
}

// EvalProgram evaluates every top-level form of root in order and returns the
// value of the last one.
func EvalProgram(root *ast.Node, env *Env) (*Value, error) {
	if !root.IsVector() {
		return Eval(root, env)
	}
	result := Nil
	for _, form := range root.List() {
		value, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func malformed(node *ast.Node, format string, args ...interface{}) error {
	err := fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedForm}, args...)...)
	return lexer.NewSyntaxError(err, node.Token())
}

func evalCombination(node *ast.Node, env *Env) (*Value, error) {
	list := node.List()
	if len(list) == 0 {
		return nil, malformed(node, "empty combination")
	}

	op, args := list[0], list[1:]

	if name, ok := op.Symbol(); ok {
		if form, ok := specialForms[name]; ok {
			env.logger().Printf("eval: special form %q", name)
			return form(node, args, env)
		}
	}

	fn, err := Eval(op, env)
	if err != nil {
		return nil, err
	}
	if !fn.IsCallable() {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, ast.Encode(op))
	}

	values := make([]*Value, 0, len(args))
	for i := range args {
		value, err := Eval(args[i], env)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if logger := env.logger(); logger != discardLogger {
		logger.Printf("eval: apply %s to %d arguments", ast.Encode(op), len(values))
	}
	return Apply(fn, values, env)
}

func expectArity(node *ast.Node, name string, args []*ast.Node, n ...int) error {
	for i := range n {
		if len(args) == n[i] {
			return nil
		}
	}
	want := make([]string, 0, len(n))
	for i := range n {
		want = append(want, fmt.Sprintf("%d", n[i]))
	}
	return malformed(node, "%s expects %s operands, got %d", name, strings.Join(want, " or "), len(args))
}

func expectSymbol(node *ast.Node, form string, arg *ast.Node) (string, error) {
	name, ok := arg.Symbol()
	if !ok {
		return "", malformed(node, "%s expects a symbol, got %s", form, ast.Encode(arg))
	}
	return name, nil
}

func evalDef(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "def", args, 2); err != nil {
		return nil, err
	}
	name, err := expectSymbol(node, "def", args[0])
	if err != nil {
		return nil, err
	}
	if env.st.Has(name) {
		return nil, fmt.Errorf("%w: %s already defined", ErrRedefinition, name)
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Define(name, value); err != nil {
		return nil, err
	}
	return Nil, nil
}

func evalLet(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "let", args, 2); err != nil {
		return nil, err
	}
	bindings := args[0]
	if !bindings.IsVector() {
		return nil, malformed(node, "let expects a list of bindings, got %s", ast.Encode(bindings))
	}
	pairs := bindings.List()
	if len(pairs) == 1 && pairs[0].IsVector() {
		// (let ((n1 v1 n2 v2)) body)
		pairs = pairs[0].List()
	}
	if len(pairs)%2 != 0 {
		return nil, malformed(node, "let expects name and value pairs, got %d elements", len(pairs))
	}

	frame := NewEnv(env)
	for i := 0; i < len(pairs); i += 2 {
		name, err := expectSymbol(node, "let", pairs[i])
		if err != nil {
			return nil, err
		}
		if frame.st.Has(name) {
			return nil, fmt.Errorf("%w: %s already defined", ErrRedefinition, name)
		}
		value, err := Eval(pairs[i+1], frame)
		if err != nil {
			return nil, err
		}
		if err := frame.Define(name, value); err != nil {
			return nil, err
		}
	}

	return Eval(args[1], frame)
}

func evalSet(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "set!", args, 2); err != nil {
		return nil, err
	}
	name, err := expectSymbol(node, "set!", args[0])
	if err != nil {
		return nil, err
	}
	if _, ok := env.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %s not defined before set!", ErrRedefinition, name)
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, value); err != nil {
		return nil, err
	}
	return Nil, nil
}

func evalIf(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "if", args, 2, 3); err != nil {
		return nil, err
	}
	test, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if test.Truthy() {
		return Eval(args[1], env)
	}
	if len(args) == 3 {
		return Eval(args[2], env)
	}
	return Nil, nil
}

func evalLambda(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "lambda", args, 2); err != nil {
		return nil, err
	}
	if !args[0].IsVector() {
		return nil, malformed(node, "lambda expects a list of parameters, got %s", ast.Encode(args[0]))
	}

	params := make([]string, 0, args[0].Len())
	seen := map[string]bool{}
	for _, p := range args[0].List() {
		name, err := expectSymbol(node, "lambda", p)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: parameter %s already defined", ErrRedefinition, name)
		}
		seen[name] = true
		params = append(params, name)
	}

	return NewClosureValue(&Closure{
		Params: params,
		Body:   args[1],
		Env:    env,
	}), nil
}

func evalWhile(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	if err := expectArity(node, "while", args, 2); err != nil {
		return nil, err
	}
	for {
		cond, err := Eval(args[0], env)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return Nil, nil
		}
		if _, err := Eval(args[1], env); err != nil {
			return nil, err
		}
	}
}

func evalStr(node *ast.Node, args []*ast.Node, env *Env) (*Value, error) {
	var b strings.Builder
	for i := range args {
		value, err := Eval(args[i], env)
		if err != nil {
			return nil, err
		}
		if value.Type != ValueTypeString {
			return nil, hostErrorf("str expects strings, got %v", value)
		}
		b.WriteString(value.Text())
	}
	return NewStringValue(b.String()), nil
}
