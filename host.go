package clasp

import (
	"go/constant"
	"go/token"
	"go/types"
)

// hostPrimitive evaluates a Go constant expression, like (host "1 << 10").
// Only constants are accepted, nothing outside of the interpreter can be
// reached through it. It's installed when Options.HostEval is set.
var hostPrimitive = &Primitive{Name: "host", Arity: 1, Fn: primHost}

func primHost(env *Env, args []*Value) (*Value, error) {
	if args[0].Type != ValueTypeString {
		return nil, hostErrorf("host: expects an expression, got %v", args[0].Type)
	}

	expr := args[0].Text()
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
	if err != nil {
		return nil, hostErrorf("host: %v", err)
	}
	if tv.Value == nil {
		return nil, hostErrorf("host: %q is not a constant expression", expr)
	}

	return constantValue(tv.Value)
}

func constantValue(c constant.Value) (*Value, error) {
	switch c.Kind() {
	case constant.Bool:
		return NewBoolValue(constant.BoolVal(c)), nil
	case constant.String:
		return NewStringValue(constant.StringVal(c)), nil
	case constant.Int:
		if i64, exact := constant.Int64Val(c); exact {
			return NewIntValue(i64), nil
		}
		f64, _ := constant.Float64Val(c)
		return NewFloatValue(f64), nil
	case constant.Float:
		f64, _ := constant.Float64Val(c)
		return NewFloatValue(f64), nil
	}
	return nil, hostErrorf("host: unsupported constant %v", c)
}
