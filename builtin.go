package clasp

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// builtins is installed into every root environment.
var builtins []*Primitive

func init() {
	builtins = []*Primitive{
		{Name: "+", Arity: 2, Fn: primAdd},
		{Name: "-", Arity: 2, Fn: numericOp("-",
			func(a, b int64) (*Value, error) {
				if r := a - b; (r < a) == (b > 0) {
					return NewIntValue(r), nil
				}
				return NewFloatValue(float64(a) - float64(b)), nil
			},
			func(a, b float64) (*Value, error) { return NewFloatValue(a - b), nil },
		)},
		{Name: "*", Arity: 2, Fn: numericOp("*",
			func(a, b int64) (*Value, error) {
				if r, ok := mulInt(a, b); ok {
					return NewIntValue(r), nil
				}
				return NewFloatValue(float64(a) * float64(b)), nil
			},
			func(a, b float64) (*Value, error) { return NewFloatValue(a * b), nil },
		)},
		{Name: "/", Arity: 2, Fn: numericOp("/",
			func(a, b int64) (*Value, error) { return divide(float64(a), float64(b)) },
			divide,
		)},
		{Name: "%", Arity: 2, Fn: numericOp("%",
			func(a, b int64) (*Value, error) {
				if b == 0 {
					return nil, hostErrorf("%%: division by zero")
				}
				// the result takes the sign of the divisor
				m := a % b
				if m != 0 && (m < 0) != (b < 0) {
					m += b
				}
				return NewIntValue(m), nil
			},
			func(a, b float64) (*Value, error) {
				if b == 0 {
					return nil, hostErrorf("%%: division by zero")
				}
				m := math.Mod(a, b)
				if m != 0 && (m < 0) != (b < 0) {
					m += b
				}
				return NewFloatValue(m), nil
			},
		)},
		{Name: ">", Arity: 2, Fn: comparison(">", func(c int) bool { return c > 0 })},
		{Name: "<", Arity: 2, Fn: comparison("<", func(c int) bool { return c < 0 })},
		{Name: ">=", Arity: 2, Fn: comparison(">=", func(c int) bool { return c >= 0 })},
		{Name: "<=", Arity: 2, Fn: comparison("<=", func(c int) bool { return c <= 0 })},
		{Name: "not", Arity: 1, Fn: primNot},
		{Name: "and", Arity: 2, Fn: primAnd},
		{Name: "or", Arity: 2, Fn: primOr},
		{Name: "begin", Arity: 1, Variadic: true, Fn: primBegin},
		{Name: "print", Arity: 0, Variadic: true, Fn: primPrint},
		{Name: "len", Arity: 1, Fn: primLen},
		{Name: "at", Arity: 2, Fn: primAt},
		{Name: "list", Arity: 0, Variadic: true, Fn: primList},
		{Name: "list?", Arity: 1, Fn: primIsList},
		{Name: "head", Arity: 1, Fn: primHead},
		{Name: "tail", Arity: 1, Fn: primTail},
		{Name: "cons", Arity: 2, Fn: primCons},
		{Name: "reduce", Arity: 2, Fn: primReduce},
		{Name: "eq?", Arity: 2, Fn: primEq},
		{Name: "procedure?", Arity: 1, Fn: primIsProcedure},
		{Name: "raise", Arity: 1, Fn: primRaise},
		{Name: "load", Arity: 1, Fn: primLoad},
	}
}

func primAdd(env *Env, args []*Value) (*Value, error) {
	a, b := args[0], args[1]
	switch {
	case a.Type == ValueTypeString && b.Type == ValueTypeString:
		return NewStringValue(a.Text() + b.Text()), nil
	case a.Type == ValueTypeList && b.Type == ValueTypeList:
		out := make([]*Value, 0, len(a.List())+len(b.List()))
		out = append(out, a.List()...)
		out = append(out, b.List()...)
		return NewListValue(out), nil
	}
	return numericOp("+",
		func(a, b int64) (*Value, error) {
			if r := a + b; (r > a) == (b > 0) {
				return NewIntValue(r), nil
			}
			return NewFloatValue(float64(a) + float64(b)), nil
		},
		func(a, b float64) (*Value, error) { return NewFloatValue(a + b), nil },
	)(env, args)
}

// mulInt reports false when a*b doesn't fit in an int64.
func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return r, true
}

func divide(a, b float64) (*Value, error) {
	if b == 0 {
		return nil, hostErrorf("/: division by zero")
	}
	return NewFloatValue(a / b), nil
}

// numericOp applies ints when both operands are integers and floats
// otherwise. Integer results that overflow are promoted to float, like
// integer literals that don't fit in an int64.
func numericOp(name string, ints func(a, b int64) (*Value, error), floats func(a, b float64) (*Value, error)) PrimitiveFunc {
	return func(env *Env, args []*Value) (*Value, error) {
		a, b := args[0], args[1]
		if !a.IsNumber() || !b.IsNumber() {
			return nil, hostErrorf("%s: unsupported operand types %v and %v", name, a.Type, b.Type)
		}
		if a.Type == ValueTypeInt && b.Type == ValueTypeInt {
			return ints(a.Int(), b.Int())
		}
		return floats(toFloat(a), toFloat(b))
	}
}

func compare(a, b *Value) (int, bool) {
	switch {
	case a.Type == ValueTypeInt && b.Type == ValueTypeInt:
		x, y := a.Int(), b.Int()
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case a.IsNumber() && b.IsNumber():
		x, y := toFloat(a), toFloat(b)
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case a.Type == ValueTypeString && b.Type == ValueTypeString:
		return strings.Compare(a.Text(), b.Text()), true
	}
	return 0, false
}

func comparison(name string, fn func(c int) bool) PrimitiveFunc {
	return func(env *Env, args []*Value) (*Value, error) {
		c, ok := compare(args[0], args[1])
		if !ok {
			return nil, hostErrorf("%s: can't compare %v and %v", name, args[0].Type, args[1].Type)
		}
		return NewBoolValue(fn(c)), nil
	}
}

func primNot(env *Env, args []*Value) (*Value, error) {
	return NewBoolValue(!args[0].Truthy()), nil
}

func primAnd(env *Env, args []*Value) (*Value, error) {
	if !args[0].Truthy() {
		return args[0], nil
	}
	return args[1], nil
}

func primOr(env *Env, args []*Value) (*Value, error) {
	if args[0].Truthy() {
		return args[0], nil
	}
	return args[1], nil
}

func primBegin(env *Env, args []*Value) (*Value, error) {
	return args[len(args)-1], nil
}

func primPrint(env *Env, args []*Value) (*Value, error) {
	values := make([]string, 0, len(args))
	for i := range args {
		values = append(values, args[i].Display())
	}
	if _, err := fmt.Fprintln(env.opts.Stdout, strings.Join(values, " ")); err != nil {
		return nil, hostErrorf("print: %v", err)
	}
	return Nil, nil
}

func primLen(env *Env, args []*Value) (*Value, error) {
	switch v := args[0]; v.Type {
	case ValueTypeList:
		return NewIntValue(int64(len(v.List()))), nil
	case ValueTypeString:
		return NewIntValue(int64(utf8.RuneCountInString(v.Text()))), nil
	}
	return nil, hostErrorf("len: unsupported type %v", args[0].Type)
}

// index resolves i against a sequence of length n, negative values count
// from the end.
func index(name string, i *Value, n int) (int, error) {
	if i.Type != ValueTypeInt {
		return 0, hostErrorf("%s: index must be int, got %v", name, i.Type)
	}
	idx := i.Int()
	if idx < 0 {
		idx += int64(n)
	}
	if idx < 0 || idx >= int64(n) {
		return 0, hostErrorf("%s: index %d out of range", name, i.Int())
	}
	return int(idx), nil
}

func primAt(env *Env, args []*Value) (*Value, error) {
	switch v := args[0]; v.Type {
	case ValueTypeList:
		idx, err := index("at", args[1], len(v.List()))
		if err != nil {
			return nil, err
		}
		return v.List()[idx], nil
	case ValueTypeString:
		runes := []rune(v.Text())
		idx, err := index("at", args[1], len(runes))
		if err != nil {
			return nil, err
		}
		return NewStringValue(string(runes[idx])), nil
	}
	return nil, hostErrorf("at: unsupported type %v", args[0].Type)
}

func primList(env *Env, args []*Value) (*Value, error) {
	out := make([]*Value, len(args))
	copy(out, args)
	return NewListValue(out), nil
}

func primIsList(env *Env, args []*Value) (*Value, error) {
	return NewBoolValue(args[0].Type == ValueTypeList), nil
}

func expectList(name string, v *Value) ([]*Value, error) {
	if v.Type != ValueTypeList {
		return nil, hostErrorf("%s: expects a list, got %v", name, v.Type)
	}
	return v.List(), nil
}

func primHead(env *Env, args []*Value) (*Value, error) {
	list, err := expectList("head", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, hostErrorf("head: empty list")
	}
	return list[0], nil
}

func primTail(env *Env, args []*Value) (*Value, error) {
	list, err := expectList("tail", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return NewListValue([]*Value{}), nil
	}
	out := make([]*Value, len(list)-1)
	copy(out, list[1:])
	return NewListValue(out), nil
}

func primCons(env *Env, args []*Value) (*Value, error) {
	list, err := expectList("cons", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, 0, len(list)+1)
	out = append(out, args[0])
	out = append(out, list...)
	return NewListValue(out), nil
}

func primReduce(env *Env, args []*Value) (*Value, error) {
	list, err := expectList("reduce", args[0])
	if err != nil {
		return nil, err
	}
	fn := args[1]
	if !fn.IsCallable() {
		return nil, fmt.Errorf("%w: %v", ErrNotCallable, fn)
	}
	if len(list) == 0 {
		return nil, hostErrorf("reduce: empty list with no initial value")
	}
	acc := list[0]
	for _, item := range list[1:] {
		acc, err = Apply(fn, []*Value{acc, item}, env)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func primEq(env *Env, args []*Value) (*Value, error) {
	return NewBoolValue(Equal(args[0], args[1])), nil
}

func primIsProcedure(env *Env, args []*Value) (*Value, error) {
	return NewBoolValue(args[0].IsCallable()), nil
}

func primRaise(env *Env, args []*Value) (*Value, error) {
	return nil, &RaiseError{Message: args[0].Display()}
}

// primLoad runs a file against a root environment of its own: nothing it
// defines is visible to the caller.
func primLoad(env *Env, args []*Value) (*Value, error) {
	if args[0].Type != ValueTypeString {
		return nil, hostErrorf("load: expects a file name, got %v", args[0].Type)
	}
	path := args[0].Text()
	if _, err := RunFile(path, env.Options()); err != nil {
		return nil, err
	}
	env.logger().Printf("load: file %s executed", path)
	return Nil, nil
}
