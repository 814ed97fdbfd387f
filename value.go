package clasp

import (
	"fmt"
	"strings"

	"github.com/xiam/clasp/ast"
)

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeFloat
	ValueTypeString
	ValueTypeBool
	ValueTypeList
	ValueTypeClosure
	ValueTypePrimitive
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:       "nil",
	ValueTypeInt:       "int",
	ValueTypeFloat:     "float",
	ValueTypeString:    "string",
	ValueTypeBool:      "bool",
	ValueTypeList:      "list",
	ValueTypeClosure:   "closure",
	ValueTypePrimitive: "primitive",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression.
type Value struct {
	v interface{}

	Type ValueType
}

var (
	// Nil is the absence of a value, returned by statements like def or
	// while.
	Nil   = &Value{Type: ValueTypeNil}
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

func NewFloatValue(v float64) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

func NewListValue(v []*Value) *Value {
	return &Value{v: v, Type: ValueTypeList}
}

func NewClosureValue(v *Closure) *Value {
	return &Value{v: v, Type: ValueTypeClosure}
}

func NewPrimitiveValue(v *Primitive) *Value {
	return &Value{v: v, Type: ValueTypePrimitive}
}

// NewValue converts a Go value into a Value.
func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case *Value:
		return v, nil
	case string:
		return NewStringValue(v), nil
	case int:
		return NewIntValue(int64(v)), nil
	case int64:
		return NewIntValue(v), nil
	case float64:
		return NewFloatValue(v), nil
	case bool:
		return NewBoolValue(v), nil
	case []*Value:
		return NewListValue(v), nil
	case *Closure:
		return NewClosureValue(v), nil
	case *Primitive:
		return NewPrimitiveValue(v), nil
	}
	return Nil, fmt.Errorf("invalid value %v", value)
}

// String returns the printed representation of the value, strings within
// are quoted.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "nil"
	case ValueTypeBool:
		if v.v.(bool) {
			return "True"
		}
		return "False"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.v.(int64))
	case ValueTypeFloat:
		return ast.FormatFloat(v.v.(float64))
	case ValueTypeString:
		return fmt.Sprintf("%q", v.v.(string))
	case ValueTypeList:
		vv := v.v.([]*Value)
		values := []string{}
		for i := range vv {
			values = append(values, vv[i].String())
		}
		return "(" + strings.Join(values, " ") + ")"
	case ValueTypeClosure:
		return fmt.Sprintf("<lambda (%s)>", strings.Join(v.v.(*Closure).Params, " "))
	case ValueTypePrimitive:
		return fmt.Sprintf("<primitive %s>", v.v.(*Primitive).Name)
	}
	return fmt.Sprintf("%v", v.v)
}

// Display returns the text print writes for the value: like String, but a
// top-level string is written without quotes.
func (v Value) Display() string {
	if v.Type == ValueTypeString {
		return v.v.(string)
	}
	return v.String()
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Float64() float64 {
	return v.v.(float64)
}

func (v Value) Text() string {
	return v.v.(string)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) List() []*Value {
	return v.v.([]*Value)
}

func (v Value) Closure() *Closure {
	return v.v.(*Closure)
}

func (v Value) Primitive() *Primitive {
	return v.v.(*Primitive)
}

// Raw returns the underlying Go value.
func (v Value) Raw() interface{} {
	if v.Type == ValueTypeList {
		vv := v.List()
		out := make([]interface{}, 0, len(vv))
		for i := range vv {
			out = append(out, vv[i].Raw())
		}
		return out
	}
	return v.v
}

func (v *Value) IsNumber() bool {
	return v.Type == ValueTypeInt || v.Type == ValueTypeFloat
}

func (v *Value) IsCallable() bool {
	return v.Type == ValueTypeClosure || v.Type == ValueTypePrimitive
}

// Truthy reports whether the value counts as true in a condition. False,
// nil, zero numbers, the empty string and the empty list are false.
func (v *Value) Truthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeBool:
		return v.Bool()
	case ValueTypeInt:
		return v.Int() != 0
	case ValueTypeFloat:
		return v.Float64() != 0
	case ValueTypeString:
		return v.Text() != ""
	case ValueTypeList:
		return len(v.List()) > 0
	}
	return true
}

// Equal compares two values structurally. Integers and floats compare by
// numeric value, callables by identity.
func Equal(a, b *Value) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.Type == ValueTypeInt && b.Type == ValueTypeInt {
			return a.Int() == b.Int()
		}
		return toFloat(a) == toFloat(b)
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ValueTypeNil:
		return true
	case ValueTypeBool:
		return a.Bool() == b.Bool()
	case ValueTypeString:
		return a.Text() == b.Text()
	case ValueTypeList:
		al, bl := a.List(), b.List()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	case ValueTypeClosure:
		return a.Closure() == b.Closure()
	case ValueTypePrimitive:
		return a.Primitive() == b.Primitive()
	}
	return false
}

func toFloat(v *Value) float64 {
	if v.Type == ValueTypeInt {
		return float64(v.Int())
	}
	return v.Float64()
}
