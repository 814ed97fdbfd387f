package clasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	testCases := []struct {
		In   interface{}
		Type ValueType
		Out  string
	}{
		{nil, ValueTypeNil, `nil`},
		{"abc", ValueTypeString, `"abc"`},
		{3, ValueTypeInt, `3`},
		{int64(-3), ValueTypeInt, `-3`},
		{7.0, ValueTypeFloat, `7.0`},
		{true, ValueTypeBool, `True`},
		{[]*Value{NewIntValue(1), NewStringValue("x")}, ValueTypeList, `(1 "x")`},
	}

	for i := range testCases {
		value, err := NewValue(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Type, value.Type)
		assert.Equal(t, testCases[i].Out, value.String())
	}

	_, err := NewValue(struct{}{})
	assert.Error(t, err)
}

func TestValueDisplay(t *testing.T) {
	assert.Equal(t, "abc", NewStringValue("abc").Display())
	assert.Equal(t, `("abc")`, NewListValue([]*Value{NewStringValue("abc")}).Display())
	assert.Equal(t, "1.5", NewFloatValue(1.5).Display())
}

func TestValueTruthy(t *testing.T) {
	falsy := []*Value{
		Nil,
		False,
		NewIntValue(0),
		NewFloatValue(0),
		NewStringValue(""),
		NewListValue(nil),
	}
	for i := range falsy {
		assert.False(t, falsy[i].Truthy(), falsy[i].String())
	}

	truthy := []*Value{
		True,
		NewIntValue(-1),
		NewFloatValue(0.1),
		NewStringValue("False"),
		NewListValue([]*Value{Nil}),
		NewPrimitiveValue(&Primitive{Name: "noop"}),
		NewClosureValue(&Closure{}),
	}
	for i := range truthy {
		assert.True(t, truthy[i].Truthy(), truthy[i].String())
	}
}

func TestValueEqual(t *testing.T) {
	c := &Closure{}

	assert.True(t, Equal(NewIntValue(2), NewFloatValue(2)))
	assert.True(t, Equal(Nil, Nil))
	assert.True(t, Equal(NewClosureValue(c), NewClosureValue(c)))
	assert.False(t, Equal(NewClosureValue(c), NewClosureValue(&Closure{})))
	assert.False(t, Equal(True, NewIntValue(1)))
	assert.False(t, Equal(NewStringValue("1"), NewIntValue(1)))
}

func TestValueRaw(t *testing.T) {
	value, err := runString(`(list 1 2.5 "a" (list True))`)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{int64(1), 2.5, "a", []interface{}{true}}, value.Raw())
}
