package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeFloat:
		return FormatFloat(n.v.(float64))
	case NodeTypeSymbol, NodeTypeString:
		// string literals keep their quotes until evaluation
		return fmt.Sprintf("%s", n.v)
	}

	panic("unreachable")
}

// NewStringValue creates a value of type string. The literal is expected to
// include its surrounding double quotes.
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewFloatValue creates a value of type float and sets it to the given value
func NewFloatValue(v float64) Valuer {
	return newNodeValue(NodeTypeFloat, v)
}

// NewIntValue creates a value of type int and sets it to the given value
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewSymbolValue creates a value of type symbol and sets it to the given value
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

// FormatFloat renders f so that it reads back as a float, 7.0 is encoded as
// "7.0" rather than "7".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

var _ = Valuer(&nodeValue{})
