package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/clasp/lexer"
)

var ErrNotAVector = errors.New("nodes of type value can't accept children")

// Node represents an S-expression: either an atom or a list of nodes.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns an atom node based on the given token and value
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list" holding children
func NewList(tok *lexer.Token, children ...*Node) *Node {
	list := make([]*Node, 0, len(children))
	list = append(list, children...)
	return newNode(NodeTypeList, tok, list)
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := New(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	if !n.IsVector() {
		return nil
	}
	return n.v.([]*Node)
}

// Len returns the number of children of a list node
func (n *Node) Len() int {
	return len(n.List())
}

// Symbol returns the name of a symbol node
func (n *Node) Symbol() (string, bool) {
	if n.nt != NodeTypeSymbol {
		return "", false
	}
	return n.Value().(string), true
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.v.([]*Node)))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Value())
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return ErrNotAVector
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}
