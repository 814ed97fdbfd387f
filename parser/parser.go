package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/xiam/clasp/ast"
	"github.com/xiam/clasp/lexer"
)

type parserState func(p *Parser) parserState

// arenaNode is a parse-time node. Children are referenced by their index in
// the arena.
type arenaNode struct {
	tok      *lexer.Token
	value    ast.Valuer
	children []int
}

// Parser builds a tree of S-expressions out of the tokens of a lexer.
type Parser struct {
	lx *lexer.Lexer

	// nodes[0] is the root, stack holds the path from the root to the node
	// that receives new children.
	nodes []arenaNode
	stack []int

	lastTok *lexer.Token
	lastErr error
}

// New creates a parser that reads source text from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx:    lexer.New(r),
		nodes: []arenaNode{{}},
		stack: []int{0},
	}
}

// Parse consumes the whole input and returns the root node, a list that holds
// every top-level form.
func (p *Parser) Parse() (*ast.Node, error) {
	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	if p.lastErr != nil {
		return nil, p.lastErr
	}

	root := p.flatten(0)
	p.nodes, p.stack = nil, nil

	return root, nil
}

func (p *Parser) depth() int {
	return len(p.stack) - 1
}

func (p *Parser) curr() int {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(tok *lexer.Token, value ast.Valuer) int {
	idx := len(p.nodes)
	p.nodes = append(p.nodes, arenaNode{tok: tok, value: value})

	parent := p.curr()
	p.nodes[parent].children = append(p.nodes[parent].children, idx)
	return idx
}

func (p *Parser) flatten(idx int) *ast.Node {
	n := p.nodes[idx]
	if n.value != nil {
		return ast.New(n.tok, n.value)
	}

	children := make([]*ast.Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, p.flatten(child))
	}
	return ast.NewList(n.tok, children...)
}

func parserDefaultState(p *Parser) parserState {
	if !p.lx.Next() {
		if err := p.lx.Err(); err != nil {
			return parserErrorState(err)
		}
		return parserStateEOF
	}

	tok := p.lx.Token()

	switch tok.Type() {
	case lexer.TokenEOF:
		return parserStateEOF

	case lexer.TokenOpenExpression:
		p.lastTok = &tok
		return parserStateOpenExpression

	case lexer.TokenCloseExpression:
		p.lastTok = &tok
		return parserStateCloseExpression

	default:
		p.lastTok = &tok
		return parserStateAtom
	}
}

func parserStateOpenExpression(p *Parser) parserState {
	idx := p.push(p.lastTok, nil)
	p.stack = append(p.stack, idx)
	return parserDefaultState
}

func parserStateCloseExpression(p *Parser) parserState {
	if p.depth() == 0 {
		return parserErrorState(lexer.NewSyntaxError(ErrUnexpectedClose, p.lastTok))
	}
	p.stack = p.stack[:len(p.stack)-1]
	return parserDefaultState
}

func parserStateAtom(p *Parser) parserState {
	value, err := atomValue(p.lastTok)
	if err != nil {
		return parserErrorState(lexer.NewSyntaxError(err, p.lastTok))
	}
	p.push(p.lastTok, value)
	return parserDefaultState
}

func parserStateEOF(p *Parser) parserState {
	if p.depth() != 0 {
		return parserErrorState(lexer.NewSyntaxError(ErrUnclosedParen, p.lastTok))
	}
	return nil
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func atomValue(tok *lexer.Token) (ast.Valuer, error) {
	switch tok.Type() {
	case lexer.TokenInteger:
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		return ast.NewIntValue(i64), nil

	case lexer.TokenFloat:
		f64, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		return ast.NewFloatValue(f64), nil

	case lexer.TokenString:
		return ast.NewStringValue(tok.Text()), nil

	default:
		return ast.NewSymbolValue(tok.Text()), nil
	}
}

// Parse parses the given source text and returns the root node.
func Parse(in []byte) (*ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}
