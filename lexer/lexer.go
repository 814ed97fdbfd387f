package lexer

import (
	"bytes"
	"io"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		in:    &scanner.Scanner{},
		state: lexDefaultState,
		buf:   []rune{},
		line:  1,
		col:   1,
	}
	lx.in.Init(r)
	// invalid UTF-8 decodes to utf8.RuneError and becomes part of an atom or
	// a string.
	lx.in.Error = func(*scanner.Scanner, string) {}
	return lx
}

// Lexer represents a lexical analyzer. Tokens are produced on demand by
// calling Next, a Lexer can't be rewound.
type Lexer struct {
	in *scanner.Scanner

	state   lexState
	tok     Token
	emitted bool
	lastErr error

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Next advances the lexer to the next token. It returns false after the EOF
// token was consumed or when an error was found.
func (lx *Lexer) Next() bool {
	lx.emitted = false
	for lx.state != nil && !lx.emitted {
		lx.state = lx.state(lx)
	}
	return lx.emitted
}

// Token returns the token found by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

// Pos returns the line and column of the next rune to be read.
func (lx *Lexer) Pos() (int, int) {
	return lx.line, lx.col
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	}
	lx.emitted = true
}

func (lx *Lexer) start() {
	lx.buf = lx.buf[0:0]
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)

	if isNewLine(r) {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexDefaultState
	case isComment(r):
		return lexComment
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	case isQuote(r):
		return lexString
	default:
		return lexAtom
	}
}

func lexComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isNewLine(p) {
			return lexDefaultState
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
}

func lexString(lx *Lexer) lexState {
	for {
		r, err := lx.next()
		if err != nil {
			return lexStateError(&SyntaxError{
				Err:  ErrUnterminatedString,
				Line: lx.startLine,
				Col:  lx.startCol,
			})
		}
		if isQuote(r) {
			return lexEmit(TokenString)
		}
	}
}

func lexAtom(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isAtomBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(atomType(string(lx.buf)))
}

// atomType tries integer, then float, and falls back to symbol.
func atomType(text string) TokenType {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return TokenInteger
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return TokenFloat
	}
	return TokenSymbol
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.start()
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
