package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax matches every failure produced while reading source text.
	ErrSyntax = errors.New("syntax error")

	ErrUnterminatedString = errors.New("unterminated string")
)

// SyntaxError is a positioned failure found while lexing, parsing or
// checking the shape of a special form.
type SyntaxError struct {
	Err  error
	Line int
	Col  int
}

// NewSyntaxError wraps err with the position of tok, if any.
func NewSyntaxError(err error, tok *Token) *SyntaxError {
	e := &SyntaxError{Err: err}
	if tok != nil {
		e.Line, e.Col = tok.Pos()
	}
	return e
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at position %d:%d", e.Err, e.Line, e.Col)
	}
	return e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is makes every SyntaxError match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
