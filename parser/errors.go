package parser

import (
	"errors"

	"github.com/xiam/clasp/lexer"
)

var (
	ErrUnexpectedClose = errors.New("unexpected )")
	ErrUnclosedParen   = errors.New("unclosed parenthesis")
	ErrInvalidNumber   = errors.New("invalid number")
)

// IsIncomplete reports whether err was caused only by input ending before
// every list or string was closed.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnclosedParen) || errors.Is(err, lexer.ErrUnterminatedString)
}
