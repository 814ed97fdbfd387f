package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenInteger                   // Integers
	TokenFloat                     // Floating point numbers
	TokenString                    // Double quoted string, quotes included
	TokenSymbol                    // Any other atom
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
}

const (
	quoteRune   = '"'
	commentRune = ';'
	newLineRune = '\n'
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenInteger:         "integer",
	TokenFloat:           "float",
	TokenString:          "string",
	TokenSymbol:          "symbol",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
)

func isQuote(r rune) bool {
	return r == quoteRune
}

func isComment(r rune) bool {
	return r == commentRune
}

func isNewLine(r rune) bool {
	return r == newLineRune
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isAtomBreak reports whether r ends a symbol or numeric atom.
func isAtomBreak(r rune) bool {
	return isWhitespace(r) || isOpenExpression(r) || isCloseExpression(r) || isQuote(r) || isComment(r)
}
