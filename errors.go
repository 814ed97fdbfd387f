package clasp

import (
	"errors"
	"fmt"

	"github.com/xiam/clasp/lexer"
)

// ErrSyntax matches every syntax failure, including malformed special forms.
var ErrSyntax = lexer.ErrSyntax

// SyntaxError is a failure that carries a source position.
type SyntaxError = lexer.SyntaxError

var (
	ErrUnboundVariable = errors.New("unbound variable")
	ErrRedefinition    = errors.New("redefinition")
	ErrNotCallable     = errors.New("not callable")
	ErrMalformedForm   = errors.New("malformed special form")
	ErrRaised          = errors.New("raised")

	// ErrHost matches failures surfacing from primitives, such as wrong
	// argument types or out of range indexes.
	ErrHost = errors.New("runtime error")

	ErrArity = fmt.Errorf("%w: wrong number of arguments", ErrHost)
)

// RaiseError is the failure produced by the raise primitive.
type RaiseError struct {
	Message string
}

func (e *RaiseError) Error() string {
	return e.Message
}

// Is makes every RaiseError match ErrRaised.
func (e *RaiseError) Is(target error) bool {
	return target == ErrRaised
}

func hostErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrHost}, args...)...)
}

func arityErrorf(name string, want string, got int) error {
	return fmt.Errorf("%w: %s expects %s, got %d", ErrArity, name, want, got)
}
