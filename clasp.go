// Package clasp implements a small interpreted language with S-expression
// syntax, lexical scoping and closures.
package clasp

import (
	"fmt"

	"github.com/xiam/clasp/ast"
	"github.com/xiam/clasp/parser"
)

// Parse parses source text into a list of top-level forms.
func Parse(in []byte) (*ast.Node, error) {
	return parser.Parse(in)
}

// Run parses src and evaluates it against env.
func Run(src []byte, env *Env) (*Value, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return EvalProgram(root, env)
}

// RunFile reads a program and evaluates it against a new root environment.
func RunFile(path string, opts Options) (*Value, error) {
	opts = opts.withDefaults()

	src, err := opts.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHost, err)
	}

	opts.Logger.Printf("run: %s", path)
	return Run(src, NewRootEnv(opts))
}
