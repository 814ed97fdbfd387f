// Package repl implements the interactive loop of the interpreter.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/clasp"
)

const (
	Banner = "Welcome to Clasp REPL"
	Prompt = "> "
)

// Prompter reads lines of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Run reads one line at a time from p, evaluates it against env and writes
// the result or the error to w. Failures never end the loop; it returns
// when p reaches EOF.
func Run(p Prompter, w io.Writer, env *clasp.Env) error {
	fmt.Fprintln(w, Banner)

	for {
		line, err := p.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
				return nil
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		p.AppendHistory(line)

		value, err := clasp.Run([]byte(line), env)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, value)
	}
}
