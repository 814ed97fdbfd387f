package main

import (
	"fmt"
	"log"

	"github.com/xiam/clasp/lexer"
)

func main() {
	input := `
		(def greet ; comment
			(lambda (name)
				(str "Hello " name "!")))
		(greet "world")
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
