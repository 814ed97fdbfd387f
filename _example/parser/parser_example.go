package main

import (
	"log"
	"os"

	"github.com/xiam/clasp/ast"
	"github.com/xiam/clasp/parser"
)

func main() {
	input := `(def add (lambda (a b) (+ a b))) (print (add 66 3.27) "Hello world!" 😊)`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
