package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/xiam/clasp"
)

func main() {
	input := `
		(def fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))
		(print "fact 10 =" (fact 10))
		(print "fact 25 =" (fact 25)) ; too big for an int
		(reduce (list 1 2 3 4) (lambda (a b) (+ a b)))
	`

	var out bytes.Buffer
	env := clasp.NewRootEnv(clasp.Options{Stdout: &out})

	value, err := clasp.Run([]byte(input), env)
	if err != nil {
		log.Fatal("clasp.Run:", err)
	}

	fmt.Print(out.String())
	fmt.Println("result:", value)
}
