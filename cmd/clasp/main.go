package main

import (
	"fmt"
	"log"
	"os"

	"github.com/peterh/liner"

	"github.com/xiam/clasp"
	"github.com/xiam/clasp/repl"
)

const replCommand = "repl"

func usage() {
	fmt.Printf(`Clasp interpreter. Usage:
  $ clasp %s
  $ clasp file.clasp
`, replCommand)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("clasp: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(0)
	}

	if os.Args[1] == replCommand {
		runRepl()
		return
	}

	path := os.Args[1]
	if _, err := clasp.RunFile(path, clasp.Options{}); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("File %s executed.\n", path)
}

func runRepl() {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	env := clasp.NewRootEnv(clasp.Options{})

	err := repl.Run(ln, os.Stdout, env)
	ln.Close()
	if err != nil {
		log.Fatal(err)
	}
}
