package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphbtst/simplelang/pkg/compiler/lexer"
	"github.com/jsphbtst/simplelang/pkg/compiler/parser"
	"github.com/jsphbtst/simplelang/pkg/interp"
)

// Exit codes keep the failing phase distinguishable: 1 usage or I/O,
// 2 lexical, 3 syntactic, 4 evaluation.
func main() {
	if len(os.Args) < 3 || os.Args[1] != "run" {
		fmt.Println("Usage: simplelang run <source.sl>")
		fmt.Println("       simplelang run -    (read program from stdin)")
		os.Exit(1)
	}

	path := os.Args[2]

	var src []byte
	var err error
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source: %v\n", err)
		os.Exit(1)
	}

	tokens, err := lexer.NewScanner(src).Tokenize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lex Error: %v\n", err)
		os.Exit(2)
	}

	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse Error: %v\n", err)
		os.Exit(3)
	}

	if err := interp.New(os.Stdout).Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime Error: %v\n", err)
		os.Exit(4)
	}
}
