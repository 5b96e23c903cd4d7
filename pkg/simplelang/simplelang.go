// Package simplelang runs SimpleLang programs end to end: lexical analysis,
// parsing and tree evaluation over one in-memory source string.
package simplelang

import (
	"io"

	"github.com/jsphbtst/simplelang/pkg/compiler/lexer"
	"github.com/jsphbtst/simplelang/pkg/compiler/parser"
	"github.com/jsphbtst/simplelang/pkg/interp"
)

// Run executes source and writes each printed value to out on its own line.
// The three phases run strictly in order and the first lexical, syntactic or
// evaluation error aborts the run. Each call uses a fresh variable store.
func Run(source string, out io.Writer) error {
	tokens, err := lexer.NewScanner([]byte(source)).Tokenize()
	if err != nil {
		return err
	}

	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}

	return interp.New(out).Run(program)
}
