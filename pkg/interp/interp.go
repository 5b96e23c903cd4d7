package interp

import (
	"errors"
	"fmt"
	"io"

	"github.com/jsphbtst/simplelang/pkg/compiler/ast"
)

// ErrUndefinedVariable is returned when a print statement references an
// identifier with no earlier declaration.
var ErrUndefinedVariable = errors.New("interp: undefined variable")

// Interpreter executes a program by walking its AST top to bottom.
type Interpreter struct {
	out io.Writer
}

// New creates an interpreter that writes printed values to out, one per line.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Run evaluates the program against a fresh variable store. Declarations
// overwrite earlier values for the same name; prints emit in program order.
// The first undefined variable aborts the run, and values already written
// before the error are not rolled back.
func (i *Interpreter) Run(program *ast.Program) error {
	store := make(map[string]int64)

	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			store[s.Name] = s.Value
		case *ast.PrintStmt:
			if err := i.print(s.Arg, store); err != nil {
				return err
			}
		}
	}

	return nil
}

func (i *Interpreter) print(arg ast.Literal, store map[string]int64) error {
	switch a := arg.(type) {
	case *ast.NumberLiteral:
		fmt.Fprintln(i.out, a.Value)
	case *ast.Identifier:
		value, ok := store[a.Name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUndefinedVariable, a.Name)
		}
		fmt.Fprintln(i.out, value)
	}
	return nil
}
