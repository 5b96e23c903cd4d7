package ast

// Program is the root node: the ordered statement list of one source text.
type Program struct {
	Statements []Statement
}

// Statement represents a top-level unit of execution.
type Statement interface {
	stmtNode()
}

// Literal represents a value form accepted as a print argument.
type Literal interface {
	literalNode()
}

// VarDecl: let NAME = VALUE ;
type VarDecl struct {
	Name  string
	Value int64
}

func (*VarDecl) stmtNode() {}

// PrintStmt: print ( ARG ) ;
type PrintStmt struct {
	Arg Literal
}

func (*PrintStmt) stmtNode() {}

// Identifier references a previously declared variable.
type Identifier struct {
	Name string
}

func (*Identifier) literalNode() {}

// NumberLiteral is an integer constant.
type NumberLiteral struct {
	Value int64
}

func (*NumberLiteral) literalNode() {}
