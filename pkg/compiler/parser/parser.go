package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jsphbtst/simplelang/pkg/compiler/ast"
	"github.com/jsphbtst/simplelang/pkg/compiler/lexer"
)

var (
	// ErrUnexpectedToken is returned when the current token's kind does not
	// match the kind required at the current parse position.
	ErrUnexpectedToken = errors.New("parser: unexpected token")
	// ErrInvalidPrintArgument is returned when print( is followed by a token
	// that is neither an identifier nor a number.
	ErrInvalidPrintArgument = errors.New("parser: invalid print argument")
	// ErrUnexpectedStatement is returned when a top-level token starts
	// neither a let declaration nor a print statement.
	ErrUnexpectedStatement = errors.New("parser: unexpected statement")
	// ErrInvalidNumber is returned when a number token's digits do not fit
	// in an int64.
	ErrInvalidNumber = errors.New("parser: invalid number literal")
)

// Parser consumes a token sequence and produces the AST. It is a cursor over
// the slice with single-token lookahead and no backtracking.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a parser over a tokenized source. The slice is expected
// to be EOF-terminated, as produced by the scanner.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the full token sequence and returns the program in source
// order. The first error aborts the parse; no partial AST is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for p.cur().Kind != lexer.KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case lexer.KindLet:
		return p.parseVarDecl()
	case lexer.KindPrint:
		return p.parsePrintStmt()
	default:
		return nil, fmt.Errorf("%w: found %s", ErrUnexpectedStatement, p.cur().Kind)
	}
}

// parseVarDecl: let IDENTIFIER = NUMBER ;
func (p *Parser) parseVarDecl() (ast.Statement, error) {
	if _, err := p.expect(lexer.KindLet); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.KindIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindEq); err != nil {
		return nil, err
	}
	num, err := p.expect(lexer.KindNumber)
	if err != nil {
		return nil, err
	}
	value, err := parseInt(num.Text)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindSemicolon); err != nil {
		return nil, err
	}

	return &ast.VarDecl{Name: name.Text, Value: value}, nil
}

// parsePrintStmt: print ( IDENTIFIER | NUMBER ) ;
func (p *Parser) parsePrintStmt() (ast.Statement, error) {
	if _, err := p.expect(lexer.KindPrint); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindLParen); err != nil {
		return nil, err
	}

	var arg ast.Literal
	tok := p.cur()
	switch tok.Kind {
	case lexer.KindIdentifier:
		arg = &ast.Identifier{Name: tok.Text}
		p.pos++
	case lexer.KindNumber:
		value, err := parseInt(tok.Text)
		if err != nil {
			return nil, err
		}
		arg = &ast.NumberLiteral{Value: value}
		p.pos++
	default:
		return nil, fmt.Errorf("%w: found %s", ErrInvalidPrintArgument, tok.Kind)
	}

	if _, err := p.expect(lexer.KindRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindSemicolon); err != nil {
		return nil, err
	}

	return &ast.PrintStmt{Arg: arg}, nil
}

// expect advances past the current token if it has the given kind.
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return tok, fmt.Errorf("%w: expected %s, found %s", ErrUnexpectedToken, kind, tok.Kind)
	}
	p.pos++
	return tok, nil
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.KindEOF}
	}
	return p.tokens[p.pos]
}

func parseInt(text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, text)
	}
	return value, nil
}
