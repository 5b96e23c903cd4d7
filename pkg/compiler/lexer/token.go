package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindLet
	KindPrint
	KindIdentifier
	KindNumber
	KindEq        // =
	KindLParen    // (
	KindRParen    // )
	KindSemicolon // ;
)

var kindNames = [...]string{
	KindEOF:        "EOF",
	KindLet:        "LET",
	KindPrint:      "PRINT",
	KindIdentifier: "IDENTIFIER",
	KindNumber:     "NUMBER",
	KindEq:         "EQ",
	KindLParen:     "LPAREN",
	KindRParen:     "RPAREN",
	KindSemicolon:  "SEMICOL",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token represents a single lexical unit. Text is the exact source substring
// the token matched; it is empty only for the EOF token.
type Token struct {
	Kind Kind
	Text string
}
