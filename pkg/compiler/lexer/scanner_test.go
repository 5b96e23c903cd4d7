package lexer_test

import (
	"errors"
	"testing"

	"github.com/jsphbtst/simplelang/pkg/compiler/lexer"
)

func TestScannerKinds(t *testing.T) {
	src := []byte("let x = 69;\nprint(x);")
	tokens, err := lexer.NewScanner(src).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []lexer.Kind{
		lexer.KindLet,
		lexer.KindIdentifier,
		lexer.KindEq,
		lexer.KindNumber,
		lexer.KindSemicolon,
		lexer.KindPrint,
		lexer.KindLParen,
		lexer.KindIdentifier,
		lexer.KindRParen,
		lexer.KindSemicolon,
		lexer.KindEOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d: expected kind %v, got %v", i, exp, tokens[i].Kind)
		}
	}
}

func TestScannerText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind lexer.Kind
		text string
	}{
		{
			name: "identifier captures full run",
			src:  "counter_2",
			kind: lexer.KindIdentifier,
			text: "counter_2",
		},
		{
			name: "keyword prefix stays one identifier",
			src:  "letx",
			kind: lexer.KindIdentifier,
			text: "letx",
		},
		{
			name: "print prefix stays one identifier",
			src:  "print2",
			kind: lexer.KindIdentifier,
			text: "print2",
		},
		{
			name: "number captures full digit run",
			src:  "0042",
			kind: lexer.KindNumber,
			text: "0042",
		},
		{
			name: "keyword let",
			src:  "let",
			kind: lexer.KindLet,
			text: "let",
		},
		{
			name: "keyword print",
			src:  "print",
			kind: lexer.KindPrint,
			text: "print",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.NewScanner([]byte(tt.src)).Tokenize()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected token + EOF, got %d tokens", len(tokens))
			}
			if tokens[0].Kind != tt.kind || tokens[0].Text != tt.text {
				t.Errorf("expected {%v %q}, got {%v %q}", tt.kind, tt.text, tokens[0].Kind, tokens[0].Text)
			}
		})
	}
}

func TestScannerWhitespaceOnly(t *testing.T) {
	tokens, err := lexer.NewScanner([]byte(" \t\r\n\n ")).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected a single EOF token, got %d tokens", len(tokens))
	}
	if tokens[0].Kind != lexer.KindEOF || tokens[0].Text != "" {
		t.Errorf("expected empty EOF token, got {%v %q}", tokens[0].Kind, tokens[0].Text)
	}
}

func TestScannerUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "stray at sign", src: "let a = 1 @"},
		{name: "leading stray", src: "#print(1);"},
		{name: "operator not in language", src: "let a = 1 + 2;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.NewScanner([]byte(tt.src)).Tokenize()
			if !errors.Is(err, lexer.ErrUnexpectedCharacter) {
				t.Fatalf("expected ErrUnexpectedCharacter, got %v", err)
			}
			if tokens != nil {
				t.Errorf("expected no partial token slice, got %d tokens", len(tokens))
			}
		})
	}
}
