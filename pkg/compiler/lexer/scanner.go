package lexer

import (
	"errors"
	"fmt"
)

// ErrUnexpectedCharacter is returned when a character matches no token rule.
var ErrUnexpectedCharacter = errors.New("lexer: unexpected character")

// Scanner performs lexical analysis on SimpleLang source.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Tokenize scans the entire input and returns the token sequence, always
// terminated by exactly one EOF token. The first unexpected character aborts
// the scan; no partial token slice is returned.
func (s *Scanner) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF}, nil
	}

	ch := s.source[s.cursor]

	switch ch {
	case '=':
		s.cursor++
		return Token{Kind: KindEq, Text: "="}, nil
	case '(':
		s.cursor++
		return Token{Kind: KindLParen, Text: "("}, nil
	case ')':
		s.cursor++
		return Token{Kind: KindRParen, Text: ")"}, nil
	case ';':
		s.cursor++
		return Token{Kind: KindSemicolon, Text: ";"}, nil
	}

	if isAlpha(ch) {
		return s.scanIdentifier(), nil
	}
	if isDigit(ch) {
		return s.scanNumber(), nil
	}

	return Token{}, fmt.Errorf("%w %q", ErrUnexpectedCharacter, ch)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.cursor++
		} else {
			break
		}
	}
}

// scanIdentifier consumes a maximal run of letters, digits and underscores
// starting at a letter or underscore, then classifies keywords.
func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.cursor++
	}

	text := string(s.source[start:s.cursor])

	switch text {
	case "let":
		return Token{Kind: KindLet, Text: text}
	case "print":
		return Token{Kind: KindPrint, Text: text}
	}

	return Token{Kind: KindIdentifier, Text: text}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return Token{Kind: KindNumber, Text: string(s.source[start:s.cursor])}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
