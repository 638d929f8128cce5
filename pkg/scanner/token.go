package scanner

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	Name TokenType = iota
	Plus
	Star
	LParen
	RParen
)

var symbols = map[rune]TokenType{
	'+': Plus,
	'*': Star,
	'(': LParen,
	')': RParen,
}

func (t TokenType) String() string {
	switch t {
	case Name:
		return "name"
	case Plus:
		return "+"
	case Star:
		return "*"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical unit of a graph expression.
// Pos is the 1-based rune position of its first rune in the input.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

func (t Token) String() string {
	return t.Text
}

// Tokenize splits a graph expression into tokens.
// Whitespace separates tokens and is dropped, each of + * ( ) is a
// token on its own and every other sequence of runes forms a name.
// Tokenize never fails, malformed expressions are detected by the parser.
func Tokenize(in string) []Token {
	var tokens []Token

	s := NewScanner(in)
	for c := s.SkipBlanks(); !s.EOF(); c = s.SkipBlanks() {
		if t, ok := symbols[c]; ok {
			tokens = append(tokens, Token{Type: t, Text: string(c), Pos: s.Position()})
			s.Next()
			continue
		}
		var name strings.Builder
		start := s.Position()
		for !s.EOF() && !isDelimiter(c) {
			name.WriteRune(c)
			c = s.Next()
		}
		tokens = append(tokens, Token{Type: Name, Text: name.String(), Pos: start})
	}
	return tokens
}

func isDelimiter(c rune) bool {
	_, ok := symbols[c]
	return ok || unicode.IsSpace(c)
}

// Join renders a token list as expression text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
