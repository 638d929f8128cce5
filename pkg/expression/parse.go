package expression

import (
	"fmt"
	"unicode/utf8"

	"github.com/mandelsoft/goutils/general"

	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/scanner"
)

// Mode controls the handling of tokens left over after
// a complete expression.
type Mode int

const (
	// Lenient ignores trailing tokens.
	Lenient Mode = iota
	// Strict rejects trailing tokens.
	Strict
)

type parser struct {
	in     string
	tokens []scanner.Token
	index  int
}

func newParser(in string) *parser {
	return &parser{
		in:     in,
		tokens: scanner.Tokenize(in),
	}
}

func (p *parser) current() *scanner.Token {
	if p.index >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.index]
}

func (p *parser) next() {
	p.index++
}

func (p *parser) is(t scanner.TokenType) bool {
	c := p.current()
	return c != nil && c.Type == t
}

func (p *parser) errorf(expected string, msg string, args ...interface{}) error {
	e := &MalformedError{
		Input:    p.in,
		Position: utf8.RuneCountInString(p.in) + 1,
		Expected: expected,
		Message:  fmt.Sprintf(msg, args...),
	}
	if c := p.current(); c != nil {
		e.Position = c.Pos
		e.Found = c.Text
	}
	return e
}

////////////////////////////////////////////////////////////////////////////////

// expression := term ('+' term)*
func (p *parser) parseExpression() (*Node, error) {
	o1, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is(scanner.Plus) {
		p.next()
		o2, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		o1 = NewOperatorNode(OP_UNION, o1, o2)
	}
	return o1, nil
}

// term := factor ('*' factor)*
func (p *parser) parseTerm() (*Node, error) {
	o1, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.is(scanner.Star) {
		p.next()
		o2, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		o1 = NewOperatorNode(OP_JOIN, o1, o2)
	}
	return o1, nil
}

// factor := '(' expression ')' | name
func (p *parser) parseFactor() (*Node, error) {
	c := p.current()
	switch {
	case c == nil:
		return nil, p.errorf("operand", "operand expected at end of expression")
	case c.Type == scanner.LParen:
		p.next()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.is(scanner.RParen) {
			return nil, p.errorf(")", "%q expected", ")")
		}
		p.next()
		return e, nil
	case c.Type == scanner.Name:
		p.next()
		return NewVertexNode(c.Text), nil
	default:
		return nil, p.errorf("operand", "unexpected %q for operand", c.Text)
	}
}

////////////////////////////////////////////////////////////////////////////////

// ParseNode parses a graph expression into an expression tree.
//
//	expression := term ('+' term)*
//	term       := factor ('*' factor)*
//	factor     := '(' expression ')' | name
//
// In Lenient mode (the default) tokens following a complete
// expression are ignored.
func ParseNode(in string, mode ...Mode) (*Node, error) {
	p := newParser(in)

	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current() != nil {
		rest := scanner.Join(p.tokens[p.index:])
		if general.Optional(mode...) == Strict {
			return nil, p.errorf("end of expression", "unexpected %q after expression", rest)
		}
		log.Debug("ignoring trailing tokens {{tokens}} in {{expression}}", "tokens", rest, "expression", in)
	}
	return n, nil
}

// Parse evaluates a graph expression.
func Parse(in string, mode ...Mode) (*graph.Graph, error) {
	n, err := ParseNode(in, mode...)
	if err != nil {
		return nil, err
	}
	return n.Eval()
}
