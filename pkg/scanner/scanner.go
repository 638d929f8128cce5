package scanner

import (
	"unicode"
	"unicode/utf8"
)

type Scanner interface {
	Next() rune
	SkipBlanks() rune
	Current() rune
	EOF() bool
	Position() int
}

type scanner struct {
	in      []byte
	offset  int
	no      int
	current rune
	eof     bool
}

func NewScanner(in string) Scanner {
	s := &scanner{
		in: []byte(in),
	}
	s.Next()
	return s
}

// Next moves to the next rune. Invalid UTF-8 input is
// consumed byte by byte and reported as utf8.RuneError.
func (s *scanner) Next() rune {
	if s.offset >= len(s.in) {
		s.current = 0
		s.eof = true
		return 0
	}
	r, size := utf8.DecodeRune(s.in[s.offset:])
	s.current = r
	s.offset += size
	s.no++
	return r
}

func (s *scanner) Current() rune {
	return s.current
}

func (s *scanner) EOF() bool {
	return s.eof
}

// Position returns the 1-based rune position of the current rune.
func (s *scanner) Position() int {
	return s.no
}

func (s *scanner) SkipBlanks() rune {
	n := s.Current()
	for !s.eof && unicode.IsSpace(n) {
		n = s.Next()
	}
	return n
}
