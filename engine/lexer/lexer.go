// Package lexer turns a DRC query string into an ordered token sequence.
package lexer

import (
	"fmt"
	"regexp"
)

// pattern pairs a Kind with the regexp that recognizes it. Order matters:
// the first pattern that matches at the current position wins, which is
// why Bang precedes Identifier (so "!" is never swallowed by a longer
// match) and Identifier precedes Star (so a bare "*" is never mistaken for
// part of a name).
type pattern struct {
	kind Kind
	re   *regexp.Regexp
}

var patterns = []pattern{
	{Bang, regexp.MustCompile(`^!`)},
	{Identifier, regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*`)},
	{Star, regexp.MustCompile(`^\*`)},
	{StringLiteral, regexp.MustCompile(`^"[^"]*"`)},
	{Comma, regexp.MustCompile(`^,`)},
	{And, regexp.MustCompile(`^&&`)},
	{Or, regexp.MustCompile(`^\|\|`)},
	{LeftParen, regexp.MustCompile(`^\(`)},
	{RightParen, regexp.MustCompile(`^\)`)},
}

var whitespace = regexp.MustCompile(`^\s+`)

// Error reports a lexical failure: no pattern matched at some position.
type Error struct {
	Pos  int
	Rest string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at position %d: cannot tokenize %q", e.Pos, e.Rest)
}

// Lex transforms the raw query string into an ordered token sequence, or
// fails with *Error. No partial token sequence is ever returned.
func Lex(query string) ([]Token, error) {
	var tokens []Token
	pos := 0
	rest := query

	for {
		if m := whitespace.FindString(rest); m != "" {
			pos += len(m)
			rest = rest[len(m):]
		}

		if rest == "" {
			return tokens, nil
		}

		matched := false
		for _, p := range patterns {
			m := p.re.FindString(rest)
			if m == "" {
				continue
			}
			tokens = append(tokens, Token{Kind: p.kind, Lexeme: m})
			pos += len(m)
			rest = rest[len(m):]
			matched = true
			break
		}

		if !matched {
			return nil, &Error{Pos: pos, Rest: rest}
		}
	}
}
