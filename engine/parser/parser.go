// Package parser consumes a DRC token sequence and produces a DRC syntax
// tree: a disjunction of conjunctions of signed predicate atoms.
//
//	query       := conjunction ( '||' conjunction )*  EOF
//	conjunction := predicate  ( '&&' predicate )*
//	predicate   := [ '!' ] identifier '(' arglist ')'
//	arglist     := arg ( ',' arg )*
//	arg         := identifier | string-literal | '*'
package parser

import (
	"fmt"

	"github.com/drcalc/drcalc/engine/lexer"
)

// Error is a syntax error: an unexpected token or premature end of input.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func syntaxErrorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Parse consumes the full token sequence and returns the DRC tree. A
// successful parse consumes every token; trailing input is an error.
func Parse(tokens []lexer.Token) (Query, error) {
	s := newTokenStream(tokens)

	q, err := parseQuery(s)
	if err != nil {
		return Query{}, err
	}
	if s.hasNext() {
		t, _ := s.cur()
		return Query{}, syntaxErrorf("unexpected trailing token %q", t.Lexeme)
	}
	return q, nil
}

func parseQuery(s *tokenStream) (Query, error) {
	first, err := parseConjunction(s)
	if err != nil {
		return Query{}, err
	}

	disjuncts := []Conjunction{first}
	for s.is(lexer.Or) {
		s.pop()
		conj, err := parseConjunction(s)
		if err != nil {
			return Query{}, err
		}
		disjuncts = append(disjuncts, conj)
	}

	return Query{Disjuncts: disjuncts}, nil
}

func parseConjunction(s *tokenStream) (Conjunction, error) {
	if !s.is(lexer.Bang, lexer.Identifier) {
		return Conjunction{}, syntaxErrorf("expected a predicate, found empty conjunction")
	}

	first, err := parsePredicate(s)
	if err != nil {
		return Conjunction{}, err
	}

	atoms := []Atom{first}
	for s.is(lexer.And) {
		s.pop()
		atom, err := parsePredicate(s)
		if err != nil {
			return Conjunction{}, err
		}
		atoms = append(atoms, atom)
	}

	return Conjunction{Atoms: atoms}, nil
}

func parsePredicate(s *tokenStream) (Atom, error) {
	sign := Positive
	if s.is(lexer.Bang) {
		s.pop()
		sign = Negated
	}

	nameTok, err := s.consumeToken(lexer.Identifier)
	if err != nil {
		return Atom{}, err
	}

	if _, err := s.consumeToken(lexer.LeftParen); err != nil {
		return Atom{}, err
	}

	args, err := parseArgList(s)
	if err != nil {
		return Atom{}, err
	}

	if _, err := s.consumeToken(lexer.RightParen); err != nil {
		return Atom{}, err
	}

	return Atom{Sign: sign, Relation: nameTok.Lexeme, Args: args}, nil
}

func parseArgList(s *tokenStream) ([]Term, error) {
	if !s.is(lexer.Identifier, lexer.StringLiteral, lexer.Star) {
		return nil, syntaxErrorf("expected an argument, found empty argument list")
	}

	first, err := parseArg(s)
	if err != nil {
		return nil, err
	}

	args := []Term{first}
	for s.is(lexer.Comma) {
		s.pop()
		arg, err := parseArg(s)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}

func parseArg(s *tokenStream) (Term, error) {
	t, ok := s.cur()
	if !ok {
		return Term{}, syntaxErrorf("unexpected end of input, expected an argument")
	}

	switch t.Kind {
	case lexer.Identifier:
		s.pop()
		return Variable(t.Lexeme), nil
	case lexer.StringLiteral:
		s.pop()
		return Literal(t.Lexeme[1 : len(t.Lexeme)-1]), nil
	case lexer.Star:
		s.pop()
		return Wildcard(), nil
	default:
		return Term{}, syntaxErrorf("unexpected token %q, expected an argument", t.Lexeme)
	}
}
