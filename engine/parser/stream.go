package parser

import (
	"fmt"

	"github.com/drcalc/drcalc/engine/lexer"
)

// tokenStream is a one-token-lookahead cursor over a token slice. The
// grammar is LL(1) at every decision point, so restore only ever needs to
// undo a single pop; anything beyond that wedges the stream and the
// enclosing combinator must treat it as a parse failure.
type tokenStream struct {
	tokens []lexer.Token
	index  int
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

func (s *tokenStream) hasNext() bool {
	return s.index < len(s.tokens)
}

func (s *tokenStream) cur() (lexer.Token, bool) {
	if !s.hasNext() {
		return lexer.Token{}, false
	}
	return s.tokens[s.index], true
}

func (s *tokenStream) is(kinds ...lexer.Kind) bool {
	t, ok := s.cur()
	if !ok {
		return false
	}
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func (s *tokenStream) pop() (lexer.Token, bool) {
	t, ok := s.cur()
	if !ok {
		return lexer.Token{}, false
	}
	s.index++
	return t, true
}

// mark records the current position for a later restore.
func (s *tokenStream) mark() int {
	return s.index
}

// restore rewinds to a prior mark. It only succeeds when at most one token
// has been consumed since the mark; a larger gap means the caller used the
// stream outside the LL(1) discipline this grammar relies on.
func (s *tokenStream) restore(mark int) error {
	if s.index-mark > 1 || s.index < mark {
		return fmt.Errorf("token stream wedged: cannot restore from %d to %d", s.index, mark)
	}
	s.index = mark
	return nil
}

func (s *tokenStream) consumeToken(kind lexer.Kind) (lexer.Token, error) {
	t, ok := s.cur()
	if !ok {
		return lexer.Token{}, syntaxErrorf("unexpected end of input, expected %s", kind)
	}
	if t.Kind != kind {
		return lexer.Token{}, syntaxErrorf("unexpected token %q, expected %s", t.Lexeme, kind)
	}
	s.pop()
	return t, nil
}
