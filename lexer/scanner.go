package lexer

import (
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/parse"
)

// Token is one (class, lexeme) pair emitted by a Scanner. It satisfies
// parse.Token so a Scanner can be handed directly to parse.Table.Parse.
type Token struct {
	class  string
	lexeme string
}

func (t Token) Class() string  { return t.class }
func (t Token) Lexeme() string { return t.lexeme }

// isWhitespace reports whether r is skipped between tokens. Only space,
// tab, and newline are skipped; no other character is ever treated as
// inter-token whitespace.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// Scanner is a streaming maximal-munch tokenizer over one source string. It
// holds at most one lookahead position (the current scan offset); it never
// buffers tokens ahead of the one being produced.
type Scanner struct {
	lx    *Lexer
	runes []rune
	pos   int
}

// NewScanner returns a Scanner positioned at the start of source.
func (lx *Lexer) NewScanner(source string) *Scanner {
	return &Scanner{lx: lx, runes: []rune(source)}
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.runes) && isWhitespace(s.runes[s.pos]) {
		s.pos++
	}
}

// longestMatch runs one class's DFA from its start state over
// s.runes[from:], returning the length of the longest prefix at which the
// DFA is in an accepting state (0 if none, including if the start state
// itself is not accepting).
func longestMatch(cls compiledClass, runes []rune, from int) int {
	// A start-accepting DFA matches the empty prefix, but an empty lexeme
	// would never advance the scan, so length-0 matches are never emitted.
	state := cls.dfa.Start
	best := 0
	for i := from; i < len(runes); i++ {
		next, err := cls.dfa.Step(state, string(runes[i]))
		if err != nil {
			break
		}
		state = next
		if cls.dfa.IsAccepting(state) {
			best = i - from + 1
		}
	}
	return best
}

// Next returns the next (class, lexeme) token, skipping leading whitespace,
// or ok=false once the input is exhausted. The longest accepted prefix
// wins; ties are broken by first-declared class.
func (s *Scanner) Next() (parse.Token, bool, error) {
	s.skipWhitespace()
	if s.pos >= len(s.runes) {
		return nil, false, nil
	}

	bestLen := 0
	bestClass := -1
	for i, cls := range s.lx.classes {
		n := longestMatch(cls, s.runes, s.pos)
		if n > bestLen {
			bestLen = n
			bestClass = i
		}
	}

	if bestLen == 0 {
		r := s.runes[s.pos]
		if !s.lx.Alphabet.Has(string(r)) {
			return nil, false, ictioerr.InvalidTokenf(
				"character %q at position %d is outside the declared alphabet", r, s.pos)
		}
		return nil, false, ictioerr.InvalidTokenf(
			"no token class matches any prefix at position %d (character %q)", s.pos, r)
	}

	lexeme := string(s.runes[s.pos : s.pos+bestLen])
	tok := Token{class: s.lx.classes[bestClass].name, lexeme: lexeme}
	s.pos += bestLen
	return tok, true, nil
}

// HasNext reports whether any non-whitespace input remains, without
// consuming a token.
func (s *Scanner) HasNext() bool {
	save := s.pos
	s.skipWhitespace()
	has := s.pos < len(s.runes)
	s.pos = save
	return has
}
