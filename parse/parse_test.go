package parse

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

// tokenSlice is a TokenSource backed by a fixed slice, for driver tests
// that don't need a real lexer.
type tokenSlice struct {
	toks []simpleToken
	pos  int
}

func (s *tokenSlice) Next() (Token, bool, error) {
	if s.pos >= len(s.toks) {
		return nil, false, nil
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true, nil
}

func tok(class string) simpleToken { return simpleToken{class: class, lexeme: class} }

// S : A B, A : a, B : b; input "a b" parses to pre-order [S, A, a, B, b].
func Test_Parse_SimpleSequence(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"A", "B"})
	g.AddRule("A", []string{"a"})
	g.AddRule("B", []string{"b"})
	g.Finalize()

	table, err := Generate(g)
	assert.NoError(t, err)

	tree, err := table.Parse(&tokenSlice{toks: []simpleToken{tok("a"), tok("b")}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "a", "B", "b"}, tree.PreOrder())
}

// S : a S b, S : eps; "" => [S, eps]; "a b" => [S, a, S, eps, b].
func Test_Parse_EpsilonRule(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"a", "S", "b"})
	g.AddRule("S", nil)
	g.Finalize()

	table, err := Generate(g)
	assert.NoError(t, err)

	tree, err := table.Parse(&tokenSlice{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"S", "eps"}, tree.PreOrder())

	tree, err = table.Parse(&tokenSlice{toks: []simpleToken{tok("a"), tok("b")}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"S", "a", "S", "eps", "b"}, tree.PreOrder())

	_, err = table.Parse(&tokenSlice{toks: []simpleToken{tok("a"), tok("a"), tok("b")}})
	assert.Error(t, err)
}

// In every generated state, the action and goto maps must share no key:
// terminals and nonterminals are disjoint after construction.
func Test_Generate_ActionGotoDisjoint(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"a", "S", "b"})
	g.AddRule("S", nil)
	g.Finalize()

	table, err := Generate(g)
	assert.NoError(t, err)

	for state := range table.States {
		for sym := range table.Action[state] {
			_, both := table.Goto[state][sym]
			assert.False(t, both, "state %d: symbol %q in both action and goto", state, sym)
		}
	}
}

// FOLLOW-based reduction placement is insufficient to disambiguate two
// rules that both reduce on the same lookahead from the same state: a
// reduce/reduce conflict. S -> A, S -> B, A -> a, B -> a puts both
// A -> a . and B -> a . in the state reached after shifting "a", and
// FOLLOW(A) and FOLLOW(B) both contain the end-of-input terminal, so table
// construction must raise NonLRGrammarError.
func Test_Generate_ReduceReduceConflict(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddTerm("a")
	g.AddRule("S", []string{"A"})
	g.AddRule("S", []string{"B"})
	g.AddRule("A", []string{"a"})
	g.AddRule("B", []string{"a"})
	g.Finalize()

	_, err := Generate(g)
	assert.Error(t, err)
}
