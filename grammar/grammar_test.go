package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func abGrammar() *Grammar {
	g := NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"A", "B"})
	g.AddRule("A", []string{"a"})
	g.AddRule("B", []string{"b"})
	g.Finalize()
	return g
}

func Test_Grammar_Finalize_InsertsSynthesizedStart(t *testing.T) {
	g := abGrammar()
	assert.Equal(t, DummyStart, g.Rules[0].NonTerminal)
	assert.Equal(t, []string{"S"}, g.Rules[0].Productions[0].Symbols)
}

func Test_Grammar_Validate(t *testing.T) {
	assert.NoError(t, abGrammar().Validate())

	bad := NewGrammar()
	bad.AddRule("S", []string{"undeclared"})
	bad.Finalize()
	assert.Error(t, bad.Validate())
}

func Test_Grammar_EpsilonRule(t *testing.T) {
	g := NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"a", "S", "b"})
	g.AddRule("S", nil)
	g.Finalize()
	assert.NoError(t, g.Validate())

	rule, ok := g.RuleFor("S")
	assert.True(t, ok)
	assert.Len(t, rule.Productions, 2)
	assert.Empty(t, rule.Productions[1].Symbols)
}

func Test_FirstFollow_Simple(t *testing.T) {
	g := abGrammar()
	ff := Compute(g)

	assert.True(t, ff.First("S").Has("a"))
	assert.True(t, ff.Follow(DummyStart).Has(EndOfInput))
	assert.True(t, ff.Follow("A").Has("b"))
}

func Test_FirstFollow_EpsilonRule(t *testing.T) {
	g := NewGrammar()
	g.AddTerm("a")
	g.AddTerm("b")
	g.AddRule("S", []string{"a", "S", "b"})
	g.AddRule("S", nil)
	g.Finalize()
	ff := Compute(g)

	first := ff.First("S")
	assert.True(t, first.Has("a"))
	// FOLLOW(S) must contain b (from the a S b production) and
	// END_OF_INPUT (inherited as the outer S's follow).
	follow := ff.Follow("S")
	assert.True(t, follow.Has("b"))
	assert.True(t, follow.Has(EndOfInput))
}

func Test_Closure_And_Goto(t *testing.T) {
	g := abGrammar()
	start := Closure(g, []Item{{
		Rule:        ProductionRuleID{RuleIndex: 0, ProductionIndex: 0},
		NonTerminal: DummyStart,
		Right:       []string{"S"},
	}})

	// closure of the start item must also add S -> . A B (S's only
	// production), since the dot precedes the nonterminal S.
	found := false
	for _, it := range start.Sorted() {
		if it.NonTerminal == "S" && it.NextSymbol() == "A" {
			found = true
		}
	}
	assert.True(t, found)

	afterA := Goto(g, start, "A")
	assert.True(t, afterA.Len() > 0)
}

func Test_Closure_Idempotent(t *testing.T) {
	g := abGrammar()
	seed := []Item{{
		Rule:        ProductionRuleID{RuleIndex: 0, ProductionIndex: 0},
		NonTerminal: DummyStart,
		Right:       []string{"S"},
	}}
	once := Closure(g, seed)
	twice := Closure(g, once.Sorted())
	assert.Equal(t, once.Key(), twice.Key())
}
