package specfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReadDFA(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"ab",
		"1 'a' 2",
		"1 'b' 1",
		"2 'a' 2",
		"2 'b' 2",
		"1",
		"2",
	}, "\n")

	dfa, err := ReadDFA(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, 2, dfa.NumStates)
	assert.Equal(t, 1, dfa.Start)
	assert.True(t, dfa.Accept[2])

	accepted, err := dfa.Simulate("aab")
	assert.NoError(t, err)
	assert.True(t, accepted)
}

func Test_WriteDFA_RoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"ab",
		"1 'a' 2",
		"1 'b' 1",
		"2 'a' 2",
		"2 'b' 2",
		"1",
		"2",
	}, "\n")

	dfa, err := ReadDFA(strings.NewReader(input))
	assert.NoError(t, err)

	var sb strings.Builder
	assert.NoError(t, WriteDFA(&sb, dfa))

	reread, err := ReadDFA(strings.NewReader(sb.String()))
	assert.NoError(t, err)
	assert.Equal(t, dfa.NumStates, reread.NumStates)
	assert.Equal(t, dfa.Start, reread.Start)
	assert.Equal(t, dfa.Delta, reread.Delta)
	assert.Equal(t, dfa.Accept, reread.Accept)
}

func Test_ReadDFA_MalformedLine(t *testing.T) {
	_, err := ReadDFA(strings.NewReader("notanumber\nab\n"))
	assert.Error(t, err)
}

func Test_ReadNFA(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"a",
		"1 'a' 2",
		"1 'e' 1",
		"",
		"1",
		"2",
	}, "\n")

	nfa, err := ReadNFA(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, 2, nfa.NumStates)
	assert.True(t, nfa.Start.Has(1))
	assert.True(t, nfa.Accept[2])
}

func Test_ReadTokenSpec(t *testing.T) {
	input := strings.Join([]string{
		`"ab"`,
		`A "a"`,
		`B "b"`,
	}, "\n")

	lx, err := ReadTokenSpec(strings.NewReader(input))
	assert.NoError(t, err)
	assert.NotNil(t, lx)
}

func Test_ReadGrammar(t *testing.T) {
	input := strings.Join([]string{
		"a b",
		"%%",
		"S : A B",
		"A : a",
		"B : b",
	}, "\n")

	g, err := ReadGrammar(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, "S", g.StartSymbol())
	assert.NoError(t, g.Validate())
}

func Test_ReadGrammar_EpsilonRule(t *testing.T) {
	input := strings.Join([]string{
		"a b",
		"%%",
		"S : a S b",
		"S : eps",
	}, "\n")

	g, err := ReadGrammar(strings.NewReader(input))
	assert.NoError(t, err)
	rule, ok := g.RuleFor("S")
	assert.True(t, ok)
	assert.Empty(t, rule.Productions[1].Symbols)
}

func Test_ReadGrammar_MissingSeparator(t *testing.T) {
	_, err := ReadGrammar(strings.NewReader("a b\nS : a\n"))
	assert.Error(t, err)
}
