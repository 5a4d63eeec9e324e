package regexc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func simulate(t *testing.T, expr, input string) bool {
	nfa, err := Compile(expr)
	assert.NoError(t, err)
	dfa, err := nfa.ToDFA()
	assert.NoError(t, err)
	accepted, err := dfa.Simulate(input)
	assert.NoError(t, err)
	return accepted
}

func Test_Compile_UnionStarConcat(t *testing.T) {
	// (a|b)*abb over alphabet ab
	assert.True(t, simulate(t, "(a|b)*abb", "aabb"))
	assert.False(t, simulate(t, "(a|b)*abb", "ab"))
}

func Test_Compile_EscapedLiteral(t *testing.T) {
	// a\*b over Sigma=ab* -- literal star character
	assert.True(t, simulate(t, `a\*b`, "a*b"))
	assert.False(t, simulate(t, `a\*b`, "ab"))
}

func Test_Compile_EmptyStringLanguage(t *testing.T) {
	nfa, err := Compile("e")
	assert.NoError(t, err)
	dfa, err := nfa.ToDFA()
	assert.NoError(t, err)

	accepted, err := dfa.Simulate("")
	assert.NoError(t, err)
	assert.True(t, accepted)

	// any nonempty input uses a symbol outside the empty alphabet
	_, err = dfa.Simulate("a")
	assert.Error(t, err)
}

func Test_Compile_Star(t *testing.T) {
	assert.True(t, simulate(t, "a*", ""))
	assert.True(t, simulate(t, "a*", "a"))
	assert.True(t, simulate(t, "a*", "aaaa"))
}

func Test_Compile_Concatenation(t *testing.T) {
	nfa, err := Compile("ab")
	assert.NoError(t, err)
	dfa, err := nfa.ToDFA()
	assert.NoError(t, err)

	accepted, err := dfa.Simulate("ab")
	assert.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = dfa.Simulate("ba")
	assert.NoError(t, err)
	assert.False(t, accepted)
}

func Test_Parse_InvalidExpression(t *testing.T) {
	testCases := []string{"(a", "a)", "*", "|a", `\`}
	for _, expr := range testCases {
		_, err := Parse(expr)
		assert.Error(t, err, "expr %q should be invalid", expr)
	}
}

func Test_InsertConcat_Idempotent(t *testing.T) {
	toks, err := scan("ab|c*")
	assert.NoError(t, err)
	once := insertConcat(toks)
	twice := insertConcat(once)
	assert.Equal(t, once, twice)
}

func Test_ValidateAlphabet(t *testing.T) {
	assert.NoError(t, ValidateAlphabet([]string{"a", "b", "c"}))
	assert.Error(t, ValidateAlphabet([]string{"ab"}))
}
