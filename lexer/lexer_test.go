package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Alphabet abc, classes A "a", B "b", AB "(a|b)(a|b)*" in priority order.
// "aab" -> (AB,"aab") by maximal munch; "a b" -> (A,"a"), (B,"b").
func Test_MaximalMunch(t *testing.T) {
	lx, err := Compile([]string{"a", "b", "c"}, []ClassSpec{
		{Name: "A", Pattern: "a"},
		{Name: "B", Pattern: "b"},
		{Name: "AB", Pattern: "(a|b)(a|b)*"},
	})
	assert.NoError(t, err)

	sc := lx.NewScanner("aab")
	tok, ok, err := sc.Next()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AB", tok.Class())
	assert.Equal(t, "aab", tok.Lexeme())

	_, ok, err = sc.Next()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func Test_WhitespaceSeparatedTokens(t *testing.T) {
	lx, err := Compile([]string{"a", "b", "c"}, []ClassSpec{
		{Name: "A", Pattern: "a"},
		{Name: "B", Pattern: "b"},
		{Name: "AB", Pattern: "(a|b)(a|b)*"},
	})
	assert.NoError(t, err)

	sc := lx.NewScanner("a b")
	tok1, ok, err := sc.Next()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A", tok1.Class())

	tok2, ok, err := sc.Next()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "B", tok2.Class())
}

func Test_Compile_DuplicateClassName(t *testing.T) {
	_, err := Compile([]string{"a"}, []ClassSpec{
		{Name: "A", Pattern: "a"},
		{Name: "A", Pattern: "a"},
	})
	assert.Error(t, err)
}

func Test_Scanner_InvalidToken_OutOfAlphabet(t *testing.T) {
	lx, err := Compile([]string{"a"}, []ClassSpec{{Name: "A", Pattern: "a"}})
	assert.NoError(t, err)

	sc := lx.NewScanner("z")
	_, _, err = sc.Next()
	assert.Error(t, err)
}

func Test_Scanner_InvalidToken_NoClassMatches(t *testing.T) {
	lx, err := Compile([]string{"a", "b"}, []ClassSpec{{Name: "A", Pattern: "a"}})
	assert.NoError(t, err)

	sc := lx.NewScanner("b")
	_, _, err = sc.Next()
	assert.Error(t, err)
}
