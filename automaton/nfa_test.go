package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newABStarNFA builds an ε-NFA for (a|b)*abb, the running example from the
// purple dragon book's subset-construction walkthrough.
func newABStarNFA() *NFA {
	n := NewNFA(11, []string{"a", "b"})
	n.Start.Add(1)
	n.Accept[11] = true

	n.AddTransition(1, "", 2)
	n.AddTransition(1, "", 7)
	n.AddTransition(2, "", 3)
	n.AddTransition(2, "", 5)
	n.AddTransition(3, "a", 4)
	n.AddTransition(5, "b", 6)
	n.AddTransition(4, "", 8)
	n.AddTransition(6, "", 8)
	n.AddTransition(8, "", 2)
	n.AddTransition(8, "", 7)
	n.AddTransition(7, "a", 9)
	n.AddTransition(9, "b", 10)
	n.AddTransition(10, "b", 11)
	return n
}

func Test_NFA_EpsilonClosure(t *testing.T) {
	n := newABStarNFA()
	closure := n.EpsilonClosure(1)
	for _, want := range []int{1, 2, 3, 5, 7} {
		assert.True(t, closure.Has(want), "expected %d in epsilon-closure of 1", want)
	}
	assert.False(t, closure.Has(4))
}

func Test_NFA_ToDFA_Equivalence(t *testing.T) {
	n := newABStarNFA()
	d, err := n.ToDFA()
	assert.NoError(t, err)

	testCases := []struct {
		input  string
		accept bool
	}{
		{"abb", true},
		{"aabb", true},
		{"babb", true},
		{"ab", false},
		{"", false},
		{"aababb", true},
	}

	for _, tc := range testCases {
		got, err := d.Simulate(tc.input)
		assert.NoError(t, err)
		assert.Equal(t, tc.accept, got, "input %q", tc.input)
	}
}

func Test_NFA_ToDFA_TotalityViaTrapState(t *testing.T) {
	n := NewNFA(2, []string{"a", "b"})
	n.Start.Add(1)
	n.Accept[2] = true
	n.AddTransition(1, "a", 2)
	// no transition defined on "b" from state 1: subset construction must
	// patch in a single synthetic reject state rather than leaving a gap.
	d, err := n.ToDFA()
	assert.NoError(t, err)
	assert.NoError(t, d.Validate())

	accepted, err := d.Simulate("b")
	assert.NoError(t, err)
	assert.False(t, accepted)
}
