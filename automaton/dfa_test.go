package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAB() *DFA {
	// accepts strings over {a,b} containing at least one "ab"
	d := NewDFA(3, []string{"a", "b"})
	d.Start = 1
	d.SetTransition(1, "a", 2)
	d.SetTransition(1, "b", 1)
	d.SetTransition(2, "a", 2)
	d.SetTransition(2, "b", 3)
	d.SetTransition(3, "a", 3)
	d.SetTransition(3, "b", 3)
	d.Accept[3] = true
	return d
}

func Test_DFA_Simulate(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "empty string rejected", input: "", expect: false},
		{name: "no ab substring", input: "aaa", expect: false},
		{name: "contains ab", input: "aab", expect: true},
		{name: "contains ab later", input: "bbbab", expect: true},
	}

	d := newAB()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.Simulate(tc.input)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(tc.expect, got)
		})
	}
}

func Test_DFA_Simulate_MalformedInput(t *testing.T) {
	d := newAB()
	_, err := d.Simulate("abc")
	assert.Error(t, err)
}

func Test_DFA_Validate(t *testing.T) {
	d := newAB()
	assert.NoError(t, d.Validate())
}

func Test_DFA_Validate_IncompleteTransitions(t *testing.T) {
	d := NewDFA(2, []string{"a"})
	d.Start = 1
	// no transitions set at all
	assert.Error(t, d.Validate())
}

func Test_DFA_EmptyAcceptSet(t *testing.T) {
	d := NewDFA(1, []string{"a"})
	d.Start = 1
	d.SetTransition(1, "a", 1)

	accepted, err := d.Simulate("")
	assert.NoError(t, err)
	assert.False(t, accepted)

	accepted, err = d.Simulate("aaaa")
	assert.NoError(t, err)
	assert.False(t, accepted)
}
