// Package automaton implements dense integer-indexed finite automata and
// the subset-construction algorithm that determinizes an NFA into a DFA.
//
// State ids are dense 1-based integers in 1..=NumStates; 0 is reserved to
// mean "no state" and is never a valid member of a DFA or NFA.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/ictiobus/ictioerr"
)

// DFA is a deterministic finite automaton (NumStates, Alphabet, Delta,
// Start, Accept). Delta must be total: every state in 1..=NumStates has an
// outgoing transition for every symbol in Alphabet.
type DFA struct {
	NumStates int
	Alphabet  []string
	// Delta[state][symbol] = next state. Populated densely by construction;
	// Simulate treats a missing cell as a bug, not a runtime condition, since
	// totality is an invariant the constructors are responsible for.
	Delta map[int]map[string]int
	Start int
	// Accept holds the accepting states; an empty Accept means the DFA's
	// language is the empty set.
	Accept map[int]bool
}

// NewDFA returns an empty DFA with numStates states (1..=numStates) over the
// given alphabet, all transitions undefined. Callers fill transitions with
// SetTransition before use.
func NewDFA(numStates int, alphabet []string) *DFA {
	d := &DFA{
		NumStates: numStates,
		Alphabet:  append([]string(nil), alphabet...),
		Delta:     make(map[int]map[string]int, numStates),
		Accept:    make(map[int]bool),
	}
	for s := 1; s <= numStates; s++ {
		d.Delta[s] = make(map[string]int, len(alphabet))
	}
	return d
}

// SetTransition records δ[from][sym] = to. from and to must be in
// 1..=NumStates.
func (d *DFA) SetTransition(from int, sym string, to int) {
	if d.Delta[from] == nil {
		d.Delta[from] = make(map[string]int)
	}
	d.Delta[from][sym] = to
}

// IsAccepting reports whether state is in F.
func (d *DFA) IsAccepting(state int) bool {
	return d.Accept[state]
}

// Validate checks the totality invariant: every state has an outgoing
// transition for every symbol of Alphabet, and every transition target plus
// Start and every accept state lie in 1..=NumStates.
func (d *DFA) Validate() error {
	inRange := func(s int) bool { return s >= 1 && s <= d.NumStates }

	if !inRange(d.Start) {
		return fmt.Errorf("start state %d out of range 1..=%d", d.Start, d.NumStates)
	}
	for s := range d.Accept {
		if !inRange(s) {
			return fmt.Errorf("accept state %d out of range 1..=%d", s, d.NumStates)
		}
	}
	for s := 1; s <= d.NumStates; s++ {
		row, ok := d.Delta[s]
		if !ok {
			return fmt.Errorf("state %d has no transition row", s)
		}
		for _, sym := range d.Alphabet {
			to, ok := row[sym]
			if !ok {
				return fmt.Errorf("state %d has no transition defined for symbol %q", s, sym)
			}
			if !inRange(to) {
				return fmt.Errorf("state %d transitions to out-of-range state %d on %q", s, to, sym)
			}
		}
	}
	return nil
}

// alphabetIndex returns the column index of sym in the alphabet, or -1 if
// sym is not in it. Used by Simulate to detect a symbol outside Σ.
func (d *DFA) alphabetIndex(sym string) int {
	for i, a := range d.Alphabet {
		if a == sym {
			return i
		}
	}
	return -1
}

// Simulate drives the DFA over s one symbol at a time starting from Start,
// and reports whether the resulting state is accepting. If s contains a
// symbol outside the alphabet, Simulate fails with an
// ictioerr.ErrInvalidToken-kind error. An empty Accept set means Simulate
// always returns false, including for the empty string; the empty string is
// accepted iff Start is itself accepting.
func (d *DFA) Simulate(s string) (bool, error) {
	q := d.Start
	for _, r := range s {
		sym := string(r)
		if d.alphabetIndex(sym) < 0 {
			return false, ictioerr.InvalidTokenf("malformed input: symbol %q not in alphabet", sym)
		}
		row, ok := d.Delta[q]
		if !ok {
			return false, fmt.Errorf("state %d has no transition row (DFA not total)", q)
		}
		next, ok := row[sym]
		if !ok {
			return false, fmt.Errorf("no transition from state %d on symbol %q (DFA not total)", q, sym)
		}
		q = next
	}
	return d.Accept[q], nil
}

// Step drives one transition from q on sym, returning the resulting state.
// Unlike Simulate, Step does not check sym against Σ; a symbol outside the
// DFA's own alphabet simply has no defined cell and Step returns an error,
// leaving alphabet-membership checks to the caller (the lexer checks
// against the lexer's declared Σ, which can be a superset of any one
// class's regex alphabet).
func (d *DFA) Step(q int, sym string) (int, error) {
	row, ok := d.Delta[q]
	if !ok {
		return 0, fmt.Errorf("state %d has no transition row (DFA not total)", q)
	}
	next, ok := row[sym]
	if !ok {
		return 0, fmt.Errorf("no transition from state %d on symbol %q", q, sym)
	}
	return next, nil
}

// String renders the DFA as an ordered transition table, state by state,
// symbol by symbol, for debugging.
func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA(start=%d, states=%d)\n", d.Start, d.NumStates)
	alphabet := append([]string(nil), d.Alphabet...)
	sort.Strings(alphabet)
	for s := 1; s <= d.NumStates; s++ {
		accMark := ""
		if d.Accept[s] {
			accMark = "*"
		}
		fmt.Fprintf(&sb, "  %d%s:", s, accMark)
		for _, sym := range alphabet {
			fmt.Fprintf(&sb, " %q->%d", sym, d.Delta[s][sym])
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
