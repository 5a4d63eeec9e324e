package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/ictiobus/internal/util"
)

// epsilon is the internal symbol used as the map key for ε-transitions. It
// is never a member of Alphabet.
const epsilon = ""

// NFA is a nondeterministic finite automaton with ε-moves (NumStates,
// Alphabet, Delta, Start, Accept). Delta is partial: Delta[s] may be nil or
// missing entries for symbols with no outgoing edge from s. Delta[s][epsilon]
// holds s's ε-transitions.
type NFA struct {
	NumStates int
	Alphabet  []string
	Delta     map[int]map[string][]int
	// Start is the startable set; Thompson-constructed fragments always
	// have exactly one start state, but loaded automata may have more.
	Start  util.IntSet
	Accept map[int]bool
}

// NewNFA returns an NFA with numStates states (1..=numStates), no
// transitions, no start states, and no accept states.
func NewNFA(numStates int, alphabet []string) *NFA {
	n := &NFA{
		NumStates: numStates,
		Alphabet:  append([]string(nil), alphabet...),
		Delta:     make(map[int]map[string][]int, numStates),
		Start:     util.NewIntSet(),
		Accept:    make(map[int]bool),
	}
	return n
}

// AddTransition adds an edge from -sym-> to. sym == "" denotes ε.
func (n *NFA) AddTransition(from int, sym string, to int) {
	if n.Delta[from] == nil {
		n.Delta[from] = make(map[string][]int)
	}
	n.Delta[from][sym] = append(n.Delta[from][sym], to)
}

// EpsilonClosure returns the least set containing q that is closed under
// ε-transitions. Computed by iterative saturation with an explicit stack,
// not recursion, so closure depth is not bounded by the call stack.
func (n *NFA) EpsilonClosure(q int) util.IntSet {
	return n.EpsilonClosureOfSet(util.NewIntSet([]int{q}))
}

// EpsilonClosureOfSet is EpsilonClosure generalized to a set of starting
// states: the least superset of qs closed under ε-transitions.
func (n *NFA) EpsilonClosureOfSet(qs util.IntSet) util.IntSet {
	closure := util.NewIntSet()
	stack := util.Stack[int]{}
	for _, q := range qs.Sorted() {
		stack.Push(q)
	}

	for !stack.Empty() {
		q := stack.Pop()
		if closure.Has(q) {
			continue
		}
		closure.Add(q)
		for _, next := range n.Delta[q][epsilon] {
			stack.Push(next)
		}
	}
	return closure
}

// move returns the set of states reachable from some state in qs via one
// transition on sym (non-ε). This is MOVE(T, a) from the purple dragon
// book's algorithm 3.20, reused here for subset construction.
func (n *NFA) move(qs util.IntSet, sym string) util.IntSet {
	result := util.NewIntSet()
	for _, q := range qs.Sorted() {
		for _, next := range n.Delta[q][sym] {
			result.Add(next)
		}
	}
	return result
}

func (n *NFA) isAcceptingSet(qs util.IntSet) bool {
	for q := range qs {
		if n.Accept[q] {
			return true
		}
	}
	return false
}

// MaxSubsetStates bounds how many states subset construction may discover
// before giving up; the state count can grow exponentially in the number
// of NFA states.
const MaxSubsetStates = 1 << 14

// ToDFA converts the NFA into an equivalent DFA via subset construction.
// The DFA's alphabet is the NFA's with ε stripped; its start state is 1,
// corresponding to the ε-closure of the startable set. Subsets are interned
// and numbered in the order they are first discovered, keyed by the
// ascending sort of the NFA state ids they contain, so state numbering is
// deterministic. If any transition would remain undefined because a
// subset's move is empty, a single synthetic reject state is allocated and
// reused for every such cell, keeping the transition function total.
// Returns an error if more than MaxSubsetStates subsets are discovered.
func (n *NFA) ToDFA() (*DFA, error) {
	type subsetEntry struct {
		id  int
		set util.IntSet
	}

	subsetID := map[string]int{}
	order := []subsetEntry{}

	intern := func(set util.IntSet) (id int, isNew bool) {
		key := set.Key()
		if id, ok := subsetID[key]; ok {
			return id, false
		}
		id = len(order) + 1
		subsetID[key] = id
		order = append(order, subsetEntry{id: id, set: set})
		return id, true
	}

	startSet := n.EpsilonClosureOfSet(n.Start)
	startID, _ := intern(startSet)
	_ = startID // always 1, the first interned subset

	type cell struct {
		from int
		sym  string
	}
	trans := map[cell]int{}

	// Work-queue over newly discovered subsets.
	queue := []int{1}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		set := order[id-1].set

		for _, sym := range n.Alphabet {
			moved := n.move(set, sym)
			if moved.Empty() {
				continue // leave undefined for now; patched below with the trap state
			}
			closed := n.EpsilonClosureOfSet(moved)
			toID, isNew := intern(closed)
			if isNew {
				if len(order) > MaxSubsetStates {
					return nil, fmt.Errorf("subset construction exceeded %d states", MaxSubsetStates)
				}
				queue = append(queue, toID)
			}
			trans[cell{from: id, sym: sym}] = toID
		}
	}

	needsTrap := false
	for _, entry := range order {
		for _, sym := range n.Alphabet {
			if _, ok := trans[cell{from: entry.id, sym: sym}]; !ok {
				needsTrap = true
			}
		}
	}

	numStates := len(order)
	trapID := 0
	if needsTrap {
		numStates++
		trapID = numStates
	}

	dfa := NewDFA(numStates, n.Alphabet)
	dfa.Start = 1

	for _, entry := range order {
		dfa.Accept[entry.id] = n.isAcceptingSet(entry.set)
		for _, sym := range n.Alphabet {
			if to, ok := trans[cell{from: entry.id, sym: sym}]; ok {
				dfa.SetTransition(entry.id, sym, to)
			} else {
				dfa.SetTransition(entry.id, sym, trapID)
			}
		}
	}

	if needsTrap {
		dfa.Accept[trapID] = false
		for _, sym := range n.Alphabet {
			dfa.SetTransition(trapID, sym, trapID)
		}
	}

	return dfa, nil
}

// String renders the NFA's transitions for debugging.
func (n *NFA) String() string {
	var sb strings.Builder
	starts := n.Start.Sorted()
	fmt.Fprintf(&sb, "NFA(start=%v, states=%d)\n", starts, n.NumStates)
	for s := 1; s <= n.NumStates; s++ {
		accMark := ""
		if n.Accept[s] {
			accMark = "*"
		}
		fmt.Fprintf(&sb, "  %d%s:", s, accMark)
		syms := make([]string, 0, len(n.Delta[s]))
		for sym := range n.Delta[s] {
			syms = append(syms, sym)
		}
		sort.Strings(syms)
		for _, sym := range syms {
			label := sym
			if sym == epsilon {
				label = "ε"
			}
			fmt.Fprintf(&sb, " %q->%v", label, n.Delta[s][sym])
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
