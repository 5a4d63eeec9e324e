package regexc

import "github.com/dekarrin/ictiobus/automaton"

// frame is one entry of the explicit work stack used by Lower to avoid
// recursing to the depth of the syntax tree.
type frame struct {
	node    Node
	visited bool
}

func children(n Node) []Node {
	switch t := n.(type) {
	case *Star:
		return []Node{t.Child}
	case *Concat:
		return []Node{t.Left, t.Right}
	case *Union:
		return []Node{t.Left, t.Right}
	default:
		return nil
	}
}

// Lower compiles a syntax tree into an automaton.NFA via Thompson
// construction, traversing in post-order with an explicit stack rather
// than recursion.
func Lower(root Node) *automaton.NFA {
	var work []frame
	var frags []*automaton.NFA

	work = append(work, frame{node: root})

	for len(work) > 0 {
		top := work[len(work)-1]

		if !top.visited {
			work[len(work)-1].visited = true
			kids := children(top.node)
			for i := len(kids) - 1; i >= 0; i-- {
				work = append(work, frame{node: kids[i]})
			}
			continue
		}

		work = work[:len(work)-1]

		switch n := top.node.(type) {
		case *Leaf:
			frags = append(frags, lowerLeaf(n.Sym))
		case *EmptyNode:
			frags = append(frags, lowerEmpty())
		case *Star:
			child := frags[len(frags)-1]
			frags = frags[:len(frags)-1]
			frags = append(frags, lowerStar(child))
		case *Concat:
			right := frags[len(frags)-1]
			left := frags[len(frags)-2]
			frags = frags[:len(frags)-2]
			frags = append(frags, lowerConcat(left, right))
		case *Union:
			right := frags[len(frags)-1]
			left := frags[len(frags)-2]
			frags = frags[:len(frags)-2]
			frags = append(frags, lowerUnion(left, right))
		}
	}

	return frags[0]
}

// lowerLeaf builds the 2-state fragment for Leaf(c): start 1, accept 2,
// edge 1 -c-> 2.
func lowerLeaf(sym string) *automaton.NFA {
	n := automaton.NewNFA(2, []string{sym})
	n.Start.Add(1)
	n.Accept[2] = true
	n.AddTransition(1, sym, 2)
	return n
}

// lowerEmpty builds the trivial one-state NFA accepting only the empty
// string: the start state is the lone accept state and there are no
// transitions out of it.
func lowerEmpty() *automaton.NFA {
	n := automaton.NewNFA(1, nil)
	n.Start.Add(1)
	n.Accept[1] = true
	return n
}

// lowerStar adds ε-edges from every accept state of A back to A's start
// state and marks that start state accepting.
func lowerStar(a *automaton.NFA) *automaton.NFA {
	start := a.Start.Sorted()[0]
	for s := range a.Accept {
		if a.Accept[s] {
			a.AddTransition(s, "", start)
		}
	}
	a.Accept[start] = true
	return a
}

// lowerConcat renumbers B by +|A| states, wires A's accept states to B's
// (renumbered) start via ε, and takes B's accept states as the result's.
func lowerConcat(a, b *automaton.NFA) *automaton.NFA {
	offset := a.NumStates
	renumbered := renumber(b, offset)

	merged := mergeInto(a, renumbered)

	bStart := renumbered.Start.Sorted()[0]
	for s := range a.Accept {
		if a.Accept[s] {
			merged.AddTransition(s, "", bStart)
		}
	}

	merged.Accept = make(map[int]bool, len(renumbered.Accept))
	for s, ok := range renumbered.Accept {
		if ok {
			merged.Accept[s] = true
		}
	}
	return merged
}

// lowerUnion renumbers B by +1 and A by +(1+|B|), allocates a fresh start
// state 1 with ε-edges to both renumbered starts, and unions the renumbered
// accept sets.
func lowerUnion(a, b *automaton.NFA) *automaton.NFA {
	bOffset := 1
	aOffset := 1 + b.NumStates

	rb := renumber(b, bOffset)
	ra := renumber(a, aOffset)

	// ra's highest id is 1 + |B| + |A|, which is the whole fragment's size.
	merged := automaton.NewNFA(ra.NumStates, unionAlphabet(ra, rb))
	merged.Start.Add(1)

	copyTransitions(merged, ra)
	copyTransitions(merged, rb)

	merged.AddTransition(1, "", rb.Start.Sorted()[0])
	merged.AddTransition(1, "", ra.Start.Sorted()[0])

	for s, ok := range ra.Accept {
		if ok {
			merged.Accept[s] = true
		}
	}
	for s, ok := range rb.Accept {
		if ok {
			merged.Accept[s] = true
		}
	}
	return merged
}

// renumber returns a copy of n with every state id shifted by +offset.
func renumber(n *automaton.NFA, offset int) *automaton.NFA {
	out := automaton.NewNFA(n.NumStates+offset, n.Alphabet)
	for _, s := range n.Start.Sorted() {
		out.Start.Add(s + offset)
	}
	for s, ok := range n.Accept {
		if ok {
			out.Accept[s+offset] = true
		}
	}
	for from, row := range n.Delta {
		for sym, tos := range row {
			for _, to := range tos {
				out.AddTransition(from+offset, sym, to+offset)
			}
		}
	}
	return out
}

// mergeInto grows a's state space to accommodate b's (already-renumbered)
// states and copies b's transitions in, returning the combined fragment.
// a's own Start/Accept/transitions are left untouched by this step; callers
// adjust Accept afterward. b's NumStates already counts a's states, since
// renumbering by +|A| shifts b's highest id past them.
func mergeInto(a, b *automaton.NFA) *automaton.NFA {
	merged := automaton.NewNFA(b.NumStates, unionAlphabet(a, b))
	merged.Start = a.Start.Copy()
	copyTransitions(merged, a)
	copyTransitions(merged, b)
	return merged
}

func copyTransitions(dst, src *automaton.NFA) {
	for from, row := range src.Delta {
		for sym, tos := range row {
			for _, to := range tos {
				dst.AddTransition(from, sym, to)
			}
		}
	}
}

func unionAlphabet(a, b *automaton.NFA) []string {
	seen := map[string]bool{}
	var out []string
	for _, sym := range a.Alphabet {
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	for _, sym := range b.Alphabet {
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	return out
}

// Compile parses expr and lowers it to an NFA in one step, special-casing
// the literal expression "e" to avoid building any spurious structure.
func Compile(expr string) (*automaton.NFA, error) {
	if expr == "e" {
		return lowerEmpty(), nil
	}
	tree, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return Lower(tree), nil
}
