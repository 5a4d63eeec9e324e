package grammar

import "github.com/dekarrin/ictiobus/internal/util"

const epsMarker = "" // internal marker for ε inside a FIRST/FOLLOW set

// FirstFollow holds the fixed-point FIRST and FOLLOW tables for a grammar.
type FirstFollow struct {
	g      *Grammar
	first  map[string]util.StringSet
	follow map[string]util.StringSet
	// suffixFirst caches FIRST(rhs[i+1:]) for every rule/production/index
	// triple, the form the FOLLOW computation consumes.
	suffixFirst map[ProductionRuleID]map[int]util.StringSet
}

// Compute runs FIRST then FOLLOW to a fixed point over g, which must
// already have Finalize called.
func Compute(g *Grammar) *FirstFollow {
	ff := &FirstFollow{
		g:           g,
		first:       map[string]util.StringSet{},
		follow:      map[string]util.StringSet{},
		suffixFirst: map[ProductionRuleID]map[int]util.StringSet{},
	}
	ff.computeFirst()
	ff.computeFollow()
	return ff
}

func (ff *FirstFollow) ensureFirst(sym string) util.StringSet {
	if ff.first[sym] == nil {
		ff.first[sym] = util.NewStringSet()
	}
	return ff.first[sym]
}

func (ff *FirstFollow) ensureFollow(sym string) util.StringSet {
	if ff.follow[sym] == nil {
		ff.follow[sym] = util.NewStringSet()
	}
	return ff.follow[sym]
}

// First returns FIRST(sym) for a single terminal or nonterminal symbol.
func (ff *FirstFollow) First(sym string) util.StringSet {
	if ff.g.IsTerminal(sym) {
		return util.StringSetOf([]string{sym})
	}
	return ff.ensureFirst(sym).Copy()
}

// Follow returns FOLLOW(nonTerm).
func (ff *FirstFollow) Follow(nonTerm string) util.StringSet {
	return ff.ensureFollow(nonTerm).Copy()
}

// firstOfSeq computes FIRST(X1..Xn) for a symbol sequence: scan
// left to right, add non-ε members of FIRST(Xi) while every symbol so far
// has had ε in its FIRST set; add ε itself only if every Xi's FIRST
// contained ε (including the empty-sequence case).
func (ff *FirstFollow) firstOfSeq(seq []string) util.StringSet {
	out := util.NewStringSet()
	allEps := true
	for _, x := range seq {
		fx := ff.First(x)
		for _, s := range fx.Sorted() {
			if s != epsMarker {
				out.Add(s)
			}
		}
		if !fx.Has(epsMarker) {
			allEps = false
			break
		}
	}
	if allEps {
		out.Add(epsMarker)
	}
	return out
}

func (ff *FirstFollow) computeFirst() {
	for {
		changed := false
		for _, r := range ff.g.Rules {
			for _, p := range r.Productions {
				lhsFirst := ff.ensureFirst(r.NonTerminal)
				before := lhsFirst.Len()

				if len(p.Symbols) == 0 {
					lhsFirst.Add(epsMarker)
				} else {
					contribution := ff.firstOfSeq(p.Symbols)
					lhsFirst.AddAll(contribution)
				}

				if lhsFirst.Len() != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	// Cache FIRST(rhs[i+1:]) for every rule/production, consumed by FOLLOW.
	for _, id := range ff.g.AllProductions() {
		p := ff.g.Production(id)
		ff.suffixFirst[id] = map[int]util.StringSet{}
		for i := range p.Symbols {
			ff.suffixFirst[id][i] = ff.firstOfSeq(p.Symbols[i+1:])
		}
	}
}

func (ff *FirstFollow) computeFollow() {
	ff.ensureFollow(DummyStart).Add(EndOfInput)

	for {
		changed := false
		for _, id := range ff.g.AllProductions() {
			p := ff.g.Production(id)
			a := ff.g.NonTerminalOf(id)
			for i, xi := range p.Symbols {
				if !ff.g.IsTerminal(xi) && !ff.g.IsNonTerminal(xi) {
					continue
				}
				if ff.g.IsTerminal(xi) {
					continue // FOLLOW is only tracked for nonterminals
				}
				followXi := ff.ensureFollow(xi)
				before := followXi.Len()

				suffix := ff.suffixFirst[id][i]
				for _, s := range suffix.Sorted() {
					if s != epsMarker {
						followXi.Add(s)
					}
				}
				if suffix.Has(epsMarker) {
					followXi.AddAll(ff.ensureFollow(a))
				}

				if followXi.Len() != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}
