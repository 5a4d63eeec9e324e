package grammar

import (
	"fmt"
	"strings"
)

// Item is an LR(0) item: a production with a dot position. Left holds the
// symbols already consumed (before the dot); Right holds the remaining
// symbols (the dot sits immediately before Right[0], or at the end of the
// production if Right is empty).
type Item struct {
	Rule        ProductionRuleID
	NonTerminal string
	Left        []string
	Right       []string
}

func (it Item) String() string {
	return fmt.Sprintf("%s -> %s . %s", it.NonTerminal, strings.Join(it.Left, " "), strings.Join(it.Right, " "))
}

// AtEnd reports whether the dot is at the end of the production (a
// candidate for Reduce/Accept).
func (it Item) AtEnd() bool {
	return len(it.Right) == 0
}

// NextSymbol is the symbol immediately after the dot, or "" if AtEnd.
func (it Item) NextSymbol() string {
	if it.AtEnd() {
		return ""
	}
	return it.Right[0]
}

// Advance returns the item with the dot moved one symbol to the right.
// Panics if already AtEnd; callers only advance on the symbol returned by
// NextSymbol.
func (it Item) Advance() Item {
	if it.AtEnd() {
		panic("advance of item already at end")
	}
	return Item{
		Rule:        it.Rule,
		NonTerminal: it.NonTerminal,
		Left:        append(append([]string{}, it.Left...), it.Right[0]),
		Right:       it.Right[1:],
	}
}

func (it Item) key() string {
	return fmt.Sprintf("%s|%s", it.Rule, strings.Join(it.Left, "\x00"))
}

// ItemSet is an unordered, deduplicated collection of items, with
// deterministic output order via Sorted.
type ItemSet struct {
	byKey map[string]Item
}

func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{byKey: map[string]Item{}}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func (s *ItemSet) Add(it Item) {
	s.byKey[it.key()] = it
}

func (s *ItemSet) Has(it Item) bool {
	_, ok := s.byKey[it.key()]
	return ok
}

func (s *ItemSet) Len() int { return len(s.byKey) }

// Sorted returns the items in a deterministic order: by rule index, then
// production index, then dot position. This is the canonical form used to
// key canonical-collection states by item-set equality.
func (s *ItemSet) Sorted() []Item {
	out := make([]Item, 0, len(s.byKey))
	for _, it := range s.byKey {
		out = append(out, it)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessItem(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func lessItem(a, b Item) bool {
	if a.Rule.RuleIndex != b.Rule.RuleIndex {
		return a.Rule.RuleIndex < b.Rule.RuleIndex
	}
	if a.Rule.ProductionIndex != b.Rule.ProductionIndex {
		return a.Rule.ProductionIndex < b.Rule.ProductionIndex
	}
	return len(a.Left) < len(b.Left)
}

// Key returns a string uniquely identifying the item-set's contents,
// independent of insertion order, used to detect "equals an existing
// state's item-set" during canonical-collection construction.
func (s *ItemSet) Key() string {
	items := s.Sorted()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.key()
	}
	return strings.Join(parts, "||")
}

// initialItem returns the item (rule -> . rhs) for a production, the seed
// closure adds for every nonterminal found after a dot.
func initialItem(g *Grammar, id ProductionRuleID) Item {
	p := g.Production(id)
	return Item{
		Rule:        id,
		NonTerminal: g.NonTerminalOf(id),
		Left:        nil,
		Right:       append([]string{}, p.Symbols...),
	}
}

// Closure computes the least superset of the seed items such that, for
// every item (A -> alpha . B beta) with B a nonterminal, every production
// (B -> gamma)'s initial item is also in the set.
func Closure(g *Grammar, seed []Item) *ItemSet {
	set := NewItemSet(seed...)
	work := append([]Item{}, seed...)

	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]

		next := it.NextSymbol()
		if next == "" || !g.IsNonTerminal(next) {
			continue
		}
		rule, ok := g.RuleFor(next)
		if !ok {
			continue
		}
		ruleIdx, _ := g.ruleIndexFor(next)
		for pi := range rule.Productions {
			id := ProductionRuleID{RuleIndex: ruleIdx, ProductionIndex: pi}
			newItem := initialItem(g, id)
			if !set.Has(newItem) {
				set.Add(newItem)
				work = append(work, newItem)
			}
		}
	}
	return set
}

// Goto computes GOTO(I, X): the closure of every item in I advanced past a
// leading X.
func Goto(g *Grammar, items *ItemSet, sym string) *ItemSet {
	var seed []Item
	for _, it := range items.Sorted() {
		if it.NextSymbol() == sym {
			seed = append(seed, it.Advance())
		}
	}
	if len(seed) == 0 {
		return NewItemSet()
	}
	return Closure(g, seed)
}

// SymbolsAfterDot returns, in sorted order, every distinct symbol
// immediately following a dot in some item of the set. These are the
// symbols for which GOTO must be computed when building the canonical
// collection.
func (s *ItemSet) SymbolsAfterDot() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range s.Sorted() {
		sym := it.NextSymbol()
		if sym != "" && !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
