// Package grammar implements the data model shared by the parser generator
// and driver: terminals, nonterminals, rules, FIRST/FOLLOW sets, and LR(0)
// items with closure and GOTO.
package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/internal/util"
)

// EndOfInput is the reserved terminal appended to every input stream, used
// as the lookahead that triggers Accept.
const EndOfInput = "$"

// DummyStart is the reserved nonterminal of the synthesized rule r0 =
// (DummyStart -> S) inserted at index 0 of every grammar.
const DummyStart = "S'"

// Production is one rhs alternative. A zero-length Symbols denotes the
// ε-production (the grammar file's "eps" rhs lowers to this at load time).
type Production struct {
	Symbols []string
}

func (p Production) String() string {
	if len(p.Symbols) == 0 {
		return "ε"
	}
	return strings.Join(p.Symbols, " ")
}

// Rule is one nonterminal's full set of alternatives, LHS -> P1 | P2 | ...
type Rule struct {
	NonTerminal string
	Productions []Production
}

// Grammar is the rule set plus derived terminal/nonterminal classification.
// Rules are stored in declaration order; rule 0 is always the synthesized
// start rule (DummyStart -> userStart) once Finalize has run.
type Grammar struct {
	rulesByLHS map[string]int // index into Rules
	Rules      []Rule
	terminals  util.StringSet
	start      string
	finalized  bool
}

// NewGrammar returns an empty grammar ready for AddTerm/AddRule calls.
func NewGrammar() *Grammar {
	return &Grammar{
		rulesByLHS: map[string]int{},
		terminals:  util.NewStringSet(),
	}
}

// AddTerm declares sym as a terminal symbol of the grammar.
func (g *Grammar) AddTerm(sym string) {
	g.terminals.Add(sym)
}

// IsTerminal reports whether sym was declared with AddTerm.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Has(sym)
}

// IsNonTerminal reports whether sym names a rule's LHS.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rulesByLHS[sym]
	return ok
}

// Terminals returns the declared terminal set, sorted.
func (g *Grammar) Terminals() []string {
	return g.terminals.Sorted()
}

// NonTerminals returns the set of rule LHS symbols, in first-declaration
// order (the order AddRule was first called for each LHS).
func (g *Grammar) NonTerminals() []string {
	out := make([]string, 0, len(g.Rules))
	for _, r := range g.Rules {
		out = append(out, r.NonTerminal)
	}
	return out
}

// AddRule adds one production to nonTerm's rule, creating the rule (and
// setting the grammar's user start symbol, if this is the first rule added
// at all) if it doesn't already exist. This is called once per rhs line of
// the grammar file's rules section.
func (g *Grammar) AddRule(nonTerm string, production []string) {
	if len(g.Rules) == 0 {
		g.start = nonTerm
	}
	idx, ok := g.rulesByLHS[nonTerm]
	if !ok {
		idx = len(g.Rules)
		g.rulesByLHS[nonTerm] = idx
		g.Rules = append(g.Rules, Rule{NonTerminal: nonTerm})
	}
	g.Rules[idx].Productions = append(g.Rules[idx].Productions, Production{Symbols: production})
}

// StartSymbol returns the user's start symbol: the LHS of the first rule
// added, before Finalize inserts the synthesized r0.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// Finalize inserts the synthesized rule r0 = (DummyStart -> S) at index 0
// and injects the reserved EndOfInput symbol into the terminal set.
// Idempotent; safe to call more than once.
func (g *Grammar) Finalize() {
	if g.finalized {
		return
	}
	g.terminals.Add(EndOfInput)
	r0 := Rule{NonTerminal: DummyStart, Productions: []Production{{Symbols: []string{g.start}}}}
	g.Rules = append([]Rule{r0}, g.Rules...)
	for lhs, idx := range g.rulesByLHS {
		g.rulesByLHS[lhs] = idx + 1
	}
	g.rulesByLHS[DummyStart] = 0
	g.finalized = true
}

// RuleFor returns the Rule for a nonterminal, and whether it exists.
func (g *Grammar) RuleFor(nonTerm string) (Rule, bool) {
	idx, ok := g.rulesByLHS[nonTerm]
	if !ok {
		return Rule{}, false
	}
	return g.Rules[idx], true
}

// ruleIndexFor is RuleFor's counterpart returning just the index, used by
// the item/FIRST/FOLLOW machinery that needs rule ids.
func (g *Grammar) ruleIndexFor(nonTerm string) (int, bool) {
	idx, ok := g.rulesByLHS[nonTerm]
	return idx, ok
}

// ProductionRuleID identifies a single (rule index, production index) pair,
// which is what the canonical-collection construction calls a "rule id"
// when filling Reduce actions.
type ProductionRuleID struct {
	RuleIndex       int
	ProductionIndex int
}

func (id ProductionRuleID) String() string {
	return fmt.Sprintf("r%d.%d", id.RuleIndex, id.ProductionIndex)
}

// Production looks up the production a ProductionRuleID names.
func (g *Grammar) Production(id ProductionRuleID) Production {
	return g.Rules[id.RuleIndex].Productions[id.ProductionIndex]
}

// NonTerminalOf returns the LHS that a ProductionRuleID's rule belongs to.
func (g *Grammar) NonTerminalOf(id ProductionRuleID) string {
	return g.Rules[id.RuleIndex].NonTerminal
}

// AllProductions iterates every (rule index, production index) pair in
// declaration order, the canonical rule-id ordering that keeps state
// numbering deterministic across runs.
func (g *Grammar) AllProductions() []ProductionRuleID {
	var out []ProductionRuleID
	for ri, r := range g.Rules {
		for pi := range r.Productions {
			out = append(out, ProductionRuleID{RuleIndex: ri, ProductionIndex: pi})
		}
	}
	return out
}

// Validate checks that every symbol appearing on a rhs is either a declared
// terminal, a declared nonterminal (an LHS), or ε (the empty production).
// Undeclared symbols are a FileFormatError, since they can only arise from
// a malformed grammar file.
func (g *Grammar) Validate() error {
	for _, r := range g.Rules {
		for _, p := range r.Productions {
			for _, sym := range p.Symbols {
				if !g.IsTerminal(sym) && !g.IsNonTerminal(sym) {
					return ictioerr.FileFormatf("grammar: symbol %q in rule for %q is neither a declared terminal nor a nonterminal", sym, r.NonTerminal)
				}
			}
		}
	}
	return nil
}

// String renders the grammar's rules in declaration order, one nonterminal
// per line, for debugging.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, r := range g.Rules {
		parts := make([]string, len(r.Productions))
		for i, p := range r.Productions {
			parts[i] = p.String()
		}
		fmt.Fprintf(&sb, "%s -> %s\n", r.NonTerminal, strings.Join(parts, " | "))
	}
	return sb.String()
}
