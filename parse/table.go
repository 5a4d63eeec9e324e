// Package parse implements the parser generator and driver: canonical
// LR(0) collection construction, SLR(1) action/goto table filling with
// conflict detection, and the shift/reduce parse-tree driver.
package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// ActionKind distinguishes the three LR driver actions, plus a zero value
// meaning "no action defined for this (state, symbol)".
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one cell of the action table.
type Action struct {
	Kind  ActionKind
	State int                      // target state, for Shift
	Rule  grammar.ProductionRuleID // production to reduce by, for Reduce
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %s", a.Rule)
	case ActionAccept:
		return "accept"
	default:
		return ""
	}
}

// Table is the generated SLR(1) action/goto table: one state per row of
// the canonical collection, keyed by terminal (action) or nonterminal
// (goto). State 0 is always the closure of the synthesized start item.
type Table struct {
	ID uuid.UUID

	g *grammar.Grammar

	// States holds each canonical-collection state's item-set, in
	// construction order; State id == index into this slice.
	States []*grammar.ItemSet

	Action map[int]map[string]Action
	Goto   map[int]map[string]int
}

// Generate builds the SLR(1) parse table for g, which must already have
// Finalize called. Returns NonLRGrammarError on any shift/reduce,
// reduce/reduce, or action/Accept conflict.
func Generate(g *grammar.Grammar) (*Table, error) {
	ff := grammar.Compute(g)

	t := &Table{
		ID:     uuid.New(),
		g:      g,
		Action: map[int]map[string]Action{},
		Goto:   map[int]map[string]int{},
	}

	r0 := grammar.ProductionRuleID{RuleIndex: 0, ProductionIndex: 0}
	startItem := grammar.Item{
		Rule:        r0,
		NonTerminal: grammar.DummyStart,
		Left:        nil,
		Right:       []string{g.StartSymbol()},
	}
	start := grammar.Closure(g, []grammar.Item{startItem})

	t.States = append(t.States, start)
	indexOf := map[string]int{start.Key(): 0}

	// Worklist construction of the canonical collection: process states as
	// they're discovered, assigning the next free index to each newly seen
	// item-set. State identity is item-set equality.
	for stateID := 0; stateID < len(t.States); stateID++ {
		state := t.States[stateID]
		for _, sym := range state.SymbolsAfterDot() {
			succ := grammar.Goto(g, state, sym)
			if succ.Len() == 0 {
				continue
			}
			succID, ok := indexOf[succ.Key()]
			if !ok {
				succID = len(t.States)
				indexOf[succ.Key()] = succID
				t.States = append(t.States, succ)
			}

			if g.IsTerminal(sym) {
				if err := t.setAction(stateID, sym, Action{Kind: ActionShift, State: succID}); err != nil {
					return nil, err
				}
			} else if sym != "" && sym != grammar.EndOfInput {
				if t.Goto[stateID] == nil {
					t.Goto[stateID] = map[string]int{}
				}
				if prev, ok := t.Goto[stateID][sym]; ok && prev != succID {
					return nil, ictioerr.NonLRGrammarf("state %d: conflicting goto on %q (%d vs %d)", stateID, sym, prev, succID)
				}
				t.Goto[stateID][sym] = succID
			}
		}
	}

	// Fill Accept and Reduce actions from completed items.
	for stateID, state := range t.States {
		for _, it := range state.Sorted() {
			if !it.AtEnd() {
				continue
			}
			if it.Rule == r0 {
				if err := t.setAction(stateID, grammar.EndOfInput, Action{Kind: ActionAccept}); err != nil {
					return nil, err
				}
				continue
			}
			for _, lookahead := range ff.Follow(it.NonTerminal).Sorted() {
				if lookahead == "" {
					continue
				}
				if err := t.setAction(stateID, lookahead, Action{Kind: ActionReduce, Rule: it.Rule}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// setAction records action[state][sym] = act, raising NonLRGrammarError on
// a conflicting pre-existing entry. Multiple identical Accepts in the same
// state are not an error; a conflict between Accept and any other action
// kind, or between two differing Shift/Reduce actions, is.
func (t *Table) setAction(state int, sym string, act Action) error {
	if t.Action[state] == nil {
		t.Action[state] = map[string]Action{}
	}
	existing, ok := t.Action[state][sym]
	if ok && existing != act {
		return ictioerr.NonLRGrammarf(
			"state %d: conflicting actions on %q: %s vs %s", state, sym, existing, act)
	}
	t.Action[state][sym] = act
	return nil
}

// ItemsWithEpsilonRHS returns every item in the given state whose
// production is the bare ε-rule, i.e. rhs length 0. Used by the driver's
// ε-rule escape hatch.
func (t *Table) ItemsWithEpsilonRHS(state int) []grammar.Item {
	var out []grammar.Item
	for _, it := range t.States[state].Sorted() {
		if it.AtEnd() && len(it.Left) == 0 {
			out = append(out, it)
		}
	}
	return out
}

// String renders the action/goto table for debugging and the CLI's
// --dump-table flag.
func (t *Table) String() string {
	terms := t.g.Terminals() // includes EndOfInput once Finalize has run
	nonterms := t.g.NonTerminals()
	sort.Strings(nonterms)

	header := append([]string{"state"}, terms...)
	header = append(header, nonterms...)

	rows := [][]string{header}
	for stateID := range t.States {
		row := []string{fmt.Sprintf("%d", stateID)}
		for _, term := range terms {
			if act, ok := t.Action[stateID][term]; ok {
				row = append(row, act.String())
			} else {
				row = append(row, "")
			}
		}
		for _, nt := range nonterms {
			if to, ok := t.Goto[stateID][nt]; ok {
				row = append(row, fmt.Sprintf("%d", to))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, rows, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
