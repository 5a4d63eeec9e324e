package parse

import (
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/internal/util"
)

// TokenSource is what the driver pulls tokens from. ok is false once the
// stream is exhausted; the driver then synthesizes the end-of-input
// sentinel itself rather than requiring the source to do so.
type TokenSource interface {
	Next() (tok Token, ok bool, err error)
}

type stackEntry struct {
	state int
	node  *Node
}

// Parse drives t's action/goto table over src, building a parse tree by
// the shift/reduce algorithm (purple dragon book algorithm 4.44).
//
// Known limitation: when an undefined action is hit, the ε-rule fallback
// fires if *any* item in the current state has an empty rhs and takes the
// first such item, without distinguishing between multiple ε-rules
// reachable from the same state.
func (t *Table) Parse(src TokenSource) (*Node, error) {
	var stack util.Stack[stackEntry]
	stack.Push(stackEntry{state: 0, node: nil})

	cur, hasTok, err := src.Next()
	if err != nil {
		return nil, err
	}
	nextTok := func() (Token, error) {
		if !hasTok {
			return simpleToken{class: grammar.EndOfInput}, nil
		}
		return cur, nil
	}
	advance := func() error {
		cur, hasTok, err = src.Next()
		return err
	}

	for {
		top := stack.Peek()
		tok, err := nextTok()
		if err != nil {
			return nil, err
		}

		act, ok := t.Action[top.state][tok.Class()]
		if !ok {
			epsItems := t.ItemsWithEpsilonRHS(top.state)
			if len(epsItems) == 0 {
				return nil, t.syntaxError(top.state, tok)
			}
			it := epsItems[0]
			leaf := &Node{Symbol: "eps", IsLeaf: true}
			wrapped := &Node{Symbol: it.NonTerminal, Children: []*Node{leaf}}
			succ, ok := t.Goto[top.state][it.NonTerminal]
			if !ok {
				return nil, ictioerr.SourceFileSyntaxf(
					"state %d: epsilon-rule escape for %q has no goto entry", top.state, it.NonTerminal)
			}
			stack.Push(stackEntry{state: succ, node: wrapped})
			continue
		}

		switch act.Kind {
		case ActionShift:
			leaf := &Node{Symbol: tok.Lexeme(), IsLeaf: true}
			stack.Push(stackEntry{state: act.State, node: leaf})
			if err := advance(); err != nil {
				return nil, err
			}

		case ActionReduce:
			prod := t.g.Production(act.Rule)
			n := len(prod.Symbols)
			var children []*Node
			if n == 0 {
				children = []*Node{{Symbol: "eps", IsLeaf: true}}
			} else {
				children = make([]*Node, n)
				for i := n - 1; i >= 0; i-- {
					children[i] = stack.Pop().node
				}
			}
			nt := t.g.NonTerminalOf(act.Rule)
			newNode := &Node{Symbol: nt, Children: children}

			newTop := stack.Peek().state
			succ, ok := t.Goto[newTop][nt]
			if !ok {
				return nil, ictioerr.SourceFileSyntaxf(
					"state %d: reduce to %q has no goto entry", newTop, nt)
			}
			stack.Push(stackEntry{state: succ, node: newNode})

		case ActionAccept:
			top := stack.Peek()
			return top.node, nil

		default:
			return nil, t.syntaxError(top.state, tok)
		}
	}
}

// syntaxError builds the SourceFileSyntaxError for an undefined action,
// listing the token classes the state does have actions for.
func (t *Table) syntaxError(state int, tok Token) error {
	var expected []string
	for _, sym := range util.OrderedKeys(t.Action[state]) {
		expected = append(expected, util.ArticleFor(sym, false)+" "+sym)
	}
	// The expected tokens are alternatives, so the list is joined with "or".
	list := ""
	for i, e := range expected {
		switch {
		case i == 0:
		case len(expected) == 2:
			list += " or "
		case i == len(expected)-1:
			list += ", or "
		default:
			list += ", "
		}
		list += e
	}
	return ictioerr.SourceFileSyntaxf(
		"state %d: unexpected %q token; expected %s",
		state, tok.Class(), list)
}
