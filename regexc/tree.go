// Package regexc implements the regex compiler: surface syntax to syntax
// tree, and syntax tree to automaton.NFA via Thompson construction.
//
// The surface syntax has union `|`, implicit concatenation, Kleene star
// `*`, grouping parens, `\x` escapes for literal meta-characters, and a
// bare `e` denoting the empty-string language.
package regexc

import "fmt"

// Node is a syntax-tree node produced by shunting the surface regex. The
// concrete node types below are the only kinds that exist.
type Node interface {
	// String renders the node for diagnostics.
	String() string
}

// Leaf is a single literal symbol, e.g. the `a` in `a|b`.
type Leaf struct {
	Sym string
}

func (n *Leaf) String() string { return fmt.Sprintf("Leaf(%s)", n.Sym) }

// EmptyNode is the literal `e` operand denoting the empty-string language
// {ε}.
type EmptyNode struct{}

func (n *EmptyNode) String() string { return "Empty" }

// Star is Kleene star applied to a single child.
type Star struct {
	Child Node
}

func (n *Star) String() string { return fmt.Sprintf("Star(%s)", n.Child) }

// Concat is the explicit concatenation `&` operator's node, built from the
// concatenation-insertion rewrite.
type Concat struct {
	Left, Right Node
}

func (n *Concat) String() string { return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right) }

// Union is the `|` operator's node.
type Union struct {
	Left, Right Node
}

func (n *Union) String() string { return fmt.Sprintf("Union(%s, %s)", n.Left, n.Right) }
