package parse

import (
	"fmt"
	"strings"
)

// Token is the minimal interface the driver consumes from a lexer: a token
// class name and the matched lexeme. lexer.Token satisfies this without
// this package importing lexer, avoiding a parse<->lexer import cycle.
type Token interface {
	Class() string
	Lexeme() string
}

// simpleToken is the sentinel end-of-input token the driver feeds itself
// once the lexer reports end-of-stream.
type simpleToken struct {
	class, lexeme string
}

func (t simpleToken) Class() string  { return t.class }
func (t simpleToken) Lexeme() string { return t.lexeme }

// Node is one node of the parse tree. For a terminal leaf, Symbol is the
// matched lexeme and Children is empty; for a nonterminal interior node,
// Symbol is the nonterminal's name. Reducing an ε-production, whether via
// the normal FOLLOW-filled action or the driver's escape hatch, produces a
// single "eps" leaf child.
type Node struct {
	Symbol   string
	IsLeaf   bool
	Children []*Node
}

// PreOrder linearizes the tree depth-first, emitting each node's symbol
// before recursing into its children left to right.
func (n *Node) PreOrder() []string {
	var out []string
	var visit func(*Node)
	visit = func(node *Node) {
		out = append(out, node.Symbol)
		for _, c := range node.Children {
			visit(c)
		}
	}
	visit(n)
	return out
}

// String renders the tree indented, one node per line.
func (n *Node) String() string {
	var sb strings.Builder
	var visit func(*Node, int)
	visit = func(node *Node, depth int) {
		fmt.Fprintf(&sb, "%s%s\n", strings.Repeat("  ", depth), node.Symbol)
		for _, c := range node.Children {
			visit(c, depth+1)
		}
	}
	visit(n, 0)
	return sb.String()
}
