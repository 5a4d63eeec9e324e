package regexc

import (
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/internal/util"
)

// precedence gives the shunting-yard precedence: `*`=2, `&`=1, `|`=0,
// `(`=-1 (sentinel, never popped by comparison).
func precedence(t token) int {
	switch t.kind {
	case tokStar:
		return 2
	case tokConcat:
		return 1
	case tokUnion:
		return 0
	case tokLParen:
		return -1
	}
	return -1
}

// Parse compiles a surface regex string into a syntax tree. The literal
// string "e" is special-cased by Compile, but Parse itself treats it
// uniformly as an EmptyNode operand.
func Parse(expr string) (Node, error) {
	toks, err := scan(expr)
	if err != nil {
		return nil, err
	}
	toks = insertConcat(toks)

	var operands util.Stack[Node]
	var operators util.Stack[token]

	popAndBuild := func(op token) error {
		switch op.kind {
		case tokStar:
			if operands.Empty() {
				return ictioerr.InvalidExpressionf("regex %q: operand stack underflow at `*`", expr)
			}
			child := operands.Pop()
			operands.Push(&Star{Child: child})
		case tokConcat, tokUnion:
			if operands.Len() < 2 {
				return ictioerr.InvalidExpressionf("regex %q: operand stack underflow at binary operator", expr)
			}
			right := operands.Pop()
			left := operands.Pop()
			if op.kind == tokConcat {
				operands.Push(&Concat{Left: left, Right: right})
			} else {
				operands.Push(&Union{Left: left, Right: right})
			}
		}
		return nil
	}

	for _, t := range toks {
		switch t.kind {
		case tokOperand:
			if t.isEmpty {
				operands.Push(&EmptyNode{})
			} else {
				operands.Push(&Leaf{Sym: t.sym})
			}
		case tokLParen:
			operators.Push(t)
		case tokRParen:
			found := false
			for !operators.Empty() {
				top := operators.Pop()
				if top.kind == tokLParen {
					found = true
					break
				}
				if err := popAndBuild(top); err != nil {
					return nil, err
				}
			}
			if !found {
				return nil, ictioerr.InvalidExpressionf("regex %q: unbalanced parentheses", expr)
			}
		default: // tokStar, tokConcat, tokUnion
			for !operators.Empty() && precedence(operators.Peek()) >= precedence(t) {
				top := operators.Pop()
				if err := popAndBuild(top); err != nil {
					return nil, err
				}
			}
			operators.Push(t)
		}
	}

	for !operators.Empty() {
		top := operators.Pop()
		if top.kind == tokLParen {
			return nil, ictioerr.InvalidExpressionf("regex %q: unbalanced parentheses", expr)
		}
		if err := popAndBuild(top); err != nil {
			return nil, err
		}
	}

	if operands.Len() != 1 {
		return nil, ictioerr.InvalidExpressionf("regex %q: malformed expression (left %d operands on stack)", expr, operands.Len())
	}
	return operands.Pop(), nil
}
