package regexc

import "github.com/dekarrin/ictiobus/ictioerr"

// tokenKind classifies one scanned element of the surface regex syntax.
type tokenKind int

const (
	tokOperand tokenKind = iota // a literal symbol or the `e` empty-language marker
	tokLParen
	tokRParen
	tokStar
	tokUnion
	tokConcat // synthesized by insertConcat; never produced by scan
)

type token struct {
	kind tokenKind
	// sym holds the literal symbol for tokOperand, or "" if this operand is
	// the special `e` empty-language marker (isEmpty true).
	sym     string
	isEmpty bool
}

// scan lowers the surface regex string into a flat token sequence. `\x` is
// an atomic literal token regardless of what x is (including `\(`, `\*`,
// `\e` to escape the reserved meta-characters). A bare `e` is the
// empty-language marker rather than the literal character e.
func scan(expr string) ([]token, error) {
	var toks []token
	runes := []rune(expr)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			i++
			if i >= len(runes) {
				return nil, ictioerr.InvalidExpressionf("regex %q ends with a dangling escape", expr)
			}
			toks = append(toks, token{kind: tokOperand, sym: string(runes[i])})
		case '(':
			toks = append(toks, token{kind: tokLParen})
		case ')':
			toks = append(toks, token{kind: tokRParen})
		case '*':
			toks = append(toks, token{kind: tokStar})
		case '|':
			toks = append(toks, token{kind: tokUnion})
		case 'e':
			toks = append(toks, token{kind: tokOperand, isEmpty: true})
		default:
			toks = append(toks, token{kind: tokOperand, sym: string(r)})
		}
	}
	return toks, nil
}

// isConcatLeft reports whether a token can occur in the x position of the
// concatenation-insertion rule (x ∈ {literal, ), *}).
func isConcatLeft(t token) bool {
	return t.kind == tokOperand || t.kind == tokRParen || t.kind == tokStar
}

// isConcatRight reports whether a token can occur in the y position of the
// concatenation-insertion rule (y ∈ {literal, (}).
func isConcatRight(t token) bool {
	return t.kind == tokOperand || t.kind == tokLParen
}

// insertConcat rewrites the token stream by inserting an explicit tokConcat
// between every adjacent pair (x, y) satisfying isConcatLeft(x) &&
// isConcatRight(y). Idempotent: a concat token is neither a valid left nor
// right operand of the rule, so a second pass inserts nothing.
func insertConcat(toks []token) []token {
	if len(toks) == 0 {
		return toks
	}
	out := make([]token, 0, len(toks)*2)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		if isConcatLeft(toks[i-1]) && isConcatRight(toks[i]) {
			out = append(out, token{kind: tokConcat})
		}
		out = append(out, toks[i])
	}
	return out
}
