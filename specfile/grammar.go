package specfile

import (
	"io"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/ictioerr"
)

// ReadGrammar parses a grammar file:
// whitespace-separated terminals (possibly spanning multiple lines) until
// a line containing exactly "%%", then one rule per line of the form
// "LHS : SYM1 SYM2 ...". The symbol "eps" alone on a rhs denotes ε. The
// first rule's LHS becomes the grammar's user start symbol; Finalize
// inserts the synthesized r0 before this function returns.
func ReadGrammar(r io.Reader) (*grammar.Grammar, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	g := grammar.NewGrammar()

	idx := 0
	sepFound := false
	for ; idx < len(lines); idx++ {
		if strings.TrimSpace(lines[idx]) == "%%" {
			sepFound = true
			idx++
			break
		}
		for _, term := range strings.Fields(lines[idx]) {
			g.AddTerm(term)
		}
	}
	if !sepFound {
		return nil, ictioerr.FileFormatf("grammar file: missing %%%% separator before rules section")
	}

	for ; idx < len(lines); idx++ {
		line := strings.TrimSpace(lines[idx])
		if line == "" {
			continue
		}
		if line == "%%" {
			break
		}
		lhs, rhs, err := parseRuleLine(line, idx+1)
		if err != nil {
			return nil, err
		}
		g.AddRule(lhs, rhs)
	}

	if g.StartSymbol() == "" {
		return nil, ictioerr.FileFormatf("grammar file: no rules declared")
	}

	g.Finalize()
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// parseRuleLine parses "LHS : SYM1 SYM2 ...", lowering a lone "eps" rhs
// to the empty production.
func parseRuleLine(line string, lineNo int) (lhs string, rhs []string, err error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", nil, ictioerr.FileFormatf("grammar file: line %d: missing required `:` sentinel: %q", lineNo, line)
	}
	lhs = strings.TrimSpace(line[:colon])
	if lhs == "" {
		return "", nil, ictioerr.FileFormatf("grammar file: line %d: empty LHS", lineNo)
	}
	rhsFields := strings.Fields(line[colon+1:])
	if len(rhsFields) == 1 && rhsFields[0] == "eps" {
		return lhs, nil, nil
	}
	return lhs, rhsFields, nil
}
