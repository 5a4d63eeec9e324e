package specfile

import (
	"io"
	"strings"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/regexc"
)

// ReadNFA parses an NFA spec file: same header as the DFA format, but the
// transitions section is of unknown length and is terminated by a blank
// line, ε is spelled "e" in the sym position, and a start-state line and
// accept-states line follow the blank line.
func ReadNFA(r io.Reader) (*automaton.NFA, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	numStates, err := parseIntLine(lines, 0, "nfa spec file")
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ictioerr.FileFormatf("nfa spec file: missing alphabet line")
	}
	alphabet := splitAlphabet(lines[1])
	if err := regexc.ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}

	nfa := automaton.NewNFA(numStates, alphabet)

	idx := 2
	for idx < len(lines) && strings.TrimSpace(lines[idx]) != "" {
		from, sym, to, err := parseTransitionLine(lines[idx])
		if err != nil {
			return nil, err
		}
		if sym == "e" {
			sym = ""
		}
		nfa.AddTransition(from, sym, to)
		idx++
	}
	if idx >= len(lines) {
		return nil, ictioerr.FileFormatf("nfa spec file: missing blank line terminating transitions section")
	}
	idx++ // skip the blank line

	start, err := parseIntLine(lines, idx, "nfa spec file start state")
	if err != nil {
		return nil, err
	}
	nfa.Start = util.NewIntSet([]int{start})
	idx++

	if idx >= len(lines) {
		return nil, ictioerr.FileFormatf("nfa spec file: missing accept-states line")
	}
	accepts, err := parseIntList(lines[idx])
	if err != nil {
		return nil, err
	}
	for _, a := range accepts {
		nfa.Accept[a] = true
	}

	return nfa, nil
}
