// Package specfile implements the line-oriented readers for the five input
// file formats: DFA spec, NFA spec, regex/token-class spec, grammar, and
// source text.
package specfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/regexc"
)

// readLines reads every line of r, stripping the line terminator ("\n" or
// "\r\n") but nothing else.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func parseIntLine(lines []string, idx int, what string) (int, error) {
	if idx >= len(lines) {
		return 0, ictioerr.FileFormatf("%s: expected line %d (%s), got EOF", what, idx+1, what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[idx]))
	if err != nil {
		return 0, ictioerr.WrapFileFormat(err, "%s: line %d is not an integer: %q", what, idx+1, lines[idx])
	}
	return n, nil
}

func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, ictioerr.WrapFileFormat(err, "expected integer, got %q", f)
		}
		out[i] = n
	}
	return out, nil
}

// parseTransitionLine parses "from 'sym' to" with from,to integers and
// sym a single quoted character.
func parseTransitionLine(line string) (from int, sym string, to int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, "", 0, ictioerr.FileFormatf("transition line %q: expected 3 fields \"from 'sym' to\"", line)
	}
	from, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", 0, ictioerr.WrapFileFormat(err, "transition line %q: bad from-state", line)
	}
	to, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, "", 0, ictioerr.WrapFileFormat(err, "transition line %q: bad to-state", line)
	}
	symField := fields[1]
	if len(symField) < 3 || symField[0] != '\'' || symField[len(symField)-1] != '\'' {
		return 0, "", 0, ictioerr.FileFormatf("transition line %q: symbol must be quoted with '", line)
	}
	sym = symField[1 : len(symField)-1]
	return from, sym, to, nil
}

// ReadDFA parses a DFA spec file: a state-count line, an alphabet line,
// numStates*|alphabet| transition lines, a start-state line, and an
// accept-states line.
func ReadDFA(r io.Reader) (*automaton.DFA, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	numStates, err := parseIntLine(lines, 0, "dfa spec file")
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ictioerr.FileFormatf("dfa spec file: missing alphabet line")
	}
	alphabet := splitAlphabet(lines[1])
	if err := regexc.ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}

	dfa := automaton.NewDFA(numStates, alphabet)

	idx := 2
	for i := 0; i < numStates*len(alphabet); i++ {
		if idx >= len(lines) {
			return nil, ictioerr.FileFormatf("dfa spec file: expected %d transition lines, ran out at line %d", numStates*len(alphabet), idx+1)
		}
		from, sym, to, err := parseTransitionLine(lines[idx])
		if err != nil {
			return nil, err
		}
		dfa.SetTransition(from, sym, to)
		idx++
	}

	start, err := parseIntLine(lines, idx, "dfa spec file start state")
	if err != nil {
		return nil, err
	}
	dfa.Start = start
	idx++

	if idx >= len(lines) {
		return nil, ictioerr.FileFormatf("dfa spec file: missing accept-states line")
	}
	accepts, err := parseIntList(lines[idx])
	if err != nil {
		return nil, err
	}
	for _, a := range accepts {
		dfa.Accept[a] = true
	}

	if err := dfa.Validate(); err != nil {
		return nil, ictioerr.WrapFileFormat(err, "dfa spec file: invalid automaton")
	}
	return dfa, nil
}

// splitAlphabet splits the raw alphabet line into one symbol per rune (the
// trailing newline is not part of Σ; readLines has already stripped it).
func splitAlphabet(line string) []string {
	runes := []rune(line)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// WriteDFA renders dfa back into the DFA spec file format, the inverse of
// ReadDFA.
func WriteDFA(w io.Writer, dfa *automaton.DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, dfa.NumStates)
	fmt.Fprintln(bw, strings.Join(dfa.Alphabet, ""))
	for s := 1; s <= dfa.NumStates; s++ {
		for _, sym := range dfa.Alphabet {
			fmt.Fprintf(bw, "%d '%s' %d\n", s, sym, dfa.Delta[s][sym])
		}
	}
	fmt.Fprintln(bw, dfa.Start)
	var accepts []string
	for s := 1; s <= dfa.NumStates; s++ {
		if dfa.Accept[s] {
			accepts = append(accepts, strconv.Itoa(s))
		}
	}
	fmt.Fprintln(bw, strings.Join(accepts, " "))
	return bw.Flush()
}
