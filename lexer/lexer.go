// Package lexer implements token-class compilation via regexc and
// automaton, and a maximal-munch streaming scanner over the compiled DFAs.
package lexer

import (
	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/regexc"
	"github.com/google/uuid"
)

// ClassSpec is one (name, pattern) entry of a token-spec, in declaration
// (= priority) order.
type ClassSpec struct {
	Name    string
	Pattern string
}

// compiledClass pairs a declared class with its compiled DFA.
type compiledClass struct {
	name string
	dfa  *automaton.DFA
}

// Lexer is a compiled token-spec: an ordered list of token classes, each
// backed by a DFA, plus the alphabet Σ the source text must stay within.
type Lexer struct {
	ID uuid.UUID

	Alphabet util.StringSet
	classes  []compiledClass
}

// Compile builds a Lexer from an alphabet and an ordered list of class
// specs, compiling each class's regex down to a DFA. Duplicate class names
// are rejected with FileFormatError, since a token-spec file is the only
// place duplicates can originate.
func Compile(alphabet []string, specs []ClassSpec) (*Lexer, error) {
	if err := regexc.ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}

	seen := util.NewStringSet()
	lx := &Lexer{
		ID:       uuid.New(),
		Alphabet: util.StringSetOf(alphabet),
	}
	for _, spec := range specs {
		if seen.Has(spec.Name) {
			return nil, ictioerr.FileFormatf("lexer: duplicate token class name %q", spec.Name)
		}
		seen.Add(spec.Name)

		nfa, err := regexc.Compile(spec.Pattern)
		if err != nil {
			return nil, err
		}
		dfa, err := nfa.ToDFA()
		if err != nil {
			return nil, err
		}
		lx.classes = append(lx.classes, compiledClass{name: spec.Name, dfa: dfa})
	}
	return lx, nil
}
