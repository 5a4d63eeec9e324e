package regexc

import (
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/dekarrin/ictiobus/ictioerr"
)

// ValidateAlphabet checks that every declared alphabet symbol is exactly
// one rune and that the rune is narrow. A full-width rune would silently
// desync the per-character column indexing that automaton.DFA.Simulate and
// the spec-file readers rely on, so it is rejected up front.
func ValidateAlphabet(alphabet []string) error {
	for _, sym := range alphabet {
		if utf8.RuneCountInString(sym) != 1 {
			return ictioerr.FileFormatf("alphabet symbol %q is not a single character", sym)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			return ictioerr.FileFormatf("alphabet symbol %q is a full-width character, not allowed", sym)
		}
	}
	return nil
}
