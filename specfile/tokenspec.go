package specfile

import (
	"io"
	"strings"

	"github.com/dekarrin/ictiobus/ictioerr"
	"github.com/dekarrin/ictiobus/lexer"
)

// TokenSpecFile is the parsed form of a regex/token-class file: a quoted
// alphabet line followed by one `CLASS_NAME "regex"` line per token class,
// in priority (declaration) order.
type TokenSpecFile struct {
	Alphabet []string
	Classes  []lexer.ClassSpec
}

// ReadTokenSpec parses a token-spec file and compiles it directly into a
// *lexer.Lexer.
func ReadTokenSpec(r io.Reader) (*lexer.Lexer, error) {
	spec, err := parseTokenSpecFile(r)
	if err != nil {
		return nil, err
	}
	return lexer.Compile(spec.Alphabet, spec.Classes)
}

func parseTokenSpecFile(r io.Reader) (*TokenSpecFile, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ictioerr.FileFormatf("token-class file: empty file, expected quoted alphabet line")
	}

	alphabetStr, err := parseQuoted(lines[0])
	if err != nil {
		return nil, ictioerr.WrapFileFormat(err, "token-class file: line 1 must be a quoted alphabet")
	}

	spec := &TokenSpecFile{Alphabet: splitAlphabet(alphabetStr)}
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, pattern, err := parseClassLine(line)
		if err != nil {
			return nil, ictioerr.WrapFileFormat(err, "token-class file: line %d", i+2)
		}
		spec.Classes = append(spec.Classes, lexer.ClassSpec{Name: name, Pattern: pattern})
	}
	return spec, nil
}

// parseQuoted extracts the content of a `"..."`-quoted line.
func parseQuoted(line string) (string, error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '"' || line[len(line)-1] != '"' {
		return "", ictioerr.FileFormatf("expected a quoted string, got %q", line)
	}
	return line[1 : len(line)-1], nil
}

// parseClassLine parses `CLASS_NAME "regex"`.
func parseClassLine(line string) (name, pattern string, err error) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return "", "", ictioerr.FileFormatf("expected `NAME \"regex\"`, got %q", line)
	}
	name = line[:sp]
	pattern, err = parseQuoted(line[sp+1:])
	if err != nil {
		return "", "", err
	}
	return name, pattern, nil
}
