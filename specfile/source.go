package specfile

import "io"

// ReadSource reads a source file as free text; tokenization and
// whitespace-skipping happen downstream in lexer.Scanner.
func ReadSource(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
