// Package ictioerr defines the fixed error taxonomy that every ictiobus
// phase reports into: FileFormatError, InvalidExpression, InvalidToken,
// NonLRGrammarError, and SourceFileSyntaxError. Each kind is a distinct
// sentinel that callers can test with errors.Is, wrapping an optional
// human-readable detail and an optional cause.
package ictioerr

import "fmt"

// kindError is the shared shape behind every exported error kind.
type kindError struct {
	kind string
	msg  string
	wrap error
}

func (e *kindError) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.wrap.Error())
	}
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.wrap
}

// Is reports whether target is the sentinel for this error's kind, so that
// errors.Is(err, ErrInvalidToken) works across wrapping.
func (e *kindError) Is(target error) bool {
	sentinel, ok := target.(*kindError)
	if !ok {
		return false
	}
	return sentinel.wrap == nil && sentinel.msg == "" && sentinel.kind == e.kind
}

// Sentinels for use with errors.Is. They carry no message; constructing one
// of the Xf functions below produces a distinct *kindError that Is() will
// still match against these.
var (
	ErrFileFormat        = &kindError{kind: "FileFormatError"}
	ErrInvalidExpression = &kindError{kind: "InvalidExpression"}
	ErrInvalidToken      = &kindError{kind: "InvalidToken"}
	ErrNonLRGrammar      = &kindError{kind: "NonLRGrammarError"}
	ErrSourceFileSyntax  = &kindError{kind: "SourceFileSyntaxError"}
)

// FileFormatf returns a FileFormatError: a spec file (DFA, NFA, token-class,
// or grammar file) violates its required format.
func FileFormatf(format string, args ...interface{}) error {
	return &kindError{kind: ErrFileFormat.kind, msg: fmt.Sprintf(format, args...)}
}

// InvalidExpressionf returns an InvalidExpression error: a regex is
// malformed (unbalanced parens, operand/operator stack underflow, reserved
// symbol misuse).
func InvalidExpressionf(format string, args ...interface{}) error {
	return &kindError{kind: ErrInvalidExpression.kind, msg: fmt.Sprintf(format, args...)}
}

// InvalidTokenf returns an InvalidToken error: the lexer could not extract a
// token at the current scan position though input remains.
func InvalidTokenf(format string, args ...interface{}) error {
	return &kindError{kind: ErrInvalidToken.kind, msg: fmt.Sprintf(format, args...)}
}

// NonLRGrammarf returns a NonLRGrammarError: table construction found a
// shift/reduce, reduce/reduce, or duplicate-Accept conflict.
func NonLRGrammarf(format string, args ...interface{}) error {
	return &kindError{kind: ErrNonLRGrammar.kind, msg: fmt.Sprintf(format, args...)}
}

// SourceFileSyntaxf returns a SourceFileSyntaxError: the LR driver reached a
// state with no action for the current token and no ε-rule escape applies.
func SourceFileSyntaxf(format string, args ...interface{}) error {
	return &kindError{kind: ErrSourceFileSyntax.kind, msg: fmt.Sprintf(format, args...)}
}

// WrapSourceFileSyntax wraps cause in a SourceFileSyntaxError with the given
// message.
func WrapSourceFileSyntax(cause error, format string, args ...interface{}) error {
	return &kindError{kind: ErrSourceFileSyntax.kind, msg: fmt.Sprintf(format, args...), wrap: cause}
}

// WrapFileFormat wraps cause in a FileFormatError with the given message.
func WrapFileFormat(cause error, format string, args ...interface{}) error {
	return &kindError{kind: ErrFileFormat.kind, msg: fmt.Sprintf(format, args...), wrap: cause}
}
