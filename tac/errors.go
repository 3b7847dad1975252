package tac

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal conditions. Analysis cannot continue after any of them.
var (
	// ErrUnexpectedEOF is returned when the source ends while the
	// translator still expects tokens.
	ErrUnexpectedEOF = errors.New("source ended while tokens were still expected")
	// ErrSourceRead is returned when a source line cannot be read.
	ErrSourceRead = errors.New("the lexical analyzer failed to read the source")
	// ErrOutputWrite is returned when quadruples cannot be written.
	ErrOutputWrite = errors.New("cannot write quadruples")
)

// Error represents a grammar violation found during translation.
type Error struct {
	Message  string
	Found    string
	Expected []string
	Pos      Position
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Pos.Line+1, e.Pos.Column+1)
	}
	return fmt.Sprintf("found %s, expected %s at line %d, char %d", e.Found,
		strings.Join(e.Expected, ", "), e.Pos.Line+1, e.Pos.Column+1)
}

// newError returns a grammar error positioned at the offending token.
func newError(message string, found Token, expected ...string) *Error {
	return &Error{
		Message:  message,
		Found:    found.Lexeme,
		Expected: expected,
		Pos:      found.Position,
	}
}

// IsGrammarError reports whether err is a grammar violation rather than
// a fatal condition.
func IsGrammarError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
