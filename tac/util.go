package tac

// charClass is a column of the transition table.
type charClass uint8

const (
	classLetter charClass = iota
	classDigit
	classOpenBrace  // {
	classCloseBrace // }
	classOpenParen  // (
	classCloseParen // )
	classEqual      // =
	classLess       // <
	classGreater    // >
	classOperator   // # ~ ^ + - * / ; .
	classPunct
	classSpace

	numClasses
)

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// classify returns the input class of ch. It returns false for characters
// the language does not know; those are scanned as general punctuation.
func classify(ch rune) (charClass, bool) {
	switch {
	case isLetter(ch):
		return classLetter, true
	case isDigit(ch):
		return classDigit, true
	case isWhitespace(ch):
		return classSpace, true
	}

	switch ch {
	case '{':
		return classOpenBrace, true
	case '}':
		return classCloseBrace, true
	case '(':
		return classOpenParen, true
	case ')':
		return classCloseParen, true
	case '=':
		return classEqual, true
	case '<':
		return classLess, true
	case '>':
		return classGreater, true
	case '#', '~', '^', '+', '-', '*', '/', ';', '.':
		return classOperator, true
	}

	return classPunct, false
}
