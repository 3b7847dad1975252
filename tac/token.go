package tac

import "strings"

// TokenType represents the kind of a lexical token.
type TokenType int

// Language tokens
const (
	// Literals
	IDENT  TokenType = iota // identifier
	NUMBER                  // integer constant

	// Symbols
	OPARENTH  // (
	CPARENTH  // )
	UPLUS     // #
	UMINUS    // ~
	ADD       // +
	SUB       // -
	MULT      // *
	DIV       // /
	EQUAL     // =
	INTDIV    // div
	MOD       // mod
	EXPON     // ^
	SEMICOLON // ;
	PERIOD    // .

	// Keywords
	PROGRAM
	END

	// Relational operators
	LT // <
	LE // <=
	GT // >
	GE // >=
	NE // <>

	// Keywords
	IF
	THEN
	WHILE
	DO

	// Special tokens
	ERROR
)

// Position specifies the line and character position of a token.
// The Column and Line are both zero-based indexes.
type Position struct {
	Line   int
	Column int
}

type Token struct {
	TokenType TokenType
	Lexeme    string
	Position  Position
}

var tokens = [...]string{
	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	OPARENTH:  "(",
	CPARENTH:  ")",
	UPLUS:     "#",
	UMINUS:    "~",
	ADD:       "+",
	SUB:       "-",
	MULT:      "*",
	DIV:       "/",
	EQUAL:     "=",
	INTDIV:    "DIV",
	MOD:       "MOD",
	EXPON:     "^",
	SEMICOLON: ";",
	PERIOD:    ".",

	PROGRAM: "PROGRAM",
	END:     "END",

	LT: "<",
	LE: "<=",
	GT: ">",
	GE: ">=",
	NE: "<>",

	IF:    "IF",
	THEN:  "THEN",
	WHILE: "WHILE",
	DO:    "DO",

	ERROR: "ERROR",
}

// String returns the string representation of the token.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// keywords maps the reserved words, in upper case, to their token.
var keywords = map[string]TokenType{
	"DIV":     INTDIV,
	"MOD":     MOD,
	"PROGRAM": PROGRAM,
	"END":     END,
	"IF":      IF,
	"WHILE":   WHILE,
	"THEN":    THEN,
	"DO":      DO,
}

// LookupKeyword returns the keyword token for an identifier-shaped lexeme,
// or IDENT when the lexeme is not reserved. The match ignores case.
func LookupKeyword(lexeme string) TokenType {
	if tok, ok := keywords[strings.ToUpper(lexeme)]; ok {
		return tok
	}
	return IDENT
}
