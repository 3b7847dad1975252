package tac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Scanner represents a line oriented lexical scanner.
type Scanner struct {
	Reader *bufio.Reader
	// Diagnostics receives warnings about unknown input.
	Diagnostics io.Writer
	// line is the zero-based index of the line being scanned.
	line int
}

// NewScanner returns a new instance of Scanner.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		Reader:      bufio.NewReader(reader),
		Diagnostics: os.Stderr,
	}
}

// NextLine scans the next source line and returns its tokens in order.
// A line holding only blanks or comments gives an empty slice.
// io.EOF is returned once there are no more lines.
func (s *Scanner) NextLine() ([]Token, error) {
	text, err := s.Reader.ReadString('\n')
	if err == io.EOF {
		if text == "" {
			return nil, io.EOF
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrSourceRead, s.line+1, err)
	}

	text = strings.TrimRight(text, "\r\n")
	toks := s.ScanLine(text)
	s.line++
	return toks, nil
}

// ScanLine runs the state machine over a single line of source.
func (s *Scanner) ScanLine(line string) []Token {
	// The trailing space makes a lexeme at the end of the line complete.
	chars := []rune(line + " ")

	output := []Token{}
	current := stateStart
	startChar := 0
	warned := -1

	for curChar := 0; curChar < len(chars); {
		class, ok := classify(chars[curChar])
		if !ok && current != stateInComment && warned != curChar {
			s.warn("unknown input %q at line %d, char %d", chars[curChar], s.line+1, curChar+1)
			warned = curChar
		}
		current = transitions[current][class]

		acc, ok := accepting[current]
		if !ok {
			curChar++
			if current == stateStart {
				startChar = curChar
			}
			continue
		}

		end := curChar + 1
		if acc.retract {
			end = curChar
		} else {
			curChar++
		}

		if !acc.skip {
			lexeme := string(chars[startChar:end])
			output = append(output, Token{
				TokenType: acc.kind(lexeme),
				Lexeme:    lexeme,
				Position:  Position{Line: s.line, Column: startChar},
			})
		}

		current = stateStart
		startChar = curChar
	}

	return output
}

func (s *Scanner) warn(format string, args ...interface{}) {
	if s.Diagnostics == nil {
		return
	}
	fmt.Fprintf(s.Diagnostics, "[WARN] "+format+"\n", args...)
}
