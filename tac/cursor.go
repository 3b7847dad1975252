package tac

import (
	"errors"
	"fmt"
	"io"
)

// LineTokenizer produces the tokens of one source line per call and
// returns io.EOF when the source is exhausted. *Scanner implements it.
type LineTokenizer interface {
	NextLine() ([]Token, error)
}

// TokenStream is the pull interface the translator reads tokens from.
type TokenStream interface {
	// Peek returns the next token without consuming it.
	Peek() (Token, error)
	// Pop consumes and returns the next token.
	Pop() (Token, error)
}

// Cursor buffers the tokens of the current line and asks its
// LineTokenizer for the next line whenever the buffer runs dry.
type Cursor struct {
	lexer LineTokenizer
	queue []Token
}

// NewCursor returns a new instance of Cursor.
func NewCursor(lexer LineTokenizer) *Cursor {
	return &Cursor{lexer: lexer}
}

// Peek implements TokenStream.
func (c *Cursor) Peek() (Token, error) {
	if err := c.fill(); err != nil {
		return Token{}, err
	}
	return c.queue[0], nil
}

// Pop implements TokenStream.
func (c *Cursor) Pop() (Token, error) {
	if err := c.fill(); err != nil {
		return Token{}, err
	}
	tok := c.queue[0]
	c.queue = c.queue[1:]
	return tok, nil
}

func (c *Cursor) fill() error {
	for len(c.queue) == 0 {
		line, err := c.lexer.NextLine()
		if errors.Is(err, io.EOF) {
			return ErrUnexpectedEOF
		} else if err != nil {
			if errors.Is(err, ErrSourceRead) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrSourceRead, err)
		}
		c.queue = line
	}
	return nil
}
