package arguments

import "strings"

// Cursor is a forward-only view over the tokens of one parse attempt.
type Cursor struct {
	tokens []string
	offset int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// HasNext reports whether a token remains.
func (c *Cursor) HasNext() bool {
	return c.offset < len(c.tokens)
}

// Next consumes the next token. ok is false when the cursor is exhausted.
func (c *Cursor) Next() (token string, ok bool) {
	if !c.HasNext() {
		return "", false
	}
	token = c.tokens[c.offset]
	c.offset++
	return token, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if !c.HasNext() {
		return "", false
	}
	return c.tokens[c.offset], true
}

// Remaining returns the number of unconsumed tokens.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.offset
}

// Offset returns the number of consumed tokens.
func (c *Cursor) Offset() int {
	return c.offset
}

// Rest consumes every remaining token.
func (c *Cursor) Rest() []string {
	rest := c.tokens[c.offset:]
	c.offset = len(c.tokens)
	return rest
}

// Fork returns an independent cursor at the same position.
func (c *Cursor) Fork() *Cursor {
	return &Cursor{tokens: c.tokens, offset: c.offset}
}

// Commit advances c to the position of a fork taken from it. Forks behind c
// are ignored so the offset never decreases.
func (c *Cursor) Commit(fork *Cursor) {
	if fork.offset > c.offset {
		c.offset = fork.offset
	}
}

// Tokenize splits a command line on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// CompletionTokens splits a line being typed. A line that is empty or ends
// in whitespace gets a trailing empty token: the word about to be typed.
func CompletionTokens(line string) []string {
	tokens := strings.Fields(line)
	if line == "" || strings.TrimRight(line, " \t") != line {
		tokens = append(tokens, "")
	}
	return tokens
}
