// Package cursor provides a positional view over Mithra source text.
//
// A single Cursor is threaded through an entire parse. It is never copied;
// parsers snapshot and restore its position to implement backtracking.
package cursor

import "fmt"

// EOF is returned by Next once the input is exhausted.
const EOF = rune(-1)

// Cursor is a mutable position over an immutable block of source text.
type Cursor struct {
	input    []rune
	pos      int
	furthest int
	filename string
}

// New returns a Cursor positioned at the start of the given input.
func New(input string) *Cursor {
	return &Cursor{input: []rune(input)}
}

// NewWithFilename returns a Cursor that carries a filename for use in
// error positions.
func NewWithFilename(input, filename string) *Cursor {
	return &Cursor{input: []rune(input), filename: filename}
}

// Next returns the rune at the current position and advances past it.
// Once the input is exhausted it returns EOF and parks the position
// one past the end, so repeated calls keep returning EOF without
// moving any further. Combinators rely on this to detect exhaustion
// without separate bounds checks.
func (c *Cursor) Next() rune {
	if c.pos > c.furthest {
		c.furthest = c.pos
	}
	if c.pos >= len(c.input) {
		c.pos = len(c.input) + 1
		return EOF
	}
	r := c.input[c.pos]
	c.pos++
	return r
}

// Retreat moves the position back by one rune, clamped at zero. It undoes
// exactly one rune of over-consumption after a look-ahead.
func (c *Cursor) Retreat() {
	if c.pos > 0 {
		c.pos--
	}
}

// Snapshot returns the current position for a later Restore.
func (c *Cursor) Snapshot() int {
	return c.pos
}

// Restore rewinds the cursor to a previously snapshotted position.
func (c *Cursor) Restore(pos int) {
	c.pos = pos
}

// Pos returns the current position as a rune offset into the input.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total number of runes in the input.
func (c *Cursor) Len() int {
	return len(c.input)
}

// Exhausted reports whether the cursor has consumed the entire input.
func (c *Cursor) Exhausted() bool {
	return c.pos >= len(c.input)
}

// Furthest returns the furthest offset ever reached by Next, clamped to the
// input length. Backtracking discards failed branches, so the furthest
// position reached across all attempts is the best available location for a
// syntax error.
func (c *Cursor) Furthest() int {
	if c.furthest > len(c.input) {
		return len(c.input)
	}
	return c.furthest
}

// Filename returns the filename associated with this input, if any.
func (c *Cursor) Filename() string {
	return c.filename
}

// PositionAt converts a rune offset into a Position with line and column
// information.
func (c *Cursor) PositionAt(offset int) Position {
	if offset > len(c.input) {
		offset = len(c.input)
	}
	line, col := 0, 0
	for i := 0; i < offset; i++ {
		if c.input[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return Position{Offset: offset, Line: line, Column: col, File: c.filename}
}

// SourceLine returns the text of the line containing the given offset,
// without its trailing newline.
func (c *Cursor) SourceLine(offset int) string {
	if offset > len(c.input) {
		offset = len(c.input)
	}
	start := offset
	for start > 0 && c.input[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(c.input) && c.input[end] != '\n' {
		end++
	}
	return string(c.input[start:end])
}

// Position points to a particular location in an input string.
type Position struct {
	Offset int // rune offset into the input
	Line   int // 0-indexed line
	Column int // 0-indexed column
	File   string
}

// LineNumber returns the 1-indexed line number for this position.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// String returns a "file:line:column" description of the position.
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}
