package parser

import (
	"fmt"
	"strings"

	"github.com/mithra-lang/mithra/cursor"
)

// SyntaxError reports that no grammar rule matched the input. Because
// alternation discards failed branches, the error is not tied to one rule;
// it points at the furthest position any rule reached before backtracking,
// which is the best available diagnostic for a backtracking parser.
type SyntaxError struct {
	message    string
	position   cursor.Position
	sourceLine string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at %s", e.message, e.position)
}

// Message returns the error description without the position.
func (e *SyntaxError) Message() string {
	return e.message
}

// Position returns the furthest position reached across all attempted
// grammar alternatives.
func (e *SyntaxError) Position() cursor.Position {
	return e.position
}

// SourceLine returns the text of the offending source line.
func (e *SyntaxError) SourceLine() string {
	return e.sourceLine
}

// FriendlyErrorMessage returns a multi-line message with the offending
// source line and a caret under the error position.
func (e *SyntaxError) FriendlyErrorMessage() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "syntax error: %s\n\n", e.message)
	fmt.Fprintf(&sb, "  %s\n\n", e.position)
	fmt.Fprintf(&sb, "  %s\n", e.sourceLine)
	fmt.Fprintf(&sb, "  %s^\n", strings.Repeat(" ", e.position.Column))
	return sb.String()
}

func newSyntaxError(c *cursor.Cursor) error {
	offset := c.Furthest()
	pos := c.PositionAt(offset)
	line := c.SourceLine(offset)

	message := "unexpected end of input"
	if pos.Column < len([]rune(line)) {
		message = fmt.Sprintf("unexpected character %q", []rune(line)[pos.Column])
	}
	return &SyntaxError{
		message:    message,
		position:   pos,
		sourceLine: line,
	}
}
