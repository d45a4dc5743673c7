package editlog

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a buffer offset outside [0, Len()].
var ErrOutOfRange = errors.New("editlog: offset out of range")

// Buffer is a minimal byte-addressed text buffer. It exists so the log's
// recorded edits have something concrete to apply to; a real editor would
// substitute its own buffer implementation behind the Session.
type Buffer struct {
	text []byte
}

// NewBuffer creates a buffer with the given initial contents.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: []byte(text)}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// Text returns the buffer contents in [start, end).
func (b *Buffer) Text(start, end int) (string, error) {
	if start < 0 || end < start || end > len(b.text) {
		return "", fmt.Errorf("text [%d:%d) in %d bytes: %w", start, end, len(b.text), ErrOutOfRange)
	}
	return string(b.text[start:end]), nil
}

// Replace substitutes the text in [start, end) with repl.
func (b *Buffer) Replace(start, end int, repl string) error {
	if start < 0 || end < start || end > len(b.text) {
		return fmt.Errorf("replace [%d:%d) in %d bytes: %w", start, end, len(b.text), ErrOutOfRange)
	}
	out := make([]byte, 0, len(b.text)-(end-start)+len(repl))
	out = append(out, b.text[:start]...)
	out = append(out, repl...)
	out = append(out, b.text[end:]...)
	b.text = out
	return nil
}
