package normalize

import "strings"

// Buffer accumulates Markdown lines in document order.
// A Buffer belongs to a single conversion and is not safe for concurrent use.
type Buffer struct {
	lines []string
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{lines: make([]string, 0, 64)}
}

// Line appends one line.
func (b *Buffer) Line(s string) {
	b.lines = append(b.lines, s)
}

// Blank appends an empty line.
func (b *Buffer) Blank() {
	b.lines = append(b.lines, "")
}

// Len returns the number of lines written so far.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the accumulated lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with "\n". No trailing newline is added.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}
