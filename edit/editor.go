// Package edit implements footnote editing commands on top of an abstract
// editor surface.
package edit

import (
	"strings"
)

// Position is a zero-based cursor location inside the editor document.
type Position struct {
	Line int
	Ch   int
}

// Editor is the surface commands operate on. The host editor supplies the
// real implementation, Buffer below is used by the CLI and tests. Document
// mutation always goes through a single whole-text SetValue, commands never
// perform partial writes.
type Editor interface {
	Value() string
	SetValue(text string)
	Line(n int) string
	LineCount() int
	Cursor() Position
	SetCursor(pos Position)
	SetSelection(from, to Position)
	ScrollIntoView(pos Position)
}

// Buffer is an in-memory Editor.
type Buffer struct {
	lines  []string
	cursor Position

	selFrom, selTo Position
	scrolled       Position
}

func NewBuffer(text string) *Buffer {
	return &Buffer{lines: splitValue(text)}
}

func splitValue(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (b *Buffer) Value() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) SetValue(text string) {
	b.lines = splitValue(text)
}

func (b *Buffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Cursor() Position {
	return b.cursor
}

func (b *Buffer) SetCursor(pos Position) {
	b.cursor = pos
}

func (b *Buffer) SetSelection(from, to Position) {
	b.selFrom, b.selTo = from, to
}

func (b *Buffer) ScrollIntoView(pos Position) {
	b.scrolled = pos
}

// lines returns the current document as a line slice for bounds scanning.
func editorLines(ed Editor) []string {
	return splitValue(ed.Value())
}
