package edit

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cmnt/block"
)

// Precondition failures are recoverable: the host surfaces them to the user
// and the document is guaranteed untouched.
var (
	ErrOutsideBlock = errors.New("cursor is not inside a commentary block")
	ErrNotFound     = errors.New("no such footnote in this block")
)

// InsertFootnote allocates the next block-local footnote number, places a
// reference marker at the cursor and a matching definition line in the
// footnote section, creating the section when absent. The cursor ends up
// right after the inserted definition prefix, ready for typing the body.
func InsertFootnote(ed Editor, fences block.Fences, log *zap.Logger) error {
	lines := editorLines(ed)
	cur := ed.Cursor()

	bounds, ok := block.Locate(lines, cur.Line, fences)
	if !ok {
		return ErrOutsideBlock
	}

	number := block.NextNumber(lines, bounds)
	marker := fmt.Sprintf("$[%d]", number)

	// splice the marker into the cursor line, line count stays unchanged so
	// bounds remain valid for the definition insert below
	lines = append([]string(nil), lines...)
	line := lines[cur.Line]
	ch := min(cur.Ch, len(line))
	lines[cur.Line] = line[:ch] + marker + line[ch:]

	updated, defLine, defCh, err := block.InsertDefinition(lines, bounds, number)
	if err != nil {
		return fmt.Errorf("unable to insert footnote definition: %w", err)
	}

	ed.SetValue(strings.Join(updated, "\n"))
	pos := Position{Line: defLine, Ch: defCh}
	ed.SetCursor(pos)
	ed.ScrollIntoView(pos)
	log.Debug("Inserted footnote", zap.Int("number", number), zap.Int("line", defLine))
	return nil
}

// GotoDefinition jumps from the reference marker under the cursor to its
// definition line within the same block.
func GotoDefinition(ed Editor, fences block.Fences, log *zap.Logger) error {
	lines := editorLines(ed)
	cur := ed.Cursor()

	bounds, ok := block.Locate(lines, cur.Line, fences)
	if !ok {
		return ErrOutsideBlock
	}
	number, ok := block.ReferenceAt(ed.Line(cur.Line), cur.Ch)
	if !ok {
		return fmt.Errorf("%w: no reference under cursor", ErrNotFound)
	}

	line, ch, ok := block.FindDefinition(lines, bounds, number)
	if !ok {
		return fmt.Errorf("%w: definition for %d", ErrNotFound, number)
	}

	pos := Position{Line: line, Ch: ch}
	ed.SetCursor(pos)
	ed.ScrollIntoView(pos)
	log.Debug("Jumped to definition", zap.Int("number", number), zap.Int("line", line))
	return nil
}

// GotoReference jumps from the definition line under the cursor back to the
// first reference in the block's commentary, selecting the marker.
func GotoReference(ed Editor, fences block.Fences, log *zap.Logger) error {
	lines := editorLines(ed)
	cur := ed.Cursor()

	bounds, ok := block.Locate(lines, cur.Line, fences)
	if !ok {
		return ErrOutsideBlock
	}
	number, ok := block.DefinitionNumber(ed.Line(cur.Line))
	if !ok {
		return fmt.Errorf("%w: cursor is not on a definition line", ErrNotFound)
	}

	line, ch, ok := block.FindReference(lines, bounds, number)
	if !ok {
		return fmt.Errorf("%w: reference to %d", ErrNotFound, number)
	}

	pos := Position{Line: line, Ch: ch}
	ed.SetCursor(pos)
	ed.SetSelection(pos, Position{Line: line, Ch: ch + len(fmt.Sprintf("$[%d]", number))})
	ed.ScrollIntoView(pos)
	log.Debug("Jumped to reference", zap.Int("number", number), zap.Int("line", line))
	return nil
}
