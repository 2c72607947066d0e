package block

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Editing-time operations scoped by Bounds. All of them work on the live
// document line slice, none of them consult rendered state.

// NextNumber returns one more than the maximum reference number found within
// the block, or 1 when none exist. Numbers are block-local by design and gaps
// are never reused - allocation is max+1, not lowest-unused.
func NextNumber(lines []string, b Bounds) int {
	maxSeen := 0
	for i := b.Start; i < b.End && i < len(lines); i++ {
		for _, m := range referencePattern.FindAllStringSubmatch(lines[i], -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxSeen {
				maxSeen = n
			}
		}
	}
	return maxSeen + 1
}

// ReferenceAt returns the number of the reference marker covering the given
// character position of a line, if any.
func ReferenceAt(line string, ch int) (int, bool) {
	for _, m := range referencePattern.FindAllStringSubmatchIndex(line, -1) {
		if ch >= m[0] && ch < m[1] {
			n, _ := strconv.Atoi(line[m[2]:m[3]])
			return n, true
		}
	}
	return 0, false
}

// DefinitionNumber returns the number of a definition line, if the line is one.
func DefinitionNumber(line string) (int, bool) {
	m := definitionPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

// FindReference searches only the block's commentary section for a $[number]
// marker and returns its line and character position. Searching outside the
// block is deliberately not attempted.
func FindReference(lines []string, b Bounds, number int) (line, ch int, ok bool) {
	if b.Commentary == nil {
		return 0, 0, false
	}
	marker := fmt.Sprintf("$[%d]", number)
	for i := b.Commentary.Start + 1; i < b.Commentary.End && i < len(lines); i++ {
		if idx := strings.Index(lines[i], marker); idx >= 0 {
			return i, idx, true
		}
	}
	return 0, 0, false
}

// FindDefinition searches only the block's footnote section for a line
// beginning with `$[number]:` and returns its line and character position.
func FindDefinition(lines []string, b Bounds, number int) (line, ch int, ok bool) {
	if b.Footnote == nil {
		return 0, 0, false
	}
	prefix := fmt.Sprintf("$[%d]:", number)
	for i := b.Footnote.Start + 1; i < b.Footnote.End && i < len(lines); i++ {
		if strings.HasPrefix(lines[i], prefix) {
			return i, 0, true
		}
	}
	return 0, 0, false
}

// InsertDefinition inserts a definition line for number into the block. When
// a footnote section exists the line goes at its recorded end, otherwise a
// blank line, a fresh delimiter and the definition are appended at the block
// end. Returns the updated lines and the cursor target placed at the end of
// the inserted definition.
func InsertDefinition(lines []string, b Bounds, number int) (updated []string, line, ch int, err error) {
	if b.End < 0 || b.End > len(lines) {
		return nil, 0, 0, fmt.Errorf("block bounds [%d, %d) out of document range", b.Start, b.End)
	}

	definition := fmt.Sprintf("$[%d]: ", number)

	if b.Footnote != nil {
		at := b.Footnote.End
		updated = slices.Insert(slices.Clone(lines), at, definition)
		return updated, at, len(definition), nil
	}

	// no footnote section yet - two header lines precede the definition
	updated = slices.Insert(slices.Clone(lines), b.End, "", DelimFootnote, definition)
	return updated, b.End + 2, len(definition), nil
}
