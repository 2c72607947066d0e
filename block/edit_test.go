package block

import (
	"strings"
	"testing"
)

func locateOrDie(t *testing.T, lines []string, cursor int) Bounds {
	t.Helper()
	b, ok := Locate(lines, cursor, DefaultFences())
	if !ok {
		t.Fatalf("cursor %d should be inside a block", cursor)
	}
	return b
}

func TestNextNumber(t *testing.T) {
	t.Run("max_plus_one_not_gap_filling", func(t *testing.T) {
		lines := docLines("\"\"\"commentary\n---commentary---\nsee $[1] and $[3]\n---footnote---\n$[1]: a\n$[3]: b\n\"\"\"")
		b := locateOrDie(t, lines, 2)
		if got := NextNumber(lines, b); got != 4 {
			t.Fatalf("expected 4 (max+1), got %d", got)
		}
	})

	t.Run("empty_block_starts_at_one", func(t *testing.T) {
		lines := docLines("\"\"\"commentary\n---commentary---\nno refs\n\"\"\"")
		b := locateOrDie(t, lines, 2)
		if got := NextNumber(lines, b); got != 1 {
			t.Fatalf("expected 1 for empty block, got %d", got)
		}
	})

	t.Run("scoped_to_block", func(t *testing.T) {
		// a reference in a later block must not influence allocation
		doc := "\"\"\"commentary\n---commentary---\nsee $[2]\n\"\"\"\n" +
			"\"\"\"commentary\n---commentary---\nsee $[9]\n\"\"\""
		lines := docLines(doc)
		b := locateOrDie(t, lines, 2)
		if got := NextNumber(lines, b); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})
}

func TestFindReferenceAndDefinition(t *testing.T) {
	lines := docLines(boundsDoc)
	b := locateOrDie(t, lines, 7)

	t.Run("reference_found", func(t *testing.T) {
		line, ch, ok := FindReference(lines, b, 3)
		if !ok || line != 7 || ch != strings.Index(lines[7], "$[3]") {
			t.Fatalf("unexpected reference position: line=%d ch=%d ok=%v", line, ch, ok)
		}
	})

	t.Run("definition_found", func(t *testing.T) {
		line, _, ok := FindDefinition(lines, b, 3)
		if !ok || line != 10 {
			t.Fatalf("unexpected definition position: line=%d ok=%v", line, ok)
		}
	})

	t.Run("not_found_stays_in_block", func(t *testing.T) {
		if _, _, ok := FindReference(lines, b, 42); ok {
			t.Fatal("reference 42 must not be found")
		}
		if _, _, ok := FindDefinition(lines, b, 42); ok {
			t.Fatal("definition 42 must not be found")
		}
	})
}

func TestInsertDefinition(t *testing.T) {
	t.Run("into_existing_footnote_section", func(t *testing.T) {
		lines := docLines(boundsDoc)
		b := locateOrDie(t, lines, 7)

		updated, line, ch, err := InsertDefinition(lines, b, 4)
		if err != nil {
			t.Fatalf("InsertDefinition: %v", err)
		}
		if line != 11 || updated[11] != "$[4]: " {
			t.Fatalf("definition not inserted at footnote section end: line=%d %q", line, updated[11])
		}
		if ch != len("$[4]: ") {
			t.Fatalf("cursor should sit after the definition prefix, got %d", ch)
		}
		if updated[12] != `"""` {
			t.Fatalf("close fence displaced: %q", updated[12])
		}
		// original slice untouched
		if lines[11] != `"""` {
			t.Fatal("input lines were mutated")
		}
	})

	t.Run("creates_footnote_section", func(t *testing.T) {
		lines := docLines("\"\"\"commentary\n---commentary---\nprose $[1]\n\"\"\"")
		b := locateOrDie(t, lines, 2)

		updated, line, _, err := InsertDefinition(lines, b, 1)
		if err != nil {
			t.Fatalf("InsertDefinition: %v", err)
		}
		if updated[3] != "" || updated[4] != DelimFootnote || updated[5] != "$[1]: " {
			t.Fatalf("section header not created: %q %q %q", updated[3], updated[4], updated[5])
		}
		if line != 5 {
			t.Fatalf("cursor target should account for the two header lines, got %d", line)
		}
	})
}
