package block

import (
	"testing"
)

func TestResolve(t *testing.T) {
	log := testLogger(t)

	t.Run("display_order_follows_first_occurrence", func(t *testing.T) {
		r := Resolve("See $[2] and $[1]. Also $[2].", "$[1]: first\n$[2]: second\n", log)

		if len(r.Footnotes) != 2 {
			t.Fatalf("expected 2 footnotes, got %d", len(r.Footnotes))
		}
		if r.Footnotes[0].Display != 1 || r.Footnotes[0].Number != 2 || r.Footnotes[0].Content != "second" {
			t.Fatalf("display 1 should come from number 2: %+v", r.Footnotes[0])
		}
		if r.Footnotes[1].Display != 2 || r.Footnotes[1].Number != 1 || r.Footnotes[1].Content != "first" {
			t.Fatalf("display 2 should come from number 1: %+v", r.Footnotes[1])
		}
		want := "See {{fnref:1}} and {{fnref:2}}. Also {{fnref:1}}."
		if r.Commentary != want {
			t.Fatalf("placeholder text mismatch:\n got: %q\nwant: %q", r.Commentary, want)
		}
	})

	t.Run("duplicate_references_share_display_index", func(t *testing.T) {
		r := Resolve("$[7] then $[3] then $[7]", "$[3]: b\n$[7]: a\n", log)
		if len(r.Footnotes) != 2 {
			t.Fatalf("expected 2 distinct footnotes, got %d", len(r.Footnotes))
		}
		if len(r.References) != 3 {
			t.Fatalf("expected 3 reference occurrences, got %d", len(r.References))
		}
		if r.References[0].Display != 1 || r.References[2].Display != 1 {
			t.Fatalf("duplicate reference did not reuse display index: %+v", r.References)
		}
	})

	t.Run("missing_definition_still_renders", func(t *testing.T) {
		r := Resolve("Claim $[5].", "", log)
		if len(r.Footnotes) != 1 {
			t.Fatalf("expected 1 footnote, got %d", len(r.Footnotes))
		}
		fn := r.Footnotes[0]
		if !fn.Missing || fn.Content != "missing footnote definition for 5" {
			t.Fatalf("unexpected synthetic footnote: %+v", fn)
		}
		if fn.Type != FootnoteTypeNote {
			t.Fatalf("synthetic footnote should default to note, got %v", fn.Type)
		}
	})

	t.Run("unreferenced_definitions_excluded", func(t *testing.T) {
		r := Resolve("Only $[1].", "$[1]: used\n$[2]: dead\n", log)
		if len(r.Footnotes) != 1 || r.Footnotes[0].Content != "used" {
			t.Fatalf("unexpected footnotes: %+v", r.Footnotes)
		}
	})

	t.Run("no_references_no_footnotes", func(t *testing.T) {
		r := Resolve("plain prose", "$[1]: ignored\n", log)
		if len(r.Footnotes) != 0 || r.Commentary != "plain prose" {
			t.Fatalf("unexpected result: %+v", r)
		}
	})
}

func TestParseDefinitions(t *testing.T) {
	log := testLogger(t)

	t.Run("multi_line_bodies", func(t *testing.T) {
		defs := "$[1]: first line\ncontinues here\n$[2]: second\n"
		index := ParseDefinitions(defs, log)
		if index[1] != "first line\ncontinues here" {
			t.Fatalf("multi-line body mismatch: %q", index[1])
		}
		if index[2] != "second" {
			t.Fatalf("second body mismatch: %q", index[2])
		}
	})

	t.Run("first_definition_wins", func(t *testing.T) {
		index := ParseDefinitions("$[1]: first\n$[1]: second\n", log)
		if index[1] != "first" {
			t.Fatalf("expected first definition to win, got %q", index[1])
		}
	})

	t.Run("open_ended_body_clipped_at_section_end", func(t *testing.T) {
		index := ParseDefinitions("$[9]: tail\nmore\n", log)
		if index[9] != "tail\nmore" {
			t.Fatalf("unexpected body: %q", index[9])
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantType FootnoteType
		wantText string
	}{
		{"warning_prefix", "warning: careful here", FootnoteTypeWarning, "careful here"},
		{"question_prefix", "question: why?", FootnoteTypeQuestion, "why?"},
		{"unknown_prefix_kept_whole", "shrug: whatever", FootnoteTypeNote, "shrug: whatever"},
		{"no_prefix", "plain body", FootnoteTypeNote, "plain body"},
		{"prefix_before_multiline_rest", "idea: first\nsecond", FootnoteTypeIdea, "first\nsecond"},
		{"colon_later_in_sentence", "see also: nothing", FootnoteTypeNote, "see also: nothing"},
		{"empty_body", "", FootnoteTypeNote, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, gotText := Classify(tc.body)
			if gotType != tc.wantType || gotText != tc.wantText {
				t.Fatalf("Classify(%q) = (%v, %q), want (%v, %q)", tc.body, gotType, gotText, tc.wantType, tc.wantText)
			}
		})
	}
}

func TestParseFootnoteType(t *testing.T) {
	for _, name := range FootnoteTypeNames() {
		if _, err := ParseFootnoteType(name); err != nil {
			t.Fatalf("known name %q did not parse: %v", name, err)
		}
	}
	if _, err := ParseFootnoteType("bogus"); err == nil {
		t.Fatal("expected error for unknown type name")
	}
}
