package text

import (
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"
)

func TestSplit(t *testing.T) {
	s := NewSplitter(language.English, zaptest.NewLogger(t))
	if s == nil {
		t.Fatal("no splitter for English")
	}

	in := "First sentence. Second one! And a third?"
	out := s.Split(in)
	if len(out) != 3 {
		t.Fatalf("unexpected number of sentences: %d (%q)", len(out), out)
	}

	// trailing spaces must stay with the preceding sentence
	if out[0] != "First sentence. " {
		t.Errorf("unexpected first sentence: %q", out[0])
	}
	if out[2] != "And a third?" {
		t.Errorf("unexpected last sentence: %q", out[2])
	}

	var joined string
	for _, sentence := range out {
		joined += sentence
	}
	if joined != in {
		t.Errorf("sentences do not reassemble the input: %q", joined)
	}
}

func TestSplitOff(t *testing.T) {
	s := NewSplitter(language.Japanese, zaptest.NewLogger(t))
	if s != nil {
		t.Fatal("unexpected splitter for language without a model")
	}

	out := s.Split("Первое предложение. Второе.")
	if len(out) != 1 {
		t.Errorf("splitting was not turned off: %q", out)
	}
}

func TestSplitWords(t *testing.T) {
	var s *Splitter

	out := s.SplitWords("one two\tthree", true)
	if len(out) != 3 {
		t.Fatalf("unexpected number of words: %d (%q)", len(out), out)
	}

	// NBSP handling
	in := "one\u00a0two"
	if out = s.SplitWords(in, false); len(out) != 1 {
		t.Errorf("NBSP was treated as separator: %q", out)
	}
	if out = s.SplitWords(in, true); len(out) != 2 {
		t.Errorf("NBSP was not treated as separator: %q", out)
	}
}
