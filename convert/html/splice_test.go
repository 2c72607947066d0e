package html

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"cmnt/block"
)

func serialize(t *testing.T, el *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(el)
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("unable to serialize element: %v", err)
	}
	return out
}

func TestSpliceCommentary(t *testing.T) {
	src := etree.NewElement("div")
	p := src.CreateElement("p")
	p.CreateText("See {{fnref:1}} and ")
	em := p.CreateElement("em")
	em.CreateText("also")
	p.CreateText(" {{fnref:2}}.")

	footnotes := []block.ResolvedFootnote{
		{Display: 1, Number: 3, Type: block.FootnoteTypeNote},
		{Display: 2, Number: 1, Type: block.FootnoteTypeWarning},
	}

	out := SpliceCommentary(src, "cb-1", footnotes)
	got := serialize(t, out)

	if !strings.Contains(got, `<sup class="fnref fnref-note" id="fnref-cb-1-1"><a href="#fn-cb-1-1">[1]</a></sup>`) {
		t.Errorf("first marker not spliced: %s", got)
	}
	if !strings.Contains(got, `<sup class="fnref fnref-warning" id="fnref-cb-1-2"><a href="#fn-cb-1-2">[2]</a></sup>`) {
		t.Errorf("second marker not spliced: %s", got)
	}
	if !strings.Contains(got, "<em>also</em>") {
		t.Errorf("inline structure was not preserved: %s", got)
	}
	if strings.Contains(got, "{{fnref:") {
		t.Errorf("placeholder token survived splicing: %s", got)
	}

	// source tree stays untouched
	if s := serialize(t, src); !strings.Contains(s, "{{fnref:1}}") {
		t.Errorf("source tree was modified: %s", s)
	}
}

func TestSpliceCommentaryNoPlaceholders(t *testing.T) {
	src := etree.NewElement("div")
	src.CreateElement("p").CreateText("nothing to do here")

	out := SpliceCommentary(src, "cb-1", nil)
	if got, want := serialize(t, out), serialize(t, src); got != want {
		t.Errorf("markup without placeholders was not preserved: got %s, want %s", got, want)
	}
}

func TestFlattenFootnote(t *testing.T) {
	// two paragraphs plus a bullet list
	src := etree.NewElement("div")
	first := src.CreateElement("p")
	first.CreateText("First ")
	first.CreateElement("em").CreateText("paragraph")
	src.CreateElement("p").CreateText("Second paragraph")
	list := src.CreateElement("ul")
	list.CreateElement("li").CreateText("item")

	out := FlattenFootnote(src)

	if out.Tag != "span" {
		t.Fatalf("unexpected container: %s", out.Tag)
	}
	if len(out.FindElements("./p")) != 0 {
		t.Error("paragraph wrappers survived flattening")
	}

	var shape []string
	for _, tok := range out.Child {
		switch el := tok.(type) {
		case *etree.Element:
			shape = append(shape, el.Tag)
		case *etree.CharData:
			shape = append(shape, "#text")
		}
	}
	want := []string{"#text", "em", "br", "br", "#text", "br", "ul"}
	if len(shape) != len(want) {
		t.Fatalf("unexpected shape: %v", shape)
	}
	for i := range want {
		if shape[i] != want[i] {
			t.Fatalf("unexpected shape: %v, want %v", shape, want)
		}
	}

	if list := out.FindElement("./ul"); list == nil || list.FindElement("./li") == nil {
		t.Error("list lost its structure")
	}
}

func TestFlattenFootnoteSingleParagraph(t *testing.T) {
	src := etree.NewElement("div")
	src.CreateElement("p").CreateText("only one")

	out := FlattenFootnote(src)
	if got := serialize(t, out); strings.Contains(got, "<br") {
		t.Errorf("single paragraph got line breaks: %s", got)
	}
}
