package html

import (
	"fmt"

	"github.com/beevik/etree"

	"cmnt/block"
)

// Marker and definition anchors share a naming scheme so the two ends of a
// footnote link can always be derived from each other.

func markerID(blockID string, display int) string {
	return fmt.Sprintf("fnref-%s-%d", blockID, display)
}

func definitionID(blockID string, display int) string {
	return fmt.Sprintf("fn-%s-%d", blockID, display)
}

// SpliceCommentary rewrites rendered commentary markup replacing placeholder
// tokens with footnote marker nodes. The source tree is never modified:
// the result is built from an immutable walk and returned as a new tree, so
// created nodes are never re-visited and non-text structure survives intact.
func SpliceCommentary(src *etree.Element, blockID string, footnotes []block.ResolvedFootnote) *etree.Element {
	types := make(map[int]block.FootnoteType, len(footnotes))
	for _, fn := range footnotes {
		types[fn.Display] = fn.Type
	}

	dst := etree.NewElement(src.Tag)
	dst.Space = src.Space
	for _, a := range src.Attr {
		dst.CreateAttr(a.FullKey(), a.Value)
	}
	spliceChildren(src, dst, blockID, types)
	return dst
}

func spliceChildren(src, dst *etree.Element, blockID string, types map[int]block.FootnoteType) {
	for _, tok := range src.Child {
		switch t := tok.(type) {
		case *etree.Element:
			child := dst.CreateElement(t.Tag)
			child.Space = t.Space
			for _, a := range t.Attr {
				child.CreateAttr(a.FullKey(), a.Value)
			}
			spliceChildren(t, child, blockID, types)
		case *etree.CharData:
			spliceText(t.Data, dst, blockID, types)
		case *etree.Comment:
			dst.AddChild(etree.NewComment(t.Data))
		}
	}
}

// spliceText splits a text leaf into plain runs and marker nodes in order.
func spliceText(text string, dst *etree.Element, blockID string, types map[int]block.FootnoteType) {
	for {
		before, display, after, found := block.CutPlaceholder(text)
		if len(before) > 0 {
			dst.CreateText(before)
		}
		if !found {
			return
		}

		marker := dst.CreateElement("sup")
		marker.CreateAttr("class", "fnref fnref-"+types[display].String())
		marker.CreateAttr("id", markerID(blockID, display))
		link := marker.CreateElement("a")
		link.CreateAttr("href", "#"+definitionID(blockID, display))
		link.CreateText(fmt.Sprintf("[%d]", display))

		text = after
	}
}

// copyTokens deep copies a child list without re-parenting the originals.
func copyTokens(src []etree.Token) []etree.Token {
	var out []etree.Token
	for _, tok := range src {
		switch t := tok.(type) {
		case *etree.Element:
			out = append(out, t.Copy())
		case *etree.CharData:
			if t.IsCData() {
				out = append(out, etree.NewCData(t.Data))
			} else {
				out = append(out, etree.NewText(t.Data))
			}
		case *etree.Comment:
			out = append(out, etree.NewComment(t.Data))
		}
	}
	return out
}

// Elements flatten keeps as block-level children of the inline run.
func keepAsBlock(tag string) bool {
	switch tag {
	case "ul", "ol", "blockquote", "pre", "table":
		return true
	}
	return false
}

// FlattenFootnote converts a rendered footnote body, possibly several
// block-level elements, into a single inline container suitable for list item
// content. The first paragraph is inlined directly, every further paragraph is
// preceded by two explicit line breaks. Lists, quotes and code keep their
// block semantics and are preceded by a single line break.
func FlattenFootnote(src *etree.Element) *etree.Element {
	out := etree.NewElement("span")
	out.CreateAttr("class", "footnote-body")

	paragraphs := 0
	for _, tok := range src.Child {
		switch t := tok.(type) {
		case *etree.Element:
			switch {
			case t.Tag == "p":
				if paragraphs > 0 {
					out.CreateElement("br")
					out.CreateElement("br")
				}
				paragraphs++
				for _, inner := range copyTokens(t.Child) {
					out.AddChild(inner)
				}
			case keepAsBlock(t.Tag):
				out.CreateElement("br")
				out.AddChild(t.Copy())
			default:
				// inline element at body top level, take as is
				out.AddChild(t.Copy())
			}
		case *etree.CharData:
			if !t.IsWhitespace() {
				out.CreateText(t.Data)
			}
		}
	}
	return out
}
