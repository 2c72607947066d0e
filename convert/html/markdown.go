// Package html assembles interactive commentary fragments from parsed blocks
// and host-rendered markup.
package html

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/russross/blackfriday/v2"
)

// RenderFunc renders markdown source and attaches the resulting markup as
// children of parent. The host editor normally supplies its own renderer so
// commentary markup matches the surrounding document.
type RenderFunc func(markdown string, parent *etree.Element) error

// DefaultRenderer returns a RenderFunc built on blackfriday. Used when the
// host does not provide a renderer of its own (CLI rendering, tests).
func DefaultRenderer() RenderFunc {
	// plain XHTML output, smartypants entities do not survive XML re-parsing
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	return func(markdown string, parent *etree.Element) error {
		out := blackfriday.Run([]byte(markdown), blackfriday.WithRenderer(renderer))

		// blackfriday produces an XHTML fragment with possibly multiple
		// top-level elements - wrap it to get a single parseable root
		doc := etree.NewDocument()
		doc.ReadSettings = etree.ReadSettings{
			ValidateInput: false,
			Permissive:    true,
			AutoClose:     xml.HTMLAutoClose,
		}
		var buf strings.Builder
		buf.WriteString("<root>")
		buf.Write(out)
		buf.WriteString("</root>")
		if err := doc.ReadFromString(buf.String()); err != nil {
			return fmt.Errorf("unable to parse rendered markup: %w", err)
		}

		root := doc.Root()
		if root == nil {
			return nil
		}
		// AddChild re-parents tokens, iterate over a snapshot
		for _, tok := range append([]etree.Token(nil), root.Child...) {
			parent.AddChild(tok)
		}
		return nil
	}
}
