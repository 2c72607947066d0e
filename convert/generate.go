package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"cmnt/content"
	"cmnt/convert/html"
)

// Generate writes a standalone HTML page for the whole document: narration
// between commentary blocks is rendered as markdown, every commentary region
// is replaced with its assembled interactive fragment.
func Generate(ctx context.Context, d *content.Document, render html.RenderFunc, w io.Writer, log *zap.Logger) error {
	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	page := doc.CreateElement("html")
	head := page.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")
	head.CreateElement("title").CreateText(filepath.Base(d.SrcName))

	body := page.CreateElement("body")

	line := 0
	for i, region := range d.Regions {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := appendNarration(d.Lines[line:region.Bounds.Start], body, render); err != nil {
			return err
		}

		fragment, err := html.RenderBlock(ctx, d, d.Blocks[i], render, log)
		if err != nil {
			return err
		}
		body.AddChild(fragment)

		// skip the close fence unless the block ran to document end
		line = region.Bounds.End
		if line < len(d.Lines) {
			line++
		}
	}
	if err := appendNarration(d.Lines[line:], body, render); err != nil {
		return err
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write rendered page: %w", err)
	}
	return nil
}

func appendNarration(lines []string, body *etree.Element, render html.RenderFunc) error {
	text := strings.Join(lines, "\n")
	if len(strings.TrimSpace(text)) == 0 {
		return nil
	}
	div := body.CreateElement("div")
	div.CreateAttr("class", "narration")
	if err := render(text, div); err != nil {
		return fmt.Errorf("unable to render narration: %w", err)
	}
	return nil
}
