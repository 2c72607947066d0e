package html

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"cmnt/block"
	"cmnt/config"
	"cmnt/content"
	"cmnt/state"
)

// RenderBlock assembles the final interactive fragment for a single
// commentary block: tags panel, quoted original text, spliced commentary and
// the ordered footnote list. Sections absent from the block simply do not
// produce a panel. All DOM ids are namespaced by the document session so
// fragments from repeated render passes never collide.
func RenderBlock(ctx context.Context, d *content.Document, b *block.Block, render RenderFunc, log *zap.Logger) (*etree.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	resolved := block.Resolve(b.CommentaryRaw, b.FootnoteDefsRaw, log)
	domID := fmt.Sprintf("%s-%s", d.SessionID, b.ID)

	root := etree.NewElement("div")
	root.CreateAttr("class", "commentary-block")
	root.CreateAttr("id", domID)
	root.CreateAttr("data-block", b.ID)

	if !b.Metadata.Empty() {
		appendTagsPanel(root, &b.Metadata)
	}

	if len(b.OriginalText) > 0 {
		panel := root.CreateElement("blockquote")
		panel.CreateAttr("class", "commentary-original")
		if err := render(b.OriginalText, panel); err != nil {
			return nil, fmt.Errorf("unable to render original text of %s: %w", b.ID, err)
		}
	}

	if len(resolved.Commentary) > 0 {
		body := etree.NewElement("div")
		if err := render(resolved.Commentary, body); err != nil {
			return nil, fmt.Errorf("unable to render commentary of %s: %w", b.ID, err)
		}
		spliced := SpliceCommentary(body, domID, resolved.Footnotes)
		spliced.CreateAttr("class", "commentary-body")
		root.AddChild(spliced)
	}

	if len(resolved.Footnotes) > 0 {
		parent := root
		if env.Cfg.Document.Footnotes.Mode == config.FootnotesModeCollapsed {
			details := root.CreateElement("details")
			details.CreateAttr("class", "commentary-footnotes-fold")
			summary := details.CreateElement("summary")
			summary.CreateText(fmt.Sprintf("%d footnotes", len(resolved.Footnotes)))
			parent = details
		}
		if err := appendFootnotes(parent, domID, resolved.Footnotes, &env.Cfg.Document.Footnotes, render); err != nil {
			return nil, fmt.Errorf("unable to render footnotes of %s: %w", b.ID, err)
		}
	}
	return root, nil
}

func appendTagsPanel(root *etree.Element, meta *block.Metadata) {
	panel := root.CreateElement("div")
	panel.CreateAttr("class", "commentary-tags")
	for _, tag := range meta.Tags {
		span := panel.CreateElement("span")
		span.CreateAttr("class", "commentary-tag")
		span.CreateText(tag)
	}
	for _, key := range meta.Keys() {
		span := panel.CreateElement("span")
		span.CreateAttr("class", "commentary-meta")
		span.CreateAttr("data-key", key)
		span.CreateText(meta.Fields[key])
	}
}

// appendFootnotes emits the ordered footnote list. Footnotes arrive already in
// display order, dense from 1.
func appendFootnotes(parent *etree.Element, domID string, footnotes []block.ResolvedFootnote, conf *config.FootnotesConfig, render RenderFunc) error {
	list := parent.CreateElement("ol")
	list.CreateAttr("class", "commentary-footnotes")

	for _, fn := range footnotes {
		item := list.CreateElement("li")
		item.CreateAttr("id", definitionID(domID, fn.Display))
		class := "footnote footnote-" + fn.Type.String()
		if fn.Missing {
			class += " footnote-missing"
		}
		item.CreateAttr("class", class)

		style := conf.Style(fn.Type.String())
		glyph := item.CreateElement("span")
		glyph.CreateAttr("class", "footnote-glyph")
		glyph.CreateAttr("style", "color: var("+style.Color+")")
		glyph.CreateText(style.Glyph)

		body := etree.NewElement("div")
		if err := render(fn.Content, body); err != nil {
			return err
		}
		item.AddChild(FlattenFootnote(body))

		back := item.CreateElement("a")
		back.CreateAttr("class", "footnote-backref")
		back.CreateAttr("href", "#"+markerID(domID, fn.Display))
		back.CreateText("↩")
	}
	return nil
}
