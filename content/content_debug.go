package content

import (
	"maps"
	"slices"

	"github.com/maruel/natural"

	"cmnt/utils/debug"
)

func naturally(a, b string) int {
	if a == b {
		return 0
	}
	if natural.Less(a, b) {
		return -1
	}
	return 1
}

// String returns a readable tree of the whole Document with all parsed blocks.
// It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "Document")
	tw.TextBlock(1, "source", d.SrcName)
	tw.Line(1, "session: %s", d.SessionID)
	tw.Line(1, "lines: %d", len(d.Lines))

	ids := slices.SortedFunc(maps.Keys(d.registry), naturally)

	tw.Line(1, "blocks: %d", len(ids))
	for _, id := range ids {
		b := d.registry[id]
		tw.Line(2, "block: %s", id)
		if !b.Metadata.Empty() {
			tw.Line(3, "metadata")
			for _, k := range slices.SortedFunc(maps.Keys(b.Metadata.Fields), naturally) {
				tw.TextBlock(4, k, b.Metadata.Fields[k])
			}
			for _, tag := range b.Metadata.Tags {
				tw.TextBlock(4, "tag", tag)
			}
		}
		if len(b.OriginalText) > 0 {
			tw.TextBlock(3, "text", b.OriginalText)
		}
		if len(b.CommentaryRaw) > 0 {
			tw.TextBlock(3, "commentary", b.CommentaryRaw)
		}
		if len(b.FootnoteDefsRaw) > 0 {
			tw.TextBlock(3, "footnotes", b.FootnoteDefsRaw)
		}
	}
	return tw.String()
}
