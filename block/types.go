package block

import (
	"maps"
	"slices"
)

// Type definitions for commentary block structures.

// Section delimiter lines recognized inside a commentary block. A line
// consisting of one of these switches the active section and is itself
// discarded from section content.
const (
	DelimMetadata   = "---metadata---"
	DelimText       = "---text---"
	DelimCommentary = "---commentary---"
	DelimFootnote   = "---footnote---"
)

// Block is one parsed commentary region. It is created fresh on every render
// pass and owned by the pass that created it, there is no cross-render
// identity beyond ID.
type Block struct {
	ID string // assigned by the owning document, namespaces all anchors

	Metadata        Metadata
	OriginalText    string
	CommentaryRaw   string
	FootnoteDefsRaw string
}

// Metadata holds parsed `key: value` lines from the metadata section. The key
// "tags" is list-valued and kept separately, all other keys retain the
// trimmed scalar value.
type Metadata struct {
	Fields map[string]string
	Tags   []string
}

// Empty reports whether no metadata was present in the source.
func (m Metadata) Empty() bool {
	return len(m.Fields) == 0 && len(m.Tags) == 0
}

// Keys returns field names in stable sorted order.
func (m Metadata) Keys() []string {
	return slices.Sorted(maps.Keys(m.Fields))
}

// Reference is a single occurrence of a `$[N]` marker inside commentary text.
// Many references may share the same Number (duplicate citation of one
// footnote), all of them map to the same Display index.
type Reference struct {
	Number  int // author-assigned, as written in source
	Offset  int // byte offset in original commentary text
	Display int // resolved 1-based display index
}

// ResolvedFootnote is one entry of the final display-ordered footnote list.
// Display is a dense 1..N sequence assigned in order of first reference
// occurrence, not in order of definition.
type ResolvedFootnote struct {
	Display int
	Number  int
	Type    FootnoteType
	Content string
	Missing bool // no definition found, Content is synthetic
}

// Resolved is the output of footnote resolution: commentary with references
// replaced by internal placeholder tokens plus the ordered footnote list.
type Resolved struct {
	Commentary string
	Footnotes  []ResolvedFootnote
	References []Reference
}

// Fences holds the opaque block fence markers. Open marks the first line of a
// commentary block, any subsequent line starting with Close terminates it.
// Exact fence syntax is a host convention, the engine never interprets it.
type Fences struct {
	Open  string
	Close string
}

// DefaultFences returns the conventional triple-quote fencing.
func DefaultFences() Fences {
	return Fences{Open: `"""commentary`, Close: `"""`}
}

// LineRange is a half-open [Start, End) range of document lines. Start is the
// section delimiter line, content occupies (Start, End).
type LineRange struct {
	Start int
	End   int
}

// Bounds is the structural scope of one commentary block inside a document,
// recomputed from live text on every editing operation and never cached.
// Start is the open fence line, End is the close fence line or the document
// length when the block is unterminated. Absent sections are nil.
type Bounds struct {
	Start int
	End   int

	Metadata   *LineRange
	Text       *LineRange
	Commentary *LineRange
	Footnote   *LineRange
}

// Region is one commentary block found by a whole-document scan: its bounds
// plus the raw inner text between the fences.
type Region struct {
	Bounds Bounds
	Raw    string
}
