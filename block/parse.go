package block

import (
	"strings"

	"go.uber.org/zap"
)

// Line oriented parsing of raw block text into sections.
// We never fail on malformed input - missing sections yield empty content and
// unrecognized lines are dropped, so a half-written block still renders.

// sectionDelimiter reports whether a line is one of the four section
// delimiters. The same predicate drives both the render-time sectionizer and
// the editing-time bounds locator so the two can never disagree on structure.
func sectionDelimiter(line string) (string, bool) {
	switch strings.TrimSpace(line) {
	case DelimMetadata:
		return DelimMetadata, true
	case DelimText:
		return DelimText, true
	case DelimCommentary:
		return DelimCommentary, true
	case DelimFootnote:
		return DelimFootnote, true
	}
	return "", false
}

// Parse splits raw block text into named sections. A delimiter line switches
// the active section and is itself discarded, all other lines are appended to
// the active section with a trailing newline. Lines seen before the first
// delimiter belong to no section and are dropped.
func Parse(raw string, log *zap.Logger) *Block {
	b := &Block{Metadata: Metadata{Fields: make(map[string]string)}}

	var (
		metadata, text, commentary, footnote strings.Builder
		active                               *strings.Builder
	)

	for line := range strings.Lines(raw) {
		line = strings.TrimSuffix(line, "\n")
		if d, ok := sectionDelimiter(line); ok {
			switch d {
			case DelimMetadata:
				active = &metadata
			case DelimText:
				active = &text
			case DelimCommentary:
				active = &commentary
			case DelimFootnote:
				active = &footnote
			}
			continue
		}
		if active == nil {
			continue
		}
		active.WriteString(line)
		active.WriteByte('\n')
	}

	b.OriginalText = text.String()
	b.CommentaryRaw = commentary.String()
	b.FootnoteDefsRaw = footnote.String()
	parseMetadata(metadata.String(), &b.Metadata, log)
	return b
}

// parseMetadata interprets `key: value` lines. The key "tags" is split on
// commas and trimmed into a list. Lines without a colon are silently ignored.
func parseMetadata(in string, meta *Metadata, log *zap.Logger) {
	for line := range strings.Lines(in) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" {
			log.Debug("Ignoring unrecognized metadata line", zap.String("line", line))
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "tags" {
			for _, tag := range strings.Split(value, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					meta.Tags = append(meta.Tags, tag)
				}
			}
			continue
		}
		meta.Fields[key] = value
	}
}
