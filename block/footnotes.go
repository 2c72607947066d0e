package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Footnote resolution - matching $[N] references in commentary text against
// $[N]: definitions and assigning stable display order.

var (
	// referencePattern matches an inline reference marker anywhere in text.
	referencePattern = regexp.MustCompile(`\$\[(\d+)\]`)
	// definitionPattern matches a definition line anchor. The body continues
	// across subsequent lines until the next definition line or section end.
	definitionPattern = regexp.MustCompile(`^\$\[(\d+)\]:[ \t]?`)
	// placeholderPattern matches the internal render-time token carrying a
	// resolved display index. Never persisted to document text.
	placeholderPattern = regexp.MustCompile(`\{\{fnref:(\d+)\}\}`)
)

// Placeholder returns the internal token substituted for all references with
// the given display index before the text is handed to the host renderer.
func Placeholder(display int) string {
	return fmt.Sprintf("{{fnref:%d}}", display)
}

// CutPlaceholder splits rendered text around the first placeholder token,
// in the manner of strings.Cut. When no token is present the whole text is
// returned as before and found is false.
func CutPlaceholder(text string) (before string, display int, after string, found bool) {
	m := placeholderPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text, 0, "", false
	}
	display, _ = strconv.Atoi(text[m[2]:m[3]])
	return text[:m[0]], display, text[m[1]:], true
}

// ParseDefinitions extracts a number -> body mapping from the footnote
// section text. When the same number is defined twice the first definition
// wins and the duplicate is dropped.
func ParseDefinitions(defs string, log *zap.Logger) map[int]string {
	index := make(map[int]string)

	current := -1
	var body strings.Builder
	flush := func() {
		if current < 0 {
			return
		}
		if _, exists := index[current]; exists {
			log.Warn("Duplicate footnote definition, keeping first", zap.Int("number", current))
		} else {
			index[current] = strings.TrimRight(body.String(), "\n")
		}
		current = -1
		body.Reset()
	}

	for line := range strings.Lines(defs) {
		line = strings.TrimSuffix(line, "\n")
		if m := definitionPattern.FindStringSubmatch(line); m != nil {
			flush()
			current, _ = strconv.Atoi(m[1])
			body.WriteString(line[len(m[0]):])
			body.WriteByte('\n')
			continue
		}
		if current < 0 {
			// text before the first definition line belongs to nothing
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	flush()

	return index
}

// Resolve scans commentary left to right for $[N] references, allocates dense
// display indices in order of first occurrence and rewrites the text with
// internal placeholder tokens. A reference without a definition still gets a
// display slot with synthetic content - content is never dropped, the gap is
// surfaced visibly. Definitions nothing refers to are excluded silently.
func Resolve(commentary, defs string, log *zap.Logger) Resolved {
	definitions := ParseDefinitions(defs, log)

	var r Resolved
	display := make(map[int]int) // author number -> display index

	var out strings.Builder
	last := 0
	for _, m := range referencePattern.FindAllStringSubmatchIndex(commentary, -1) {
		number, _ := strconv.Atoi(commentary[m[2]:m[3]])

		idx, seen := display[number]
		if !seen {
			idx = len(r.Footnotes) + 1
			display[number] = idx

			note := ResolvedFootnote{Display: idx, Number: number}
			if body, ok := definitions[number]; ok {
				note.Type, note.Content = Classify(body)
			} else {
				note.Content = fmt.Sprintf("missing footnote definition for %d", number)
				note.Missing = true
				log.Warn("Reference without definition", zap.Int("number", number))
			}
			r.Footnotes = append(r.Footnotes, note)
		}

		r.References = append(r.References, Reference{Number: number, Offset: m[0], Display: idx})

		// single left-to-right rewrite, earlier substitutions cannot corrupt
		// offsets of later ones
		out.WriteString(commentary[last:m[0]])
		out.WriteString(Placeholder(idx))
		last = m[1]
	}
	out.WriteString(commentary[last:])
	r.Commentary = out.String()

	for number := range definitions {
		if _, used := display[number]; !used {
			log.Debug("Unreferenced footnote definition, dropping", zap.Int("number", number))
		}
	}

	return r
}

// Classify determines the semantic type of a footnote body from an optional
// `<type>:` prefix. An unknown prefix is not stripped - the whole body is
// returned as note content. The remainder may contain embedded newlines.
func Classify(body string) (FootnoteType, string) {
	prefix, rest, found := strings.Cut(body, ":")
	prefix = strings.TrimSpace(prefix)
	if !found || prefix == "" || strings.ContainsAny(prefix, " \t\n") {
		return FootnoteTypeNote, body
	}
	t, err := ParseFootnoteType(prefix)
	if err != nil {
		return FootnoteTypeNote, body
	}
	return t, strings.TrimSpace(rest)
}
