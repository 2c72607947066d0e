package block

import "strings"

// Block bounds location over live document text. Bounds are recomputed on
// every editing operation - the document may have changed since last render.

// Locate determines whether cursor line lies inside a commentary block and,
// if so, computes the block's fence lines and per-section line ranges.
//
// The backward scan looks for a line starting with the open fence; meeting
// any other fence line first means the cursor is outside. The forward scan
// ends at the next generic fence line or, for an unterminated block, at the
// end of the document.
func Locate(lines []string, cursor int, fences Fences) (Bounds, bool) {
	if cursor < 0 || cursor >= len(lines) {
		return Bounds{}, false
	}

	start := -1
	for i := cursor; i >= 0; i-- {
		if strings.HasPrefix(lines[i], fences.Open) {
			start = i
			break
		}
		if strings.HasPrefix(lines[i], fences.Close) {
			return Bounds{}, false
		}
	}
	if start < 0 {
		return Bounds{}, false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], fences.Close) {
			end = i
			break
		}
	}

	b := Bounds{Start: start, End: end}
	b.sections(lines)
	return b, true
}

// sections runs a single forward pass over delimiter lines within the block,
// closing the open section the moment the next delimiter or the block end is
// reached. A repeated delimiter reopens that section, overwriting the prior
// range.
func (b *Bounds) sections(lines []string) {
	var open *LineRange
	for i := b.Start + 1; i < b.End; i++ {
		d, ok := sectionDelimiter(lines[i])
		if !ok {
			continue
		}
		if open != nil {
			open.End = i
		}
		r := &LineRange{Start: i, End: b.End}
		switch d {
		case DelimMetadata:
			b.Metadata = r
		case DelimText:
			b.Text = r
		case DelimCommentary:
			b.Commentary = r
		case DelimFootnote:
			b.Footnote = r
		}
		open = r
	}
}

// Regions enumerates every commentary block in the document, top to bottom.
// Raw is the inner text between the fences, ready for Parse.
func Regions(lines []string, fences Fences) []Region {
	var regions []Region

	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], fences.Open) {
			continue
		}

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(lines[j], fences.Close) {
				end = j
				break
			}
		}

		b := Bounds{Start: i, End: end}
		b.sections(lines)
		regions = append(regions, Region{
			Bounds: b,
			Raw:    strings.Join(lines[i+1:end], "\n"),
		})

		i = end // skip past the close fence
	}

	return regions
}
