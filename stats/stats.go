// Package stats computes commentary statistics for a prepared document.
package stats

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cmnt/block"
	"cmnt/content"
	"cmnt/content/text"
)

// BlockStats describes a single commentary block.
type BlockStats struct {
	ID                  string         `yaml:"id"`
	Tags                []string       `yaml:"tags,omitempty"`
	TextWords           int            `yaml:"text_words"`
	CommentaryWords     int            `yaml:"commentary_words"`
	CommentarySentences int            `yaml:"commentary_sentences"`
	Footnotes           int            `yaml:"footnotes"`
	FootnotesByType     map[string]int `yaml:"footnotes_by_type,omitempty"`
	MissingDefinitions  int            `yaml:"missing_definitions"`
	OrphanDefinitions   int            `yaml:"orphan_definitions"`
}

// DocumentStats aggregates all blocks of one document.
type DocumentStats struct {
	Source             string       `yaml:"source"`
	Blocks             []BlockStats `yaml:"blocks"`
	Tags               []string     `yaml:"tags,omitempty"`
	CommentaryWords    int          `yaml:"commentary_words"`
	Footnotes          int          `yaml:"footnotes"`
	MissingDefinitions int          `yaml:"missing_definitions"`
	OrphanDefinitions  int          `yaml:"orphan_definitions"`
}

// Collect walks all blocks of the document and gathers counts. Sentence
// counting degrades to one sentence per block when no tokenizer model is
// available for the configured language.
func Collect(d *content.Document, log *zap.Logger) *DocumentStats {
	s := &DocumentStats{Source: d.SrcName}

	tags := make(map[string]struct{})
	for _, b := range d.Blocks {
		bs := collectBlock(b, d.Splitter, log)
		for _, tag := range bs.Tags {
			tags[tag] = struct{}{}
		}
		s.CommentaryWords += bs.CommentaryWords
		s.Footnotes += bs.Footnotes
		s.MissingDefinitions += bs.MissingDefinitions
		s.OrphanDefinitions += bs.OrphanDefinitions
		s.Blocks = append(s.Blocks, bs)
	}
	s.Tags = sortedNaturally(tags)
	return s
}

func collectBlock(b *block.Block, splitter *text.Splitter, log *zap.Logger) BlockStats {
	bs := BlockStats{
		ID:        b.ID,
		Tags:      slices.Clone(b.Metadata.Tags),
		TextWords: countWords(splitter, b.OriginalText),
	}
	slices.SortFunc(bs.Tags, naturally)

	bs.CommentaryWords = countWords(splitter, b.CommentaryRaw)
	if len(strings.TrimSpace(b.CommentaryRaw)) > 0 {
		bs.CommentarySentences = len(splitter.Split(b.CommentaryRaw))
	}

	resolved := block.Resolve(b.CommentaryRaw, b.FootnoteDefsRaw, log)
	bs.Footnotes = len(resolved.Footnotes)
	defined := 0
	for _, fn := range resolved.Footnotes {
		if fn.Missing {
			bs.MissingDefinitions++
			continue
		}
		defined++
		if bs.FootnotesByType == nil {
			bs.FootnotesByType = make(map[string]int)
		}
		bs.FootnotesByType[fn.Type.String()]++
	}
	bs.OrphanDefinitions = len(block.ParseDefinitions(b.FootnoteDefsRaw, log)) - defined

	return bs
}

func countWords(splitter *text.Splitter, in string) int {
	count := 0
	for word := range splitter.Words(in, true) {
		if len(strings.TrimSpace(word)) > 0 {
			count++
		}
	}
	return count
}

func naturally(a, b string) int {
	if a == b {
		return 0
	}
	if natural.Less(a, b) {
		return -1
	}
	return 1
}

func sortedNaturally(set map[string]struct{}) []string {
	return slices.SortedFunc(maps.Keys(set), naturally)
}

// Text renders the statistics as a human readable summary.
func (s *DocumentStats) Text() string {
	var out strings.Builder

	fmt.Fprintf(&out, "%s: %d blocks, %d commentary words, %d footnotes", s.Source, len(s.Blocks), s.CommentaryWords, s.Footnotes)
	if s.MissingDefinitions > 0 {
		fmt.Fprintf(&out, ", %d missing definitions", s.MissingDefinitions)
	}
	if s.OrphanDefinitions > 0 {
		fmt.Fprintf(&out, ", %d orphan definitions", s.OrphanDefinitions)
	}
	if len(s.Tags) > 0 {
		fmt.Fprintf(&out, "\n  tags: %s", strings.Join(s.Tags, ", "))
	}
	out.WriteByte('\n')

	for _, bs := range s.Blocks {
		fmt.Fprintf(&out, "  %s: %d/%d words (text/commentary), %d sentences, %d footnotes",
			bs.ID, bs.TextWords, bs.CommentaryWords, bs.CommentarySentences, bs.Footnotes)
		for _, name := range sortedKeys(bs.FootnotesByType) {
			fmt.Fprintf(&out, ", %d %s", bs.FootnotesByType[name], name)
		}
		if bs.MissingDefinitions > 0 {
			fmt.Fprintf(&out, ", %d missing", bs.MissingDefinitions)
		}
		if bs.OrphanDefinitions > 0 {
			fmt.Fprintf(&out, ", %d orphan", bs.OrphanDefinitions)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func sortedKeys(m map[string]int) []string {
	return slices.SortedFunc(maps.Keys(m), naturally)
}

// YAML renders the statistics for machine consumption.
func (s *DocumentStats) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal statistics: %w", err)
	}
	return data, nil
}
