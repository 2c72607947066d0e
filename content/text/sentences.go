// Package text provides tokenization helpers for commentary statistics.
package text

import (
	"iter"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter prepares sentence tokenizer for the requested language. Only
// English training data is shipped with the program, for everything else
// sentence splitting is turned off and the whole text counts as a single
// sentence.
func NewSplitter(lang language.Tag, log *zap.Logger) *Splitter {

	base, confidence := lang.Base()
	if confidence == language.No {
		log.Warn("Unable to determine language base", zap.Stringer("tag", lang))
		return nil
	}

	if base.String() != "en" {
		log.Warn("No sentence tokenizer model for language, turning off sentence splitting", zap.Stringer("language", lang))
		return nil
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data", zap.Stringer("tag", lang), zap.Error(err))
		return nil
	}
	return &Splitter{tokenizer}
}

// Split returns slice of sentences.
// For memory-efficient streaming, use Sentences iterator instead.
func (s *Splitter) Split(in string) []string {

	var result []string
	if s == nil {
		// sentences tokenizer is off
		return append(result, in)
	}

	for sentence := range s.Sentences(in) {
		result = append(result, sentence)
	}
	return result
}

// Sentences returns an iterator over sentences. Tokenizer leaves sentence
// trailing spaces attached to the next sentence - move them back so counts and
// excerpts stay stable.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			yield(in)
			return
		}

		parts := s.Tokenize(in)
		if len(parts) == 0 {
			return
		}

		for i := 0; i < len(parts)-1; i++ {
			text := parts[i].Text
			next := parts[i+1].Text
			for idx, sym := range next {
				if !unicode.IsSpace(sym) {
					text = text + next[0:idx]
					parts[i+1].Text = next[idx:]
					break
				}
			}
			if !yield(text) {
				return
			}
		}
		yield(parts[len(parts)-1].Text)
	}
}

// SplitWords returns slice of words.
// For memory-efficient streaming, use Words iterator instead.
func (s *Splitter) SplitWords(in string, ignoreNBSP bool) []string {
	result := []string{}
	for word := range s.Words(in, ignoreNBSP) {
		result = append(result, word)
	}
	return result
}

// Words returns an iterator over words.
// The ignoreNBSP parameter determines whether NBSP (0xA0) is treated as a separator.
func (*Splitter) Words(in string, ignoreNBSP bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		var word strings.Builder
		for _, sym := range in {
			if isSeparator(sym, ignoreNBSP) {
				if !yield(word.String()) {
					return
				}
				word.Reset()
				continue
			}
			word.WriteRune(sym)
		}
		yield(word.String())
	}
}

func isSeparator(r rune, ignoreNBSP bool) bool {
	if uint32(r) <= unicode.MaxLatin1 {
		switch r {
		// exclude NBSP from the list of white space separators for latin1 symbols
		case '\t', '\n', '\v', '\f', '\r', ' ', 0x85:
			return true
		case 0xA0: // NBSP
			return ignoreNBSP
		}
		return false
	}
	return unicode.IsSpace(r)
}
