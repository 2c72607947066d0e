// Package content keeps per-document state for a single processing pass.
package content

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"cmnt/block"
	"cmnt/config"
	"cmnt/content/text"
	"cmnt/state"
)

// Document encapsulates the raw source text and everything derived from it
// during a single pass: enumerated commentary regions, parsed blocks and the
// block registry. Registries are never shared between documents or reused
// across passes.
type Document struct {
	SrcName   string
	Lines     []string
	Regions   []block.Region
	Blocks    []*block.Block
	SessionID uuid.UUID

	Splitter *text.Splitter

	// registry resolves block IDs during rendering. Append-only while the
	// pass is running, dropped wholesale by Close.
	registry map[string]*block.Block
	seq      int
}

// Prepare reads the source document, enumerates commentary regions and parses
// every one of them into a block. Block IDs are assigned here, sequentially
// per document, and all derived DOM ids are namespaced by a fresh session
// UUID.
func Prepare(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	session, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate session UUID: %w", err)
	}

	d := &Document{
		SrcName:   srcName,
		Lines:     splitLines(string(data)),
		SessionID: session,
		registry:  make(map[string]*block.Block),
	}

	fences := fencesFromConfig(env.Cfg)
	d.Regions = block.Regions(d.Lines, fences)
	for _, region := range d.Regions {
		b := block.Parse(region.Raw, log)
		d.seq++
		b.ID = fmt.Sprintf("cb-%d", d.seq)
		d.registry[b.ID] = b
		d.Blocks = append(d.Blocks, b)
	}
	log.Debug("Prepared document",
		zap.String("source", srcName),
		zap.Int("lines", len(d.Lines)),
		zap.Int("blocks", len(d.Blocks)),
		zap.Stringer("session", session))

	if tag, err := language.Parse(env.Cfg.Document.Stats.Language); err == nil {
		d.Splitter = text.NewSplitter(tag, log)
	} else {
		log.Warn("Unable to parse configured language tag", zap.String("tag", env.Cfg.Document.Stats.Language), zap.Error(err))
	}

	// Save source and parse results for debugging. Names are prefixed with
	// the session UUID, sources with clashing base names are fine.
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("sources/%s-%s", session, filepath.Base(srcName)), data)
		env.Rpt.StoreData(fmt.Sprintf("sources/%s-%s_prepared", session, filepath.Base(srcName)), []byte(d.String()))
	}

	return d, nil
}

// Lookup returns previously registered block.
func (d *Document) Lookup(id string) (*block.Block, bool) {
	b, ok := d.registry[id]
	return b, ok
}

// Close drops the block registry. The document must not be used afterwards.
func (d *Document) Close() error {
	d.registry = nil
	d.Blocks = nil
	return nil
}

func fencesFromConfig(cfg *config.Config) block.Fences {
	f := block.Fences{
		Open:  cfg.Document.Fences.Open,
		Close: cfg.Document.Fences.Close,
	}
	if len(f.Open) == 0 || len(f.Close) == 0 {
		return block.DefaultFences()
	}
	return f
}

func splitLines(in string) []string {
	lines := strings.Split(in, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing newline does not start a new line
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
