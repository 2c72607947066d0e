// Package export writes parsed commentary blocks back out as standalone
// plain-text notes.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cmnt/block"
	"cmnt/config"
	"cmnt/content"
	"cmnt/state"
)

// Values is a struct that holds variables we make available for template
// expansion, both for note content and for output file naming.
type Values struct {
	SourceFile string
	BlockIndex int
	Title      string
	Tags       []string
	Text       string
	Commentary string
	Footnotes  []block.ResolvedFootnote
}

const defaultNoteTemplate = `{{- if .Title }}# {{ .Title }}

{{ end -}}
{{- if .Tags }}tags: {{ .Tags | join ", " }}

{{ end -}}
{{- if .Text }}> {{ .Text | trim }}

{{ end -}}
{{ .Commentary | trim }}
{{ range .Footnotes }}
[{{ .Display }}] {{ .Type }}: {{ .Content | trim }}
{{- end }}
`

func buildValues(d *content.Document, idx int, b *block.Block, log *zap.Logger) Values {
	resolved := block.Resolve(b.CommentaryRaw, b.FootnoteDefsRaw, log)

	return Values{
		SourceFile: strings.TrimSuffix(filepath.Base(d.SrcName), filepath.Ext(d.SrcName)),
		BlockIndex: idx + 1,
		Title:      b.Metadata.Fields["title"],
		Tags:       b.Metadata.Tags,
		Text:       b.OriginalText,
		Commentary: plainCommentary(resolved.Commentary),
		Footnotes:  resolved.Footnotes,
	}
}

// plainCommentary rewrites internal placeholder tokens as visible [n] markers.
func plainCommentary(in string) string {
	var out strings.Builder
	for {
		before, display, after, found := block.CutPlaceholder(in)
		out.WriteString(before)
		if !found {
			return out.String()
		}
		fmt.Fprintf(&out, "[%d]", display)
		in = after
	}
}

func expand(name, text string, v Values) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("unable to parse template %s: %w", name, err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, v); err != nil {
		return "", fmt.Errorf("unable to expand template %s: %w", name, err)
	}
	return out.String(), nil
}

// Note renders a single block with the default note template.
func Note(d *content.Document, idx int, b *block.Block, log *zap.Logger) (string, error) {
	return expand("note", defaultNoteTemplate, buildValues(d, idx, b, log))
}

// fileName builds the output file name for a block, from the configured name
// template when one is set.
func fileName(v Values, env *state.LocalEnv) string {
	name := ""
	if tmplText := env.Cfg.Document.Export.NameTemplate; tmplText != "" {
		expanded, err := expand("name", tmplText, v)
		if err != nil {
			env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		} else {
			name = strings.TrimSpace(expanded)
		}
	}
	if name == "" {
		name = fmt.Sprintf("%s-%d", v.SourceFile, v.BlockIndex)
	}
	if env.Cfg.Document.Export.Transliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + ".md"
}

// Run exports every commentary block of the source document as a separate
// note file under the destination directory.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")
	env.Overwrite = cmd.Bool("overwrite")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		var err error
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source (%s): %w", src, err)
	}
	defer file.Close()

	d, err := content.Prepare(ctx, file, filepath.Base(src), log)
	if err != nil {
		return fmt.Errorf("unable to parse document (%s): %w", src, err)
	}
	defer d.Close()

	var errs error
	for i, b := range d.Blocks {
		note, err := Note(d, i, b, log)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		path := filepath.Join(dst, fileName(buildValues(d, i, b, log), env))
		if _, err := os.Stat(path); err == nil && !env.Overwrite {
			errs = multierr.Append(errs, fmt.Errorf("output file already exists: %s", path))
			continue
		}
		if err := os.WriteFile(path, []byte(note), 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to write note: %w", err))
			continue
		}
		log.Info("Exported block", zap.String("block", b.ID), zap.String("to", path))
	}
	if errs != nil {
		return fmt.Errorf("export finished with errors: %w", errs)
	}
	log.Info("Export completed", zap.String("source", src), zap.Int("blocks", len(d.Blocks)))
	return nil
}
