package export

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"cmnt/config"
	"cmnt/content"
	"cmnt/state"
)

const exportDoc = `Narration.
"""commentary
---metadata---
title: Opening line
tags: literature, classics
---text---
Call me Ishmael.
---commentary---
Famous opening $[2], see $[1].
---footnote---
$[2]: warning: Disputed.
$[1]: Allegedly.
"""
`

func prepare(t *testing.T) (*state.LocalEnv, *content.Document) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)

	d, err := content.Prepare(ctx, strings.NewReader(exportDoc), "moby.md", env.Log)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	return env, d
}

func TestNote(t *testing.T) {
	env, d := prepare(t)

	note, err := Note(d, 0, d.Blocks[0], env.Log)
	if err != nil {
		t.Fatalf("unable to render note: %v", err)
	}

	for _, want := range []string{
		"# Opening line",
		"tags: literature, classics",
		"> Call me Ishmael.",
		// display numbering follows first occurrence: author 2 becomes [1]
		"Famous opening [1], see [2].",
		"[1] warning: Disputed.",
		"[2] note: Allegedly.",
	} {
		if !strings.Contains(note, want) {
			t.Errorf("note is missing %q:\n%s", want, note)
		}
	}
	if strings.Contains(note, "$[") || strings.Contains(note, "{{fnref:") {
		t.Errorf("raw markers leaked into the note:\n%s", note)
	}
}

func TestFileName(t *testing.T) {
	env, d := prepare(t)
	v := buildValues(d, 0, d.Blocks[0], env.Log)

	if got := fileName(v, env); got != "moby-1.md" {
		t.Errorf("unexpected default name: %q", got)
	}

	env.Cfg.Document.Export.NameTemplate = "{{ .SourceFile }}-{{ .Title }}-{{ .BlockIndex }}"
	env.Cfg.Document.Export.Transliterate = true
	if got := fileName(v, env); got != "moby-opening-line-1.md" {
		t.Errorf("unexpected templated name: %q", got)
	}

	// broken template falls back to the default scheme
	env.Cfg.Document.Export.NameTemplate = "{{ .NoSuchField }}"
	env.Cfg.Document.Export.Transliterate = false
	if got := fileName(v, env); got != "moby-1.md" {
		t.Errorf("broken template did not fall back: %q", got)
	}
}
