package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cmnt/block"
	"cmnt/edit"
	"cmnt/state"
)

func positionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "line", Aliases: []string{"l"}, Usage: "zero-based cursor `LINE`", Required: true},
		&cli.IntFlag{Name: "ch", Usage: "zero-based cursor `COLUMN` on the line"},
	}
}

// loadBuffer reads the document into an editor buffer with the cursor placed
// at the requested position.
func loadBuffer(ctx context.Context, cmd *cli.Command) (*edit.Buffer, string, block.Fences, error) {
	env := state.EnvFromContext(ctx)

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		return nil, "", block.Fences{}, errors.New("no input file has been specified")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", block.Fences{}, fmt.Errorf("unable to read file (%s): %w", path, err)
	}

	ed := edit.NewBuffer(string(data))
	ed.SetCursor(edit.Position{Line: int(cmd.Int("line")), Ch: int(cmd.Int("ch"))})

	fences := block.Fences{
		Open:  env.Cfg.Document.Fences.Open,
		Close: env.Cfg.Document.Fences.Close,
	}
	return ed, path, fences, nil
}

// footnoteAdd inserts a reference marker and a definition line, writing the
// document back as a single whole-file replace.
func footnoteAdd(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("footnote")

	ed, path, fences, err := loadBuffer(ctx, cmd)
	if err != nil {
		return err
	}

	if err := edit.InsertFootnote(ed, fences, log); err != nil {
		return fmt.Errorf("unable to insert footnote: %w", err)
	}

	if err := os.WriteFile(path, []byte(ed.Value()), 0644); err != nil {
		return fmt.Errorf("unable to write file (%s): %w", path, err)
	}

	cur := ed.Cursor()
	log.Info("Footnote inserted", zap.String("file", path), zap.Int("line", cur.Line), zap.Int("ch", cur.Ch))
	fmt.Printf("%d:%d\n", cur.Line, cur.Ch)
	return nil
}

func footnoteDef(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("footnote")

	ed, _, fences, err := loadBuffer(ctx, cmd)
	if err != nil {
		return err
	}

	if err := edit.GotoDefinition(ed, fences, log); err != nil {
		return fmt.Errorf("unable to find definition: %w", err)
	}

	cur := ed.Cursor()
	fmt.Printf("%d:%d\n", cur.Line, cur.Ch)
	return nil
}

func footnoteRef(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("footnote")

	ed, _, fences, err := loadBuffer(ctx, cmd)
	if err != nil {
		return err
	}

	if err := edit.GotoReference(ed, fences, log); err != nil {
		return fmt.Errorf("unable to find reference: %w", err)
	}

	cur := ed.Cursor()
	fmt.Printf("%d:%d\n", cur.Line, cur.Ch)
	return nil
}
