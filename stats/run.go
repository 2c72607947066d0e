package stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"cmnt/content"
	"cmnt/state"
)

// Run is the stats command action: collect and print statistics for a single
// document.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("stats")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
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

	s := Collect(d, log)

	if cmd.Bool("yaml") {
		data, err := s.YAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	fmt.Print(s.Text())
	return nil
}
