package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"cmnt/config"
	"cmnt/state"
)

// buildOutputPath returns the output file path for a rendered document. It
// preserves source directory structure unless NoDirs is requested, and cleans
// up (optionally transliterating) the file name.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Document.Export.Transliterate {
		baseName = slug.Make(baseName)
	}
	return filepath.Join(outDir, config.CleanFileName(baseName)+".html")
}
