package gitlab

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/smmilton/llm-fragments-gitlab/internal/fragment"
	"github.com/smmilton/llm-fragments-gitlab/internal/log"
)

// collectFiles walks the materialized tree and emits one fragment per
// regular UTF-8 text file. Binary (non-UTF-8) files are skipped, which
// is not an error. WalkDir visits entries in lexical order, so the
// result is deterministic within a run.
func collectFiles(root, prefix string) ([]fragment.Fragment, error) {
	var fragments []fragment.Fragment

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !utf8.Valid(data) {
			log.Debug("skipping binary file", "path", path)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fragments = append(fragments, fragment.Fragment{
			Content: string(data),
			Source:  prefix + "/" + filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fragments, nil
}
