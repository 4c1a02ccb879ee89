package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// StaleFile describes a generated file whose on-disk copy is missing
// or differs from a fresh generation.
type StaleFile struct {
	Path string
	Diff string
}

// CheckFiles compares freshly generated files against their on-disk
// copies without writing anything. A byte-identical copy passes; a
// missing or differing one is reported as stale with a rendered diff.
func CheckFiles(files []GeneratedFile) ([]StaleFile, error) {
	var stale []StaleFile

	dmp := diffmatchpatch.New()

	for _, file := range files {
		existing, err := os.ReadFile(file.Path())
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, StaleFile{
				Path: file.Path(),
				Diff: "file does not exist, run tuplegen to create it",
			})

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Path(), err)
		}

		if bytes.Equal(existing, file.Content) {
			continue
		}

		diffs := dmp.DiffMain(string(existing), string(file.Content), true)
		stale = append(stale, StaleFile{
			Path: file.Path(),
			Diff: dmp.DiffPrettyText(diffs),
		})
	}

	return stale, nil
}
