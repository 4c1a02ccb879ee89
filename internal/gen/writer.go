package gen

import (
	"fmt"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files next to their source packages.
// Directories are created if they don't exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir != "" {
			err := os.MkdirAll(file.Dir, dirPerm)
			if err != nil {
				return fmt.Errorf("creating directory %s: %w", file.Dir, err)
			}
		}

		err := os.WriteFile(file.Path(), file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path(), err)
		}
	}

	return nil
}
