package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every file under dir as <name>.<fileType>.
// It creates the directory if it doesn't exist.
func WriteFiles(dir string, files []File) error {
	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(dir, file.String())

		err := os.WriteFile(path, []byte(file.Content), filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", path, err)
		}
	}

	return nil
}
