// Package project compiles multi-page projects: every page becomes a
// component file set, and the merge stage folds each page into the
// shared shell document.
package project

import (
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/generator"
)

// EntryKey is the reserved file map key of the shell document.
const EntryKey = "entry"

// Folder is a file map entry. An empty single segment path is the project root.
type Folder struct {
	Path  []string         `json:"path"`
	Files []generator.File `json:"files"`
}

// IsRoot reports whether the folder denotes the project root.
func (f *Folder) IsRoot() bool {
	return len(f.Path) == 1 && f.Path[0] == ""
}

// FileMap maps page ids to their generated files.
type FileMap map[string]*Folder

// Keys returns the page ids in sorted order.
func (fm FileMap) Keys() []string {
	return slices.Sorted(maps.Keys(fm))
}

// MarshalJSON emits the persistence format. The shell entry never
// appears in it.
func (fm FileMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]*Folder, len(fm))

	for key, folder := range fm {
		if key != EntryKey {
			out[key] = folder
		}
	}

	return json.Marshal(out)
}

// WriteTo writes every file under dir as <path segments>/<name>.<fileType>.
// It creates the directories if they don't exist.
func (fm FileMap) WriteTo(dir string) error {
	for _, key := range fm.Keys() {
		if key == EntryKey {
			continue
		}

		folder := fm[key]
		outDir := filepath.Join(append([]string{dir}, folder.Path...)...)

		if err := generator.WriteFiles(outDir, folder.Files); err != nil {
			return fmt.Errorf("writing page %q: %w", key, err)
		}
	}

	return nil
}

// markup returns the indexes of the markup files of a folder.
func (f *Folder) markup() []int {
	var out []int

	for i, file := range f.Files {
		if file.FileType == chunk.FileTypeHTML {
			out = append(out, i)
		}
	}

	return out
}
