package util

import (
	"os"
	"path/filepath"
	"strings"
)

const partialSuffix = ".partial"

// WriteFileAtomic writes data next to path with a .partial suffix and renames
// it into place once fully written. A failed run never leaves a truncated
// document behind, only (at worst) a .partial sibling that the interrupt
// handler and the next run clean up.
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + partialSuffix

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// RemovePartialFiles deletes leftover .partial files directly under dir.
func RemovePartialFiles(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), partialSuffix) {
			continue
		}
		_ = os.Remove(filepath.Join(dir, e.Name()))
	}
}
