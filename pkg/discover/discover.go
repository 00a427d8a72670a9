// Package discover finds input files under a root directory.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Files walks root recursively and returns every regular file whose
// extension satisfies match. The predicate receives the extension as
// returned by filepath.Ext, leading dot included. Results come back in
// lexical walk order, so repeated runs over the same tree see the same
// sequence. A missing or unreadable root is an error.
func Files(root string, match func(ext string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if match(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}
