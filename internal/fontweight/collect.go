package fontweight

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Collect expands files and directories into a sorted list of font files
// with one of exts. Directories are descended only when recursive is set.
// Paths that do not exist are returned in missing.
func Collect(paths []string, recursive bool, exts []string) (files, missing []string) {
	want := make([]string, len(exts))
	for i, ext := range exts {
		want[i] = strings.ToLower(ext)
	}
	matches := func(p string) bool {
		return slices.Contains(want, strings.ToLower(filepath.Ext(p)))
	}

	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			missing = append(missing, root)
			continue
		}

		if !info.IsDir() {
			if matches(root) {
				add(root)
			}
			continue
		}

		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if p != root && !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if matches(p) {
				add(p)
			}
			return nil
		})
	}

	sort.Strings(files)
	return files, missing
}
