package table

import (
	"os"
	"path/filepath"
	"sort"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Discover lists candidate scan exports under dir matching the glob pattern
// (doublestar syntax, e.g. "*.xlsx" or "**/*.{xlsx,csv}"). Results are
// relative to dir and sorted for a stable picker order.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.{xlsx,csv}"
	}
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, m := range matches {
		if st, err := os.Stat(filepath.Join(dir, m)); err == nil && !st.IsDir() {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
