package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindManifests returns the paths of every SKILL.md below root, sorted.
func FindManifests(root string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/"+FileName)
	if err != nil {
		return nil, fmt.Errorf("searching %s for manifests: %w", root, err)
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	sort.Strings(paths)
	return paths, nil
}
