package organizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"foldersort/internal/category"
)

// ResolveCollision returns destination unchanged when nothing exists there.
// Otherwise it tries name_1.ext, name_2.ext, ... in the same directory and
// returns the first one that is free. The counter has no upper bound.
func ResolveCollision(destination string) (string, error) {
	return resolveCollision(destination, nil)
}

// resolveCollision treats paths in claimed as occupied in addition to what
// exists on disk, so a dry run plans the same names a real pass would pick.
func resolveCollision(destination string, claimed map[string]struct{}) (string, error) {
	taken, err := occupied(destination, claimed)
	if err != nil {
		return "", err
	}
	if !taken {
		return destination, nil
	}

	dir := filepath.Dir(destination)
	stem, ext := category.SplitExt(filepath.Base(destination))
	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, stem+"_"+strconv.Itoa(counter)+ext)
		taken, err := occupied(candidate, claimed)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func occupied(path string, claimed map[string]struct{}) (bool, error) {
	if _, ok := claimed[path]; ok {
		return true, nil
	}
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
