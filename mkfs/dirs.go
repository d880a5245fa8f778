package mkfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// MkDir creates the single directory path unless it already exists. created
// reports whether path was created.
func MkDir(tr *pbkore.Trace, path string, mode fs.FileMode) (created bool, err error) {
	st, err := os.Stat(path)
	switch {
	case err == nil:
		if !st.IsDir() {
			return false, fmt.Errorf("%s is no directory", path)
		}
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}
	tr.Debug("create `directory`", `directory`, path)
	if err = os.Mkdir(path, mode); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveTree deletes path with everything it contains. It is not an error if
// path does not exist. removed reports whether there was something to remove.
func RemoveTree(tr *pbkore.Trace, path string) (removed bool, err error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	tr.Remove(path)
	if err := os.RemoveAll(path); err != nil {
		return false, err
	}
	return true, nil
}
