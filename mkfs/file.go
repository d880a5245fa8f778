package mkfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File is a path of a regular file, relative to the current working
// directory unless it is absolute. Path derivations like [File.WithExt] are
// pure string operations that do not touch the filesystem.
type File string

func (f File) Path() string { return string(f) }

func (f File) Stat() (fs.FileInfo, error) { return os.Stat(f.Path()) }

func (f File) Exists() bool {
	st, err := f.Stat()
	return err == nil && !st.IsDir()
}

// StateAt returns the modification time of f. If f does not exist, is a
// directory or cannot be stat'ed the zero Time is returned.
func (f File) StateAt() time.Time {
	st, err := f.Stat()
	if err != nil || st.IsDir() {
		return time.Time{}
	}
	return st.ModTime()
}

// ext is the extension of path. Leading dots of the base name do not start an
// extension, i.e. ".ui" has none while ".hidden.ui" has ".ui".
func ext(path string) string {
	base := filepath.Base(path)
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return ""
	}
	return filepath.Ext(path)
}

// WithExt replaces the extension of f with newExt. An empty newExt strips the
// extension. If f has no extension, newExt is appended. A dot file like ".ui"
// has no extension and becomes ".ui.py".
func (f File) WithExt(newExt string) File {
	path := f.Path()
	if newExt == "" {
		fExt := ext(path)
		if fExt == "" {
			return f
		}
		return File(path[:len(path)-len(fExt)])
	}
	if newExt[0] != '.' {
		newExt = "." + newExt
	}
	fExt := ext(path)
	if fExt == "" {
		return File(path + newExt)
	}
	return File(path[:len(path)-len(fExt)] + newExt)
}

// WithSuffix strips the extension of f and appends suffix, e.g.
// "res.qrc" → "res_rc.py" for the suffix "_rc.py".
func (f File) WithSuffix(suffix string) File {
	return File(f.WithExt("").Path() + suffix)
}

// Remove deletes f. It is not an error if f does not exist. removed reports
// whether there was something to remove.
func (f File) Remove() (removed bool, err error) {
	err = os.Remove(f.Path())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}
