package mkfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// Copy copies files and directory trees within the OS's filesystem. Copied
// files keep the permission bits of their source.
type Copy struct {
	// If not zero, missing parent directories of a copied file are created
	// with MkDirMode.
	MkDirMode fs.FileMode
}

// File copies the regular file src to dst. An existing dst is overwritten.
func (cp Copy) File(tr *pbkore.Trace, dst, src string) error {
	st, err := os.Stat(src)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("FS copy: source '%s' is a directory", src)
	}
	return cp.copyFile(tr, dst, src, st)
}

// Tree copies the directory src with all its content into the directory dst.
// Existing directories are merged, existing files are overwritten. The first
// error stops the copy.
func (cp Copy) Tree(tr *pbkore.Trace, dst, src string) error {
	st, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("FS copy: source '%s' is not a directory", src)
	}
	if err := checkNesting(dst, src); err != nil {
		return err
	}
	return filepath.WalkDir(src, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		return cp.copyEntry(tr, filepath.Join(dst, rel), path, e)
	})
}

func checkNesting(dst, src string) error {
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if absDst == absSrc ||
		strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return fmt.Errorf("FS copy: target '%s' inside source directory '%s'",
			dst,
			src,
		)
	}
	return nil
}

func (cp Copy) copyEntry(tr *pbkore.Trace, dst, src string, e fs.DirEntry) error {
	sstat, err := e.Info()
	if err != nil {
		return err
	}
	if !sstat.IsDir() {
		return cp.copyFile(tr, dst, src, sstat)
	}
	tr.Debug("FS copy: mkdir `src` -> `dst`", `src`, src, `dst`, dst)
	return os.MkdirAll(dst, sstat.Mode().Perm()|0700)
}

func (cp Copy) copyFile(tr *pbkore.Trace, dst, src string, sstat fs.FileInfo) (err error) {
	if src == dst {
		return nil
	}
	tr.Copy(src, dst)
	if err := cp.provideDir(filepath.Dir(dst)); err != nil {
		return err
	}
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.OpenFile(dst,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		sstat.Mode().Perm(),
	)
	if err != nil {
		return err
	}
	defer func() {
		if e := w.Close(); e != nil {
			err = errors.Join(err, e)
		}
	}()
	_, err = io.Copy(w, r)
	return err
}

func (cp Copy) provideDir(path string) error {
	if cp.MkDirMode == 0 {
		return nil
	}
	return os.MkdirAll(path, cp.MkDirMode)
}
