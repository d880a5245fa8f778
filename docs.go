package pbtool

import (
	"errors"
	"os"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// DefaultDocDir holds the help sources and the make files that build them.
const DefaultDocDir = "help"

// BuildDocs runs "make html" in the help directory dir. If dir is empty,
// [DefaultDocDir] is used. A missing help directory or doc builder is
// reported and skipped.
func (bd *Builder) BuildDocs(tr *pbkore.Trace, dir string) error {
	return bd.makeDocs(tr, dir, "html")
}

// CleanDocs runs "make clean" in the help directory dir.
func (bd *Builder) CleanDocs(tr *pbkore.Trace, dir string) error {
	return bd.makeDocs(tr, dir, "clean")
}

func (bd *Builder) makeDocs(tr *pbkore.Trace, dir, target string) error {
	tr = tr.Step("docs " + target)
	defer tr.Done()
	if dir == "" {
		dir = DefaultDocDir
	}
	dir = bd.path(dir)
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		tr.Warn("no help directory `dir`", `dir`, dir)
		return nil
	}
	tool, err := bd.FindTool(tr, pbcfg.ToolDocBuilder)
	switch {
	case errors.Is(err, pbkore.ErrToolNotFound):
		tr.Warn("cannot build help: `error`", `error`, err)
		return nil
	case err != nil:
		return err
	}
	return toolCommand(tool, dir, target).Run(tr, bd.env(tr))
}
