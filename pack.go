package pbtool

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.fractalqb.de/fractalqb/pbtool/mkfs"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// Package zips the deployed plugin into <name>.zip in outDir, replacing an
// existing archive. The archiver is run in the plugin root so that the
// archive contains the plugin directory. archive is empty if no archiver was
// found.
func (dp *Deployer) Package(tr *pbkore.Trace, outDir string) (archive string, err error) {
	tr = tr.Step("package")
	defer tr.Done()
	dir, err := dp.PluginDir()
	if err != nil {
		return "", err
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return "", fmt.Errorf("plugin '%s' is not deployed to %s", dp.Project.Name, dp.PluginRoot)
	}
	tool, err := dp.FindTool(tr, pbcfg.ToolArchiver)
	switch {
	case errors.Is(err, pbkore.ErrToolNotFound):
		tr.Warn("cannot create archive: `error`", `error`, err)
		return "", nil
	case err != nil:
		return "", err
	}
	if outDir, err = filepath.Abs(outDir); err != nil {
		return "", err
	}
	zip := mkfs.File(filepath.Join(outDir, dp.Project.Name+".zip"))
	if ok, err := zip.Remove(); err != nil {
		return "", err
	} else if ok {
		tr.Remove(zip.Path())
	}
	cmd := toolCommand(tool, dp.PluginRoot, "-r", zip.Path(), dp.Project.Name)
	if err := cmd.Run(tr, dp.env(tr)); err != nil {
		return "", err
	}
	return zip.Path(), nil
}
