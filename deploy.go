package pbtool

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.fractalqb.de/fractalqb/pbtool/mkfs"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// CopyFailure is a file or directory that could not be deployed.
type CopyFailure struct {
	Item string
	Err  error
}

func (f CopyFailure) Error() string {
	return fmt.Sprintf("error copying %s: %s", f.Item, f.Err)
}

func (f CopyFailure) Unwrap() error { return f.Err }

// CopyFailures are all failures of one deployment.
type CopyFailures []CopyFailure

func (fs CopyFailures) Error() string {
	if len(fs) == 1 {
		return fs[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d files/directories failed to deploy:", len(fs))
	for _, f := range fs {
		sb.WriteString("\n- ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

func (fs CopyFailures) Unwrap() []error {
	errs := make([]error, len(fs))
	for i, f := range fs {
		errs[i] = f
	}
	return errs
}

func (fs *CopyFailures) add(tr *pbkore.Trace, item string, err error) {
	tr.CopyFailed(item, err)
	*fs = append(*fs, CopyFailure{Item: item, Err: err})
}

// Deployer installs a plugin project into the plugin directory of the
// host application.
type Deployer struct {
	Builder
	PluginRoot string
	// DocDir is the directory with the help sources, relative to the
	// project directory. Empty means [DefaultDocDir].
	DocDir string
}

var errNoPluginName = errors.New("plugin name is missing")

// PluginDir is the directory the plugin is deployed to.
func (dp *Deployer) PluginDir() (string, error) {
	if dp.Project.Name == "" {
		return "", errNoPluginName
	}
	return filepath.Join(dp.PluginRoot, dp.Project.Name), nil
}

// Install copies the install manifest, the extra directories and the built
// help into the plugin directory without compiling anything. Missing
// directories are created. A failing copy does not stop the installation.
// All failures are returned as [CopyFailures].
func (dp *Deployer) Install(tr *pbkore.Trace) error {
	tr = tr.Step("install")
	defer tr.Done()
	dir, err := dp.PluginDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dp.PluginRoot, 0777); err != nil {
		return fmt.Errorf("plugin root: %w", err)
	}
	if _, err := mkfs.MkDir(tr, dir, 0777); err != nil {
		return fmt.Errorf("plugin directory: %w", err)
	}
	tr.Info("deploying to `dir`", `dir`, dir)

	var fails CopyFailures
	cp := mkfs.Copy{MkDirMode: 0777}
	for _, f := range ResolveInstallManifest(dp.Project) {
		if err := cp.File(tr, filepath.Join(dir, f), dp.path(f)); err != nil {
			fails.add(tr, f, err)
		}
	}
	for _, xdir := range dp.Project.Files.ExtraDirs {
		if err := cp.Tree(tr, filepath.Join(dir, xdir), dp.path(xdir)); err != nil {
			fails.add(tr, xdir, err)
		}
	}
	if help := dp.Project.Help; help.Dir != "" {
		if err := cp.Tree(tr, filepath.Join(dir, help.Target), dp.path(help.Dir)); err != nil {
			fails.add(tr, help.Dir, err)
		}
	}
	if len(fails) > 0 {
		return fails
	}
	return nil
}

// Full removes a deployed plugin, compiles all stale artifacts, builds the
// help and then installs the plugin. Steps whose tool cannot be found are
// skipped. A failing tool aborts the deployment before anything is
// installed.
func (dp *Deployer) Full(tr *pbkore.Trace) error {
	tr = tr.Step("deploy")
	defer tr.Done()
	if _, err := dp.RemoveDeployed(tr); err != nil {
		return err
	}
	if _, err := dp.CompileAll(tr); err != nil {
		return err
	}
	if err := dp.BuildDocs(tr, dp.DocDir); err != nil {
		return err
	}
	return dp.Install(tr)
}

// RemoveDeployed deletes the deployed plugin. It is not an error if the
// plugin is not deployed.
func (dp *Deployer) RemoveDeployed(tr *pbkore.Trace) (removed bool, err error) {
	dir, err := dp.PluginDir()
	if err != nil {
		return false, err
	}
	if removed, err = mkfs.RemoveTree(tr, dir); err != nil {
		return false, fmt.Errorf("plugin was not deleted: %w", err)
	}
	return removed, nil
}
