package pbtool

import (
	"errors"
	"path/filepath"
	"runtime"
	"slices"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// Builder runs the build steps of one plugin project. Paths in the Project
// are relative to Dir.
type Builder struct {
	Project *pbcfg.Project
	// Dir is the project directory. Empty means the working directory.
	Dir string
	Env *pbkore.Env
}

func (bd *Builder) env(tr *pbkore.Trace) *pbkore.Env {
	if bd.Env == nil {
		bd.Env = pbkore.DefaultEnv(tr)
	}
	return bd.Env
}

func (bd *Builder) path(rel string) string {
	if bd.Dir == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(bd.Dir, rel)
}

// DefaultTools returns the executables that are searched for the tool
// option opt, in order of preference.
func DefaultTools(opt string) []string {
	switch opt {
	case pbcfg.ToolUICompiler:
		return []string{"pyuic4"}
	case pbcfg.ToolResourceCompiler:
		return []string{"pyrcc4"}
	case pbcfg.ToolTranslator:
		return []string{"lrelease", "lrelease-qt"}
	case pbcfg.ToolDocBuilder:
		if runtime.GOOS == "windows" {
			return []string{"make.bat"}
		}
		return []string{"make"}
	case pbcfg.ToolArchiver:
		return []string{"zip"}
	}
	return nil
}

// FindTool returns the command line of the tool option opt with the
// executable resolved through the env's PATH. A command configured in the
// project's tools section takes precedence over the [DefaultTools]. If the
// executable cannot be found the error matches [pbkore.ErrToolNotFound].
func (bd *Builder) FindTool(tr *pbkore.Trace, opt string) ([]string, error) {
	if cmd, ok := bd.Project.Tool(opt); ok {
		exe, err := pbkore.LookTool(bd.env(tr), cmd[0])
		if err != nil {
			return nil, err
		}
		return slices.Concat([]string{exe}, cmd[1:]), nil
	}
	names := DefaultTools(opt)
	if len(names) == 0 {
		return nil, errors.New("unknown tool option " + opt)
	}
	exe, err := pbkore.LookAnyTool(bd.env(tr), names...)
	if err != nil {
		return nil, err
	}
	return []string{exe}, nil
}

func toolCommand(tool []string, dir string, args ...string) *pbkore.Command {
	return &pbkore.Command{
		Dir:  dir,
		Exe:  tool[0],
		Args: slices.Concat(tool[1:], args),
	}
}
