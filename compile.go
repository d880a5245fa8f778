package pbtool

import (
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

type CompileStats struct {
	Compiled int
	Skipped  int // up-to-date
	Missing  int // source does not exist
}

func (s CompileStats) String() string {
	return fmt.Sprintf("%d compiled, %d up-to-date, %d missing",
		s.Compiled,
		s.Skipped,
		s.Missing,
	)
}

// Compiler runs the external Tool once for each stale artifact with the
// arguments "-o <output> <source>".
type Compiler struct {
	Tool []string
	// Dir is the directory the tool is run in. Artifact paths are relative
	// to Dir.
	Dir string
	Env *pbkore.Env
}

// Compile compiles all stale artifacts of arts. Artifacts without an
// existing source are skipped and counted as missing. The first failing
// tool run stops compilation and is returned as [*pbkore.ToolFailure].
func (c *Compiler) Compile(tr *pbkore.Trace, arts []Artifact) (stats CompileStats, err error) {
	local := make([]Artifact, len(arts))
	for i, a := range arts {
		local[i] = a.In(c.Dir)
	}
	stale := Stale(local)
	for i, a := range arts {
		switch {
		case !local[i].Source.Exists():
			tr.Warn("`source` does not exist, skipped", `source`, a.Source)
			stats.Missing++
		case !stale.Test(uint(i)):
			tr.UpToDate(a.Source.Path(), a.Output.Path())
			stats.Skipped++
		default:
			tr.Compile(a.Source.Path(), a.Output.Path())
			cmd := toolCommand(c.Tool, c.Dir, "-o", a.Output.Path(), a.Source.Path())
			if err := cmd.Run(tr, c.Env); err != nil {
				return stats, err
			}
			stats.Compiled++
		}
	}
	return stats, nil
}

type CompileReport struct {
	UI, Resources CompileStats
}

// CompileAll compiles the UI files and then the resource files of the
// project. If a compiler cannot be found, its step is skipped with a warning.
func (bd *Builder) CompileAll(tr *pbkore.Trace) (rep CompileReport, err error) {
	rep.UI, err = bd.compileStep(tr, "compile ui", pbcfg.ToolUICompiler, ResolveCompiledUI(bd.Project))
	if err != nil {
		return rep, err
	}
	rep.Resources, err = bd.compileStep(tr, "compile resources", pbcfg.ToolResourceCompiler, ResolveCompiledResources(bd.Project))
	return rep, err
}

func (bd *Builder) compileStep(tr *pbkore.Trace, step, toolOpt string, arts []Artifact) (CompileStats, error) {
	tr = tr.Step(step)
	defer tr.Done()
	tool, err := bd.FindTool(tr, toolOpt)
	switch {
	case errors.Is(err, pbkore.ErrToolNotFound):
		tr.Warn("unable to `step`: `error`", `step`, step, `error`, err)
		return CompileStats{}, nil
	case err != nil:
		return CompileStats{}, err
	}
	c := Compiler{Tool: tool, Dir: bd.Dir, Env: bd.env(tr)}
	stats, err := c.Compile(tr, arts)
	tr.Info("`step`: `stats`", `step`, step, `stats`, stats)
	return stats, err
}

// CleanCompiled removes the outputs of all artifacts of the project. Outputs
// that do not exist are ignored. Failing removals are reported and do not
// stop cleaning.
func (bd *Builder) CleanCompiled(tr *pbkore.Trace) (removed int, err error) {
	tr = tr.Step("clean")
	defer tr.Done()
	arts := append(ResolveCompiledUI(bd.Project), ResolveCompiledResources(bd.Project)...)
	var errs []error
	for _, a := range arts {
		out := a.In(bd.Dir).Output
		ok, err := out.Remove()
		switch {
		case err != nil:
			tr.Warn("cannot delete `file`: `error`", `file`, a.Output, `error`, err)
			errs = append(errs, err)
		case ok:
			tr.Remove(a.Output.Path())
			removed++
		default:
			tr.Debug("`file` not present", `file`, a.Output)
		}
	}
	return removed, errors.Join(errs...)
}
