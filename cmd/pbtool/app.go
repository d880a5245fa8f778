package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"git.fractalqb.de/fractalqb/pbtool"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
	"github.com/spf13/cobra"
)

type app struct {
	in       *bufio.Reader
	out, err io.Writer

	dir        string
	pluginRoot string
	yes        bool
	traceFlag  string
	tracer     pbtool.WriteTracer
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:     bufio.NewReader(in),
		out:    out,
		err:    errOut,
		tracer: pbtool.WriteTracer{W: out, Log: pbkore.DefaultTraceLog},
	}
	cmd := &cobra.Command{
		Use:   "pbtool",
		Short: "Compile and deploy a QGIS plugin",
		Long: `Simple tool to compile and deploy a QGIS plugin.

pbtool requires a configuration file (default: pb_tool.cfg) that declares
the files and resources used in your plugin. Use the create command to
generate a best-guess config file for an existing project, then tweak as
needed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.tracer.ParseLogFlag(a.traceFlag)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.traceFlag, "trace", "info", "Trace output: off, warn, info or debug")
	flags.StringVar(&a.pluginRoot, "plugin-root", "", "Plugin directory of QGIS (default ~/.qgis2/python/plugins)")
	flags.StringVarP(&a.dir, "dir", "C", "", "Plugin project directory (default the working directory)")
	flags.BoolVarP(&a.yes, "yes", "y", false, "Answer all confirmations with yes")

	cmd.AddCommand(
		newVersionCommand(a),
		newDeployCommand(a),
		newDCleanCommand(a),
		newZipCommand(a),
		newCompileCommand(a),
		newCleanCommand(a),
		newDocCommand(a),
		newCleanDocsCommand(a),
		newTranslateCommand(a),
		newValidateCommand(a),
		newListCommand(a),
		newCreateCommand(a),
	)
	return cmd
}

func addConfigFlag(cmd *cobra.Command, config *string) {
	cmd.Flags().StringVar(config, "config", pbcfg.DefaultFile,
		"Name of the config file to use if other than "+pbcfg.DefaultFile)
}

func (a *app) path(p string) string {
	if a.dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.dir, p)
}

func (a *app) trace(cmd *cobra.Command) *pbkore.Trace {
	return pbtool.NewTrace(cmd.Context(), &a.tracer)
}

func (a *app) env(tr *pbkore.Trace) *pbkore.Env {
	env := pbkore.DefaultEnv(tr)
	env.Out, env.Err = a.out, a.err
	return env
}

// project loads and parses the configuration file and checks that it has
// all required keys.
func (a *app) project(config string, required ...pbcfg.Key) (*pbcfg.Project, error) {
	cfg, err := pbcfg.Load(a.path(config))
	if err != nil {
		return nil, err
	}
	prj, err := pbcfg.ParseProject(cfg)
	if err != nil {
		return nil, err
	}
	if err = prj.Require(required...); err != nil {
		return nil, err
	}
	return prj, nil
}

// optionalProject is like project but returns a nil Project when the
// configuration file does not exist.
func (a *app) optionalProject(config string) (*pbcfg.Project, error) {
	prj, err := a.project(config)
	if errors.Is(err, pbcfg.ErrMissingConfigFile) {
		return nil, nil
	}
	return prj, err
}

func (a *app) builder(tr *pbkore.Trace, prj *pbcfg.Project) pbtool.Builder {
	return pbtool.Builder{Project: prj, Dir: a.dir, Env: a.env(tr)}
}

func (a *app) deployer(tr *pbkore.Trace, prj *pbcfg.Project) (*pbtool.Deployer, error) {
	root := a.pluginRoot
	if root == "" {
		var err error
		if root, err = pbtool.DefaultPluginRoot(); err != nil {
			return nil, err
		}
	}
	return &pbtool.Deployer{Builder: a.builder(tr, prj), PluginRoot: root}, nil
}

func (a *app) confirm(question string) (bool, error) {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	if a.yes {
		fmt.Fprintln(a.out, "y")
		return true, nil
	}
	answer, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (a *app) prompt(question string) (string, error) {
	for {
		fmt.Fprintf(a.out, "%s ", question)
		answer, err := a.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", errors.New("no answer on standard input")
		}
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}
