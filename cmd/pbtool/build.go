package main

import (
	"fmt"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"github.com/spf13/cobra"
)

func newCompileCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the resource and ui files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config, pbcfg.KeyResources)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			bd := a.builder(tr, prj)
			rep, err := bd.CompileAll(tr)
			fmt.Fprintf(a.out, "Compiled %d UI files\n", rep.UI.Compiled)
			fmt.Fprintf(a.out, "Compiled %d resource files\n", rep.Resources.Compiled)
			return err
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newCleanCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove compiled resource and ui files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config, pbcfg.KeyResources)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Cleaning resource and ui files")
			tr := a.trace(cmd)
			bd := a.builder(tr, prj)
			n, err := bd.CleanCompiled(tr)
			fmt.Fprintf(a.out, "Deleted %d files\n", n)
			return err
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newDocCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Build HTML version of the help files using sphinx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.optionalProject(config)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Building the help documentation")
			tr := a.trace(cmd)
			bd := a.builder(tr, prj)
			return bd.BuildDocs(tr, "")
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newCleanDocsCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "clean_docs",
		Short: "Remove the built HTML help files from the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.optionalProject(config)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Removing built HTML from the help documentation")
			tr := a.trace(cmd)
			bd := a.builder(tr, prj)
			return bd.CleanDocs(tr, "")
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newTranslateCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Build translations using lrelease",
		Long: `Build translations using lrelease. Locales must be specified in the config
file and the corresponding .ts file must exist in the i18n directory of your
plugin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			bd := a.builder(tr, prj)
			n, err := bd.Translate(tr)
			if n > 0 {
				fmt.Fprintf(a.out, "Translated %d locales\n", n)
			}
			return err
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}
