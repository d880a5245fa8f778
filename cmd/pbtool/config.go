package main

import (
	"errors"
	"fmt"
	"os"

	"git.fractalqb.de/fractalqb/pbtool"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of pbtool and exit",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "%s, %s\n", pbtool.Version, pbtool.VersionDate)
		},
	}
}

var errInvalidConfig = errors.New("invalid configuration")

func newValidateCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the config file for mandatory sections and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := pbcfg.Load(a.path(config))
			if err != nil {
				return err
			}
			if probs := pbcfg.Validate(cfg); !probs.OK() {
				for _, p := range probs {
					fmt.Fprintln(a.out, p)
				}
				fmt.Fprintf(a.out, "Your %s file is invalid\n", config)
				return errInvalidConfig
			}
			prj, err := pbcfg.ParseProject(cfg)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			for _, dup := range pbtool.ResolveInstallManifest(prj).Duplicates() {
				tr.Warn("`file` is deployed more than once", `file`, dup)
			}
			fmt.Fprintf(a.out, "Your %s file is valid and contains all mandatory items\n", config)
			return nil
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the contents of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := pbcfg.Load(a.path(config))
			if err != nil {
				return err
			}
			_, err = cfg.WriteTo(a.out)
			return err
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newCreateCommand(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a config file based on source files in the project directory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dir := a.path(".")
			guess, err := pbcfg.GuessProject(dir)
			if err != nil {
				fmt.Fprintln(a.out, err)
				fmt.Fprintln(a.out, "Unable to get the name of your plugin from", pbcfg.MetadataFile)
				if guess == nil {
					return err
				}
				if guess.Name, err = a.prompt("Name of the plugin:"); err != nil {
					return err
				}
			}
			fname := name
			if _, err := os.Stat(a.path(fname)); err == nil {
				ok, err := a.confirm(fmt.Sprintf("%s exists. Overwrite?", fname))
				if err != nil {
					return err
				}
				if !ok {
					if fname, err = a.prompt("Enter a name for the config file:"); err != nil {
						return err
					}
				}
			}
			f, err := os.Create(a.path(fname))
			if err != nil {
				return err
			}
			if err = guess.WriteConfig(f); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created new config file in %s\n", fname)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", pbcfg.DefaultFile,
		"Name of the config file to create if other than "+pbcfg.DefaultFile)
	return cmd
}
