package main

import (
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/pbtool"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"github.com/spf13/cobra"
)

func newDeployCommand(a *app) *cobra.Command {
	var (
		config string
		quick  bool
	)
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the plugin to the QGIS plugin directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config, pbcfg.Mandatory...)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			dp, err := a.deployer(tr, prj)
			if err != nil {
				return err
			}
			if quick {
				fmt.Fprintln(a.out, "Doing quick deployment")
				if err := a.reportCopyFailures(dp.Install(tr)); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Quick deployment complete---if you have problems with your plugin, try doing a full deploy.")
				return nil
			}
			fmt.Fprint(a.out, `Deploying will:
  * Remove your currently deployed version
  * Compile the ui and resource files
  * Build the help docs
  * Copy everything to your .qgis2/python/plugins directory
`)
			if ok, err := a.confirm("Proceed?"); err != nil || !ok {
				return err
			}
			return a.reportCopyFailures(dp.Full(tr))
		},
	}
	addConfigFlag(cmd, &config)
	cmd.Flags().BoolVarP(&quick, "quick", "q", false,
		"Do a quick install without compiling ui, resource, docs and translation files")
	return cmd
}

func (a *app) reportCopyFailures(err error) error {
	var fails pbtool.CopyFailures
	if !errors.As(err, &fails) {
		return err
	}
	fmt.Fprintln(a.out, "\nERRORS:")
	for _, f := range fails {
		fmt.Fprintln(a.out, f.Error())
	}
	fmt.Fprint(a.out, `
One or more files/directories specified in your config file failed to
deploy---make sure they exist or if not needed remove them from the config.
To ensure proper deployment, make sure your UI and resource files are
compiled. Using dclean to delete the plugin before deploying may also help.
`)
	return fmt.Errorf("%d files/directories failed to deploy", len(fails))
}

func newDCleanCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "dclean",
		Short: "Remove the deployed plugin from the QGIS plugin directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config, pbcfg.KeyName)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			dp, err := a.deployer(tr, prj)
			if err != nil {
				return err
			}
			dir, err := dp.PluginDir()
			if err != nil {
				return err
			}
			ok, err := a.confirm(fmt.Sprintf("Delete the deployed plugin from %s?", dir))
			switch {
			case err != nil:
				return err
			case !ok:
				fmt.Fprintln(a.out, "Plugin was not deleted")
				return nil
			}
			fmt.Fprintf(a.out, "Removing plugin from %s\n", dir)
			removed, err := dp.RemoveDeployed(tr)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(a.out, "Plugin was not deployed")
			}
			return nil
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}

func newZipCommand(a *app) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Package the plugin into a zip file for the QGIS plugin repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prj, err := a.project(config, pbcfg.Mandatory...)
			if err != nil {
				return err
			}
			tr := a.trace(cmd)
			dp, err := a.deployer(tr, prj)
			if err != nil {
				return err
			}
			ok, err := a.confirm("Do a dclean and deploy first?")
			if err != nil {
				return err
			}
			if ok {
				if err := a.reportCopyFailures(dp.Full(tr)); err != nil {
					return err
				}
			}
			ok, err = a.confirm(fmt.Sprintf("Create a packaged plugin (%s.zip) from the deployed files?", prj.Name))
			if err != nil || !ok {
				return err
			}
			archive, err := dp.Package(tr, a.path("."))
			switch {
			case err != nil:
				return err
			case archive != "":
				fmt.Fprintf(a.out, "The %s archive has been created\n", archive)
			}
			return nil
		},
	}
	addConfigFlag(cmd, &config)
	return cmd
}
