package pbcfg

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/go-ini/ini"
)

// MetadataFile is the plugin metadata the host application reads. Its
// general section holds the plugin name.
const MetadataFile = "metadata.txt"

// Guess is a best guess of a project configuration derived from the files
// in a plugin's source directory.
type Guess struct {
	Name        string
	PythonFiles []string
	MainDialog  []string
	CompiledUI  []string
	Resources   []string
	Extras      []string
	Locales     []string
}

// GuessProject scans dir for plugin files. If the plugin name cannot be read
// from the metadata file, Name is empty and the reason is returned as error
// together with the otherwise complete guess.
func GuessProject(dir string) (*Guess, error) {
	g := new(Guess)
	var err error
	if g.PythonFiles, err = globNames(dir, "*.py"); err != nil {
		return nil, err
	}
	if g.MainDialog, err = globNames(dir, "*_dialog_base.ui"); err != nil {
		return nil, err
	}
	uis, err := globNames(dir, "*.ui")
	if err != nil {
		return nil, err
	}
	for _, ui := range uis {
		if !slices.Contains(g.MainDialog, ui) {
			g.CompiledUI = append(g.CompiledUI, ui)
		}
	}
	if g.Resources, err = globNames(dir, "*.qrc"); err != nil {
		return nil, err
	}
	if g.Extras, err = globNames(dir, "*.png"); err != nil {
		return nil, err
	}
	meta, err := globNames(dir, MetadataFile)
	if err != nil {
		return nil, err
	}
	g.Extras = append(g.Extras, meta...)
	if g.Locales, err = globNames(filepath.Join(dir, "i18n"), "*.ts"); err != nil {
		return nil, err
	}
	g.Name, err = metadataName(filepath.Join(dir, MetadataFile))
	return g, err
}

func globNames(dir, pattern string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	for i, p := range paths {
		paths[i] = filepath.Base(p)
	}
	return paths, nil
}

func metadataName(path string) (string, error) {
	meta, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		AllowPythonMultilineValues: true,
	}, path)
	if err != nil {
		return "", err
	}
	sec, err := meta.GetSection("general")
	if err != nil {
		return "", &MissingSection{Section: "general", Option: "name"}
	}
	if !sec.HasKey("name") {
		return "", &MissingOption{Section: "general", Option: "name"}
	}
	return strings.TrimSpace(sec.Key("name").String()), nil
}

// WriteConfig writes a commented configuration file for g.
func (g *Guess) WriteConfig(w io.Writer) error {
	return configTemplate.Execute(w, g)
}

var configTemplate = template.Must(template.New("pb_tool.cfg").
	Funcs(template.FuncMap{"join": func(s []string) string { return strings.Join(s, " ") }}).
	Parse(`# Configuration file for plugin builder tool
# Sane defaults for your plugin generated by the Plugin Builder are
# already set below.
#
# As you add Python source files and UI files to your plugin, add
# them to the appropriate [files] section below.

[plugin]
# Name of the plugin. This is the name of the directory that will
# be created in .qgis2/python/plugins
name: {{.Name}}

[files]
# Python  files that should be deployed with the plugin
python_files: {{join .PythonFiles}}

# The main dialog file that is loaded (not compiled)
main_dialog: {{join .MainDialog}}

# Other ui files for your dialogs (these will be compiled)
compiled_ui_files: {{join .CompiledUI}}

# Resource file(s) that will be compiled
resource_files: {{join .Resources}}

# Other files required for the plugin
extras: {{join .Extras}}

# Other directories to be deployed with the plugin.
# These must be subdirectories under the plugin directory
extra_dirs:

# ISO code(s) for any locales (translations), separated by spaces.
# Corresponding .ts files must exist in the i18n directory
locales: {{join .Locales}}

[help]
# the built help directory that should be deployed with the plugin
dir: help/build/html
# the name of the directory to target in the deployed plugin
target: help

# Command lines that replace the default external tools, e.g.
# ui_compiler: pyuic5
[tools]
`))
