package pbcfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/mitchellh/go-homedir"
)

// Project is the typed content of a configuration. Keys that are absent in
// the configuration have empty values and are recorded in Missing.
type Project struct {
	Name  string
	Files Files
	Help  Help
	// Tools maps options of the tools section to the command line that
	// replaces the default tool.
	Tools map[string][]string

	Missing map[Key]error
}

type Files struct {
	PythonFiles []string
	MainDialog  []string
	CompiledUI  []string
	Resources   []string
	Extras      []string
	ExtraDirs   []string
	Locales     []string
}

type Help struct {
	Dir    string
	Target string
}

// ParseProject reads the typed project from c. Absent keys are not an error.
// Values that are present but unusable are returned as [Problems].
func ParseProject(c *Config) (*Project, error) {
	p := &Project{Missing: make(map[Key]error)}
	var probs Problems
	tokens := func(k Key) []string {
		v := c.Lookup(k)
		if !v.Present() {
			p.Missing[k] = v.Err
		}
		return v.Tokens()
	}
	single := func(k Key) string {
		v := c.Lookup(k)
		if !v.Present() {
			p.Missing[k] = v.Err
		}
		return strings.TrimSpace(v.Raw)
	}

	if v := checkName(c.Lookup(KeyName)); v.Present() {
		p.Name = v.Raw
	} else if v.State == Malformed {
		probs = append(probs, v.Err)
	} else {
		p.Missing[KeyName] = v.Err
	}
	p.Files.PythonFiles = tokens(KeyPythonFiles)
	p.Files.MainDialog = tokens(KeyMainDialog)
	p.Files.CompiledUI = tokens(KeyCompiledUI)
	p.Files.Resources = tokens(KeyResources)
	p.Files.Extras = tokens(KeyExtras)
	p.Files.ExtraDirs = tokens(KeyExtraDirs)
	p.Files.Locales = tokens(KeyLocales)
	p.Help.Dir = single(KeyHelpDir)
	p.Help.Target = single(KeyHelpTarget)

	if c.HasSection(SectionTools) {
		p.Tools = make(map[string][]string)
		for _, opt := range ToolOptions {
			v := c.Get(SectionTools, opt)
			if !v.Present() || strings.TrimSpace(v.Raw) == "" {
				continue
			}
			cmd, err := parseToolCmd(v.Raw)
			if err != nil {
				probs = append(probs, &MalformedValue{
					Key:    v.Key,
					Value:  v.Raw,
					Reason: err.Error(),
				})
				continue
			}
			p.Tools[opt] = cmd
		}
	}
	if len(probs) > 0 {
		return p, probs
	}
	return p, nil
}

// Require returns the [Problems] of all keys that were missing in the
// configuration p was parsed from.
func (p *Project) Require(keys ...Key) error {
	var probs Problems
	for _, k := range keys {
		if err, ok := p.Missing[k]; ok {
			probs = append(probs, err)
		}
	}
	return probs.Err()
}

// Tool returns the command line configured for the tool option opt, if any.
// A nil Project has no tools configured.
func (p *Project) Tool(opt string) ([]string, bool) {
	if p == nil {
		return nil, false
	}
	cmd, ok := p.Tools[opt]
	return cmd, ok && len(cmd) > 0
}

func checkName(v Value) Value {
	if !v.Present() {
		return v
	}
	name := strings.TrimSpace(v.Raw)
	var reason string
	switch {
	case name == "":
		reason = "empty plugin name"
	case name == "." || name == "..":
		reason = "plugin name is a relative directory"
	case strings.ContainsAny(name, `/\`):
		reason = "plugin name contains a path separator"
	default:
		v.Raw = name
		return v
	}
	v.State = Malformed
	v.Err = &MalformedValue{Key: v.Key, Value: v.Raw, Reason: reason}
	return v
}

func parseToolCmd(raw string) ([]string, error) {
	args, err := shellwords.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	if args[0], err = homedir.Expand(args[0]); err != nil {
		return nil, fmt.Errorf("tool '%s': %w", args[0], err)
	}
	return args, nil
}
