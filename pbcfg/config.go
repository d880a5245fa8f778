package pbcfg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-ini/ini"
)

// DefaultFile is the name of the configuration file used when none is given.
const DefaultFile = "pb_tool.cfg"

// Config is a parsed configuration file. It is not modified after it was
// loaded.
type Config struct {
	Path string

	raw  []byte
	file *ini.File
}

// Load reads the configuration file at path. If the file does not exist the
// returned error matches [ErrMissingConfigFile].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrMissingConfigFile, path)
	case err != nil:
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config '%s': %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse parses configuration data. Keys and values are separated by ':' or
// '='. Lines starting with '#' or ';' are comments. Indented lines continue
// the value of the previous key.
func Parse(data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
		PreserveSurroundedQuote:    true,
	}, data)
	if err != nil {
		return nil, err
	}
	return &Config{raw: data, file: f}, nil
}

type State int

const (
	Absent State = iota
	Present
	Malformed
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Value is the result of looking up a key. Err is set when the State is not
// Present.
type Value struct {
	Key   Key
	State State
	Raw   string
	Err   error
}

func (v Value) Present() bool { return v.State == Present }

// Tokens splits the value at white space. An absent value has no tokens.
func (v Value) Tokens() []string {
	if v.State == Absent {
		return nil
	}
	return strings.Fields(v.Raw)
}

func (c *Config) Get(section, option string) Value {
	return c.Lookup(Key{Section: section, Option: option})
}

func (c *Config) Lookup(k Key) Value {
	v := Value{Key: k}
	sec, err := c.file.GetSection(k.Section)
	if err != nil {
		v.Err = &MissingSection{Section: k.Section, Option: k.Option}
		return v
	}
	opt := strings.ToLower(k.Option)
	if !sec.HasKey(opt) {
		v.Err = &MissingOption{Section: k.Section, Option: k.Option}
		return v
	}
	v.State = Present
	v.Raw = sec.Key(opt).String()
	return v
}

// HasSection reports whether the configuration has the section name.
func (c *Config) HasSection(name string) bool {
	_, err := c.file.GetSection(name)
	return err == nil
}

// WriteTo writes the configuration file as it was read.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.raw)
	return int64(n), err
}
