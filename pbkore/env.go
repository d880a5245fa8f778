package pbkore

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
)

// Env is the environment external tools are run in. Tags are the environment
// variables passed to the tools. They are also used to look up tools, i.e.
// PATH and, where the platform uses it, PATHEXT.
type Env struct {
	In       io.Reader
	Out, Err io.Writer

	tags    map[string]string
	xenv    []string
	xenvErr error
}

// foldKeys makes tag keys case-insensitive, as environment variables are on
// Windows where [os.Environ] usually spells PATH as "Path".
var foldKeys = runtime.GOOS == "windows"

func tagKey(key string) string {
	if foldKeys {
		return strings.ToUpper(key)
	}
	return key
}

func DefaultEnv(tr *Trace) *Env {
	env := &Env{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
	osenv := os.Environ()
	valid := osenv[:0:0]
	for _, evar := range osenv {
		if evar == "" || evar[0] == '=' {
			if tr != nil {
				tr.Warn("ignoring default `env`", `env`, evar)
			}
			continue
		}
		valid = append(valid, evar)
	}
	env.SetTags(valid...)
	return env
}

func (e *Env) Tag(key string) (string, bool) {
	if e.tags == nil {
		return "", false
	}
	v, ok := e.tags[tagKey(key)]
	return v, ok
}

func (e *Env) SetTag(key, val string) {
	if e.tags == nil {
		e.tags = make(map[string]string)
	}
	e.tags[tagKey(key)] = val
	e.clearXEnv()
}

// SetTags sets tags from "key=value" strings as returned by [os.Environ].
func (e *Env) SetTags(env ...string) {
	if e.tags == nil {
		e.tags = make(map[string]string)
	}
	for _, evar := range env {
		key, val, _ := strings.Cut(evar, "=")
		e.tags[tagKey(key)] = val
	}
	e.clearXEnv()
}

type NonXEnvKeys []string

func (e NonXEnvKeys) Error() string {
	return fmt.Sprintf("illegal exec env keys: %s", strings.Join(e, ", "))
}

func (NonXEnvKeys) Is(target error) bool {
	_, ok := target.(NonXEnvKeys)
	return ok
}

// ExecEnv returns the tags as environment of an [os/exec.Cmd]. Tags that
// cannot be environment variables are left out and reported as [NonXEnvKeys].
func (e *Env) ExecEnv() ([]string, error) {
	if e.xenv == nil {
		var errKeys []string
		keys := make([]string, 0, len(e.tags))
		for k := range e.tags {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			switch {
			case k == "":
				errKeys = append(errKeys, `""`)
			case strings.ContainsRune(k, '='):
				errKeys = append(errKeys, k)
			default:
				e.xenv = append(e.xenv, fmt.Sprintf("%s=%s", k, e.tags[k]))
			}
		}
		if len(errKeys) > 0 {
			e.xenvErr = NonXEnvKeys(errKeys)
		}
	}
	return e.xenv, e.xenvErr
}

func (e *Env) clearXEnv() {
	e.xenv = nil
	e.xenvErr = nil
}
