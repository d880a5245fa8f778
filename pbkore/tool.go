package pbkore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var ErrToolNotFound = errors.New("tool not found")

// ToolFailure is returned when an external tool could not be run or exited
// with non-zero status.
type ToolFailure struct {
	Tool string
	Args []string
	Dir  string
	Err  error
}

func (e *ToolFailure) Error() string {
	cmd := filepath.Base(e.Tool)
	if len(e.Args) > 0 {
		cmd += " " + strings.Join(e.Args, " ")
	}
	if e.Dir == "" {
		return fmt.Sprintf("%s: %s", cmd, e.Err)
	}
	return fmt.Sprintf("%s (in %s): %s", cmd, e.Dir, e.Err)
}

func (e *ToolFailure) Unwrap() error { return e.Err }

// ExitCode returns the exit code of the tool or -1 if the tool did not exit
// normally.
func (e *ToolFailure) ExitCode() int {
	var xerr *exec.ExitError
	if errors.As(e.Err, &xerr) {
		return xerr.ExitCode()
	}
	return -1
}

// LookTool searches the executable name in the PATH of env. Each candidate is
// also tried with the extensions from PATHEXT, if env has one. A name with a
// directory part is not searched but only checked.
func LookTool(env *Env, name string) (string, error) {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		if isExe(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	path, _ := env.Tag("PATH")
	var exts []string
	if pathext, ok := env.Tag("PATHEXT"); ok {
		for _, ext := range strings.Split(pathext, string(os.PathListSeparator)) {
			if ext != "" {
				exts = append(exts, ext)
			}
		}
	}
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			continue
		}
		exe := filepath.Join(dir, name)
		if isExe(exe) {
			return exe, nil
		}
		for _, ext := range exts {
			if isExe(exe + ext) {
				return exe + ext, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

// LookAnyTool returns the first of names found by [LookTool].
func LookAnyTool(env *Env, names ...string) (string, error) {
	for _, n := range names {
		if exe, err := LookTool(env, n); err == nil {
			return exe, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, strings.Join(names, ", "))
}

func isExe(path string) bool {
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return st.Mode()&fs.FileMode(0111) != 0
}

// Command runs an external tool and waits for it to complete. The output of
// the tool is written to the env's Out and Err, each line prefixed with the
// tool's name.
type Command struct {
	Dir  string
	Exe  string
	Args []string
}

func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Exe
	}
	return c.Exe + " " + strings.Join(c.Args, " ")
}

func (c *Command) Run(tr *Trace, env *Env) error {
	xenv, err := env.ExecEnv()
	if err != nil {
		tr.Warn(err.Error())
	}
	cmd := exec.CommandContext(tr.Ctx(), c.Exe, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = xenv
	cmd.Stdin = env.In
	tag := strings.TrimSuffix(filepath.Base(c.Exe), filepath.Ext(c.Exe)) + "> "
	stdout := NewPrefixWriter(orDiscard(env.Out), tag)
	stderr := NewPrefixWriter(orDiscard(env.Err), tag)
	cmd.Stdout, cmd.Stderr = stdout, stderr
	tr.RunTool(c.String())
	tr.Debug("exec `cmd` in `dir`", `cmd`, cmd.String(), `dir`, cmd.Dir)
	err = cmd.Run()
	stdout.Close()
	stderr.Close()
	if err != nil {
		return &ToolFailure{Tool: c.Exe, Args: c.Args, Dir: c.Dir, Err: err}
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
