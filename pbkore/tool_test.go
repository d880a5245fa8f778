package pbkore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func writeScript(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts as fake tools need a unix system")
	}
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLookTool(t *testing.T) {
	bin1, bin2 := t.TempDir(), t.TempDir()
	writeScript(t, bin2, "pyuic4", "exit 0")
	if err := os.WriteFile(filepath.Join(bin1, "pyuic4"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	var env Env
	env.SetTag("PATH", bin1+string(os.PathListSeparator)+bin2)

	t.Run("first executable", func(t *testing.T) {
		exe := testerr.Shall1(LookTool(&env, "pyuic4")).BeNil(t)
		if exe != filepath.Join(bin2, "pyuic4") {
			t.Errorf("found '%s'", exe)
		}
	})
	t.Run("not found", func(t *testing.T) {
		_, err := LookTool(&env, "pyrcc4")
		if !errors.Is(err, ErrToolNotFound) {
			t.Errorf("unexpected error %v", err)
		}
	})
	t.Run("with dir", func(t *testing.T) {
		exe := filepath.Join(bin2, "pyuic4")
		if res := testerr.Shall1(LookTool(&env, exe)).BeNil(t); res != exe {
			t.Errorf("found '%s'", res)
		}
		_, err := LookTool(&env, filepath.Join(bin1, "pyuic4"))
		if !errors.Is(err, ErrToolNotFound) {
			t.Errorf("non-executable found: %v", err)
		}
	})
	t.Run("mixed case Path", func(t *testing.T) {
		defer func(f bool) { foldKeys = f }(foldKeys)
		foldKeys = true
		var wenv Env
		wenv.SetTags("Path=" + bin2)
		exe := testerr.Shall1(LookTool(&wenv, "pyuic4")).BeNil(t)
		if exe != filepath.Join(bin2, "pyuic4") {
			t.Errorf("found '%s'", exe)
		}
	})
	t.Run("any", func(t *testing.T) {
		exe := testerr.Shall1(LookAnyTool(&env, "lrelease", "pyuic4")).BeNil(t)
		if exe != filepath.Join(bin2, "pyuic4") {
			t.Errorf("found '%s'", exe)
		}
	})
}

func TestLookTool_pathext(t *testing.T) {
	bin := t.TempDir()
	writeScript(t, bin, "make.bat", "exit 0")
	var env Env
	env.SetTag("PATH", bin)
	if _, err := LookTool(&env, "make"); !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("found make without PATHEXT: %v", err)
	}
	env.SetTag("PATHEXT", ".COM"+string(os.PathListSeparator)+".bat")
	exe := testerr.Shall1(LookTool(&env, "make")).BeNil(t)
	if exe != filepath.Join(bin, "make.bat") {
		t.Errorf("found '%s'", exe)
	}
}

func TestCommand_Run(t *testing.T) {
	bin := t.TempDir()
	echo := writeScript(t, bin, "echotool", `echo "$@"; echo oops >&2`)
	fail := writeScript(t, bin, "failtool", "exit 3")
	var out, errOut strings.Builder
	env := &Env{Out: &out, Err: &errOut}
	tr := NewTrace(context.Background(), testTracer{t})

	cmd := Command{Dir: bin, Exe: echo, Args: []string{"-o", "x.py", "x.ui"}}
	testerr.Shall(cmd.Run(tr, env)).BeNil(t)
	if s := out.String(); s != "echotool> -o x.py x.ui\n" {
		t.Errorf("unexpected stdout %q", s)
	}
	if s := errOut.String(); s != "echotool> oops\n" {
		t.Errorf("unexpected stderr %q", s)
	}

	cmd = Command{Exe: fail}
	err := cmd.Run(tr, env)
	var tf *ToolFailure
	if !errors.As(err, &tf) {
		t.Fatalf("expected tool failure, got %v", err)
	}
	if c := tf.ExitCode(); c != 3 {
		t.Errorf("exit code %d", c)
	}
}
