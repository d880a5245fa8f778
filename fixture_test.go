package pbtool

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
	"git.fractalqb.de/fractalqb/testerr"
)

// fixture is a plugin project in a temporary directory with fake external
// tools. The tools append their command lines to the file in TOOL_LOG.
type fixture struct {
	dir, bin, root string
	log            string
	env            *pbkore.Env
	out            strings.Builder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	tmp := t.TempDir()
	fx := &fixture{
		dir:  filepath.Join(tmp, "project"),
		bin:  filepath.Join(tmp, "bin"),
		root: filepath.Join(tmp, "home", ".qgis2", "python", "plugins"),
		log:  filepath.Join(tmp, "tools.log"),
	}
	testerr.Shall(os.Mkdir(fx.dir, 0777)).BeNil(t)
	testerr.Shall(os.Mkdir(fx.bin, 0777)).BeNil(t)
	fx.env = &pbkore.Env{Out: &fx.out, Err: &fx.out}
	fx.env.SetTag("PATH", fx.bin)
	fx.env.SetTag("TOOL_LOG", fx.log)
	return fx
}

const fakeCompiler = `echo "$(TOOL) $*" >> "$TOOL_LOG"
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2;;
    *) src="$1"; shift;;
  esac
done
echo "# generated from $src" > "$out"`

const fakeLogger = `echo "$(TOOL) $*" >> "$TOOL_LOG"`

func (fx *fixture) tool(t *testing.T, name, script string) {
	t.Helper()
	script = strings.ReplaceAll(script, "$(TOOL)", name)
	err := os.WriteFile(
		filepath.Join(fx.bin, name),
		[]byte("#!/bin/sh\n"+script+"\n"),
		0755,
	)
	testerr.Shall(err).BeNil(t)
}

func (fx *fixture) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(fx.log)
	if os.IsNotExist(err) {
		return nil
	}
	testerr.Shall(err).BeNil(t)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func (fx *fixture) write(t *testing.T, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(fx.dir, f)
		testerr.Shall(os.MkdirAll(filepath.Dir(p), 0777)).BeNil(t)
		testerr.Shall(os.WriteFile(p, []byte(f), 0644)).BeNil(t)
	}
}

func (fx *fixture) setMTime(t *testing.T, file string, at time.Time) {
	t.Helper()
	testerr.Shall(os.Chtimes(filepath.Join(fx.dir, file), at, at)).BeNil(t)
}

func (fx *fixture) builder(p *pbcfg.Project) Builder {
	return Builder{Project: p, Dir: fx.dir, Env: fx.env}
}

func (fx *fixture) deployer(p *pbcfg.Project) *Deployer {
	return &Deployer{Builder: fx.builder(p), PluginRoot: fx.root}
}

func testTrace(t *testing.T) *pbkore.Trace {
	return pbkore.NewTrace(context.Background(), NewTestTracer(t))
}

func testProject(t *testing.T, cfg string) *pbcfg.Project {
	t.Helper()
	c := testerr.Shall1(pbcfg.Parse([]byte(cfg))).BeNil(t)
	return testerr.Shall1(pbcfg.ParseProject(c)).BeNil(t)
}

const sampleConfig = `[plugin]
name: TestPlugin

[files]
python_files: __init__.py test_plugin.py
main_dialog: test_plugin_dialog_base.ui
compiled_ui_files: dlg.ui
resource_files: res.qrc
extras: icon.png metadata.txt
extra_dirs: data
locales: de fr.qm

[help]
dir: help/build/html
target: help
`
