package pbcfg

import (
	"errors"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestParseProject(t *testing.T) {
	cfg := testerr.Shall1(Parse([]byte(testConfig))).BeNil(t)
	p := testerr.Shall1(ParseProject(cfg)).BeNil(t)
	if p.Name != "TestPlugin" {
		t.Errorf("name '%s'", p.Name)
	}
	if !slices.Equal(p.Files.CompiledUI, []string{"dlg.ui"}) {
		t.Errorf("compiled UI %v", p.Files.CompiledUI)
	}
	if !slices.Equal(p.Files.Extras, []string{"icon.png", "metadata.txt"}) {
		t.Errorf("extras %v", p.Files.Extras)
	}
	if p.Help != (Help{Dir: "help/build/html", Target: "help"}) {
		t.Errorf("help %+v", p.Help)
	}
	if len(p.Missing) != 0 {
		t.Errorf("missing %v", p.Missing)
	}
	if p.Tools != nil {
		t.Errorf("tools %v", p.Tools)
	}
	testerr.Shall(p.Require(Mandatory...)).BeNil(t)
}

func TestParseProject_missing(t *testing.T) {
	cfg := testerr.Shall1(Parse([]byte("[plugin]\nname: p\n[files]\nextras: a.png\n"))).BeNil(t)
	p := testerr.Shall1(ParseProject(cfg)).BeNil(t)
	if p.Files.PythonFiles != nil {
		t.Errorf("python files %v", p.Files.PythonFiles)
	}
	if _, ok := p.Missing[KeyCompiledUI]; !ok {
		t.Error("compiled UI files not missing")
	}
	testerr.Shall(p.Require(KeyName, KeyExtras)).BeNil(t)
	err := p.Require(KeyName, KeyHelpDir, KeyHelpTarget)
	var probs Problems
	if !errors.As(err, &probs) || len(probs) != 2 {
		t.Fatalf("require help: %v", err)
	}
	if !errors.Is(err, ErrMissingKey) {
		t.Error("required keys are not missing")
	}
}

func TestParseProject_tools(t *testing.T) {
	cfg := testerr.Shall1(Parse([]byte(`[plugin]
name: p
[tools]
ui_compiler: python3 -m PyQt5.uic.pyuic --from-imports
resource_compiler: "/opt/qt tools/pyrcc5"
translator:
archiver: zip -q 'unterminated
`))).BeNil(t)
	p, err := ParseProject(cfg)
	var probs Problems
	if !errors.As(err, &probs) || len(probs) != 1 {
		t.Fatalf("tool problems: %v", err)
	}
	var mv *MalformedValue
	if !errors.As(err, &mv) || mv.Key.Option != ToolArchiver {
		t.Errorf("malformed %v", mv)
	}
	cmd, ok := p.Tool(ToolUICompiler)
	if !ok || !slices.Equal(cmd, []string{"python3", "-m", "PyQt5.uic.pyuic", "--from-imports"}) {
		t.Errorf("ui compiler %v", cmd)
	}
	cmd, ok = p.Tool(ToolResourceCompiler)
	if !ok || !slices.Equal(cmd, []string{"/opt/qt tools/pyrcc5"}) {
		t.Errorf("resource compiler %v", cmd)
	}
	if _, ok = p.Tool(ToolTranslator); ok {
		t.Error("empty translator configured")
	}
}
