package pbcfg

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

const testConfig = `# test project
[plugin]
name: TestPlugin

[files]
python_files: __init__.py test_plugin.py
    test_plugin_dialog.py
main_dialog: test_plugin_dialog_base.ui
compiled_ui_files: dlg.ui
resource_files = resources.qrc
extras: icon.png metadata.txt
extra_dirs:
Locales: de fr

[help]
dir: help/build/html
target: help
`

func TestLoad_missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if !errors.Is(err, ErrMissingConfigFile) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	testerr.Shall(os.WriteFile(path, []byte(testConfig), 0644)).BeNil(t)
	cfg := testerr.Shall1(Load(path)).BeNil(t)
	if cfg.Path != path {
		t.Errorf("config path '%s'", cfg.Path)
	}
	var sb strings.Builder
	testerr.Shall1(cfg.WriteTo(&sb)).BeNil(t)
	if s := sb.String(); s != testConfig {
		t.Errorf("listed config differs:\n%s", s)
	}
}

func TestConfig_Get(t *testing.T) {
	cfg := testerr.Shall1(Parse([]byte(testConfig))).BeNil(t)
	t.Run("continued value", func(t *testing.T) {
		v := cfg.Get("files", "python_files")
		if v.State != Present {
			t.Fatalf("state %s", v.State)
		}
		toks := v.Tokens()
		if !slices.Equal(toks, []string{"__init__.py", "test_plugin.py", "test_plugin_dialog.py"}) {
			t.Errorf("tokens %v", toks)
		}
	})
	t.Run("equal delimiter", func(t *testing.T) {
		if toks := cfg.Get("files", "resource_files").Tokens(); !slices.Equal(toks, []string{"resources.qrc"}) {
			t.Errorf("tokens %v", toks)
		}
	})
	t.Run("case insensitive key", func(t *testing.T) {
		if toks := cfg.Get("files", "locales").Tokens(); !slices.Equal(toks, []string{"de", "fr"}) {
			t.Errorf("tokens %v", toks)
		}
	})
	t.Run("empty value", func(t *testing.T) {
		v := cfg.Get("files", "extra_dirs")
		if v.State != Present {
			t.Fatalf("state %s", v.State)
		}
		if toks := v.Tokens(); len(toks) != 0 {
			t.Errorf("tokens %v", toks)
		}
	})
	t.Run("missing option", func(t *testing.T) {
		v := cfg.Get("help", "index")
		if v.State != Absent {
			t.Fatalf("state %s", v.State)
		}
		var mo *MissingOption
		if !errors.As(v.Err, &mo) {
			t.Fatalf("error %v", v.Err)
		}
		if !errors.Is(v.Err, ErrMissingKey) {
			t.Error("missing option is no missing key")
		}
		if s := v.Err.Error(); s != "no option 'index' in section: 'help'" {
			t.Errorf("message '%s'", s)
		}
	})
	t.Run("missing section", func(t *testing.T) {
		v := cfg.Get("tools", "archiver")
		var ms *MissingSection
		if !errors.As(v.Err, &ms) {
			t.Fatalf("error %v", v.Err)
		}
		if !errors.Is(v.Err, ErrMissingKey) {
			t.Error("missing section is no missing key")
		}
		if v.Tokens() != nil {
			t.Error("absent value has tokens")
		}
	})
}
