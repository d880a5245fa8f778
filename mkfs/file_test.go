package mkfs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestFile_WithExt(t *testing.T) {
	for _, c := range []struct {
		f   File
		ext string
		res File
	}{
		{"dlg.ui", ".py", "dlg.py"},
		{"dlg.ui", "py", "dlg.py"},
		{"ui/dlg.ui", ".py", "ui/dlg.py"},
		{"dlg", ".py", "dlg.py"},
		{"dlg.ui", "", "dlg"},
		{"dlg", "", "dlg"},
		{"v1.2/dlg", ".py", "v1.2/dlg.py"},
		{".ui", ".py", ".ui.py"},
		{"forms/.ui", ".py", "forms/.ui.py"},
		{".ui", "", ".ui"},
		{".dlg.ui", ".py", ".dlg.py"},
		{"..ui", ".py", "..ui.py"},
	} {
		if r := c.f.WithExt(c.ext); r != c.res {
			t.Errorf("%s with ext '%s': got %s, want %s", c.f, c.ext, r, c.res)
		}
	}
}

func TestFile_WithSuffix(t *testing.T) {
	if r := File("res.qrc").WithSuffix("_rc.py"); r != "res_rc.py" {
		t.Errorf("got %s", r)
	}
	if r := File("img/res").WithSuffix("_rc.py"); r != "img/res_rc.py" {
		t.Errorf("got %s", r)
	}
}

func TestFile_StateAt(t *testing.T) {
	dir := t.TempDir()
	f := File(filepath.Join(dir, "a.txt"))
	if !f.StateAt().IsZero() {
		t.Error("missing file has state time")
	}
	testerr.Shall(os.WriteFile(f.Path(), []byte("a"), 0644)).BeNil(t)
	mt := time.Date(2014, 9, 24, 12, 0, 0, 0, time.UTC)
	testerr.Shall(os.Chtimes(f.Path(), mt, mt)).BeNil(t)
	if at := f.StateAt(); !at.Equal(mt) {
		t.Errorf("state time %s, want %s", at, mt)
	}
	if !File(dir).StateAt().IsZero() {
		t.Error("directory has file state time")
	}
}

func TestFile_Remove(t *testing.T) {
	f := File(filepath.Join(t.TempDir(), "a.py"))
	testerr.Shall(os.WriteFile(f.Path(), nil, 0644)).BeNil(t)
	if ok := testerr.Shall1(f.Remove()).BeNil(t); !ok {
		t.Error("existing file not removed")
	}
	if ok := testerr.Shall1(f.Remove()).BeNil(t); ok {
		t.Error("missing file removed")
	}
}
