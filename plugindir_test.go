package pbtool

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestPluginRoot(t *testing.T) {
	home := filepath.Join("home", "qgis")
	if r := PluginRoot(home); r != filepath.Join(home, ".qgis2", "python", "plugins") {
		t.Errorf("plugin root '%s'", r)
	}
}

func TestUserHome(t *testing.T) {
	env := map[string]string{
		"HOME":      "/home/qgis",
		"HOMEDRIVE": `C:`,
		"HOMEPATH":  `\Users\qgis`,
	}
	getenv := func(k string) string { return env[k] }

	home, err := userHome("windows", getenv)
	if err != nil {
		t.Fatal(err)
	}
	if home != `C:\Users\qgis` {
		t.Errorf("windows home '%s'", home)
	}

	delete(env, "HOMEPATH")
	if home, _ = userHome("windows", getenv); home == `C:` {
		t.Error("used HOMEDRIVE without HOMEPATH")
	}

	dflt, err := homedir.Dir()
	if err != nil {
		t.Skip("no home dir:", err)
	}
	env["HOMEPATH"] = `\Users\qgis`
	if home, _ = userHome("linux", getenv); home != dflt {
		t.Errorf("linux home '%s', want '%s'", home, dflt)
	}
}
