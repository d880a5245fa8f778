package pbtool

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// PluginRoot is the directory below home where the host application looks
// for user installed plugins.
func PluginRoot(home string) string {
	return filepath.Join(home, ".qgis2", "python", "plugins")
}

// DefaultPluginRoot is the [PluginRoot] of the current user's home directory.
func DefaultPluginRoot() (string, error) {
	home, err := userHome(runtime.GOOS, os.Getenv)
	if err != nil {
		return "", err
	}
	return PluginRoot(home), nil
}

// userHome prefers HOMEDRIVE and HOMEPATH on Windows because that is where
// the host application keeps its user profile. Elsewhere, or if one of both
// is unset, [homedir.Dir] decides.
func userHome(goos string, getenv func(string) string) (string, error) {
	if goos == "windows" {
		drive, path := getenv("HOMEDRIVE"), getenv("HOMEPATH")
		if drive != "" && path != "" {
			return drive + path, nil
		}
	}
	return homedir.Dir()
}
