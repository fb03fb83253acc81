package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/template-wizard/internal/messages"
)

// DirName is the per-user config directory under the home directory.
const DirName = ".template-wizard"

// Paths holds resolved paths for the config file and its .env companion.
type Paths struct {
	Dir        string
	ConfigPath string
	EnvPath    string
}

// homeDir is swapped in tests.
var homeDir = homedir.Dir

// DefaultPaths returns the paths under ~/.template-wizard.
func DefaultPaths() (Paths, error) {
	home, err := homeDir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigExpandHomeFailedFmt, "~", err)
	}
	return PathsFor(filepath.Join(home, DirName, "config.toml")), nil
}

// PathsFor returns the paths for an explicit config file location.
// The .env file is looked up next to it.
func PathsFor(configPath string) Paths {
	dir := filepath.Dir(configPath)
	return Paths{
		Dir:        dir,
		ConfigPath: configPath,
		EnvPath:    filepath.Join(dir, ".env"),
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandHomeFailedFmt, path, err)
	}
	return expanded, nil
}
