// Package config resolves the hookline configuration directory and loads
// config.yaml from it.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// Dir returns the hookline configuration directory.
//
// Resolution:
//   - $HOOKLINE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/hookline if set (respects XDG on any platform)
//   - %AppData%/hookline on Windows
//   - ~/.config/hookline on macOS and Linux
func Dir() string {
	if dir := os.Getenv("HOOKLINE_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hookline")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "hookline")
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hookline")
}

// Path returns the location of config.yaml, or "" when no configuration
// directory can be determined.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}
