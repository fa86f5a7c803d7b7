package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source tells where a config file was found.
type Source string

const (
	SourceNone     Source = ""
	SourceExplicit Source = "explicit"
	SourceWalkUp   Source = "cwd-up"
	SourceXDG      Source = "xdg"
	SourceHome     Source = "home"
)

var extensions = []string{".yaml", ".yml", ".toml", ".json"}

// Find locates the config file. An explicit path (PALETTEX_CONFIG or
// --config) must exist; otherwise the first match wins among
// .palettex.* from startDir up to /, $XDG_CONFIG_HOME/palettex/config.*,
// and ~/.palettex.*. No match is not an error.
func Find(startDir, explicitPath, xdgHome, home string) (string, Source, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", SourceNone, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", SourceNone, err
		}
		if info.IsDir() {
			return "", SourceNone, fmt.Errorf("config path %q is a directory", abs)
		}
		return abs, SourceExplicit, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", SourceNone, err
	}
	for {
		if path, ok := firstExisting(dir, ".palettex"); ok {
			return path, SourceWalkUp, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := strings.TrimSpace(home)
	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		if path, ok := firstExisting(filepath.Join(xdgRoot, "palettex"), "config"); ok {
			return path, SourceXDG, nil
		}
	}
	if homeDir != "" {
		if path, ok := firstExisting(homeDir, ".palettex"); ok {
			return path, SourceHome, nil
		}
	}
	return "", SourceNone, nil
}

func firstExisting(dir, stem string) (string, bool) {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, stem+ext)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}
