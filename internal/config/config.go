package config

import (
	"fmt"
	"os"
)

// ResolveOptions feeds Resolve. Zero values fall back to the process state.
type ResolveOptions struct {
	WorkDir    string
	ConfigPath string
	DotEnvPath string
	XDGHome    string
	Home       string
	Getenv     func(string) string
	Flags      Config
}

// Resolved is the merged configuration and where its file layer came from.
type Resolved struct {
	Settings Settings
	Path     string
	Source   Source
}

// Resolve merges defaults < config file < environment (.env included) <
// flags and validates the result.
func Resolve(opts ResolveOptions) (Resolved, error) {
	getenv := opts.Getenv
	if getenv == nil {
		dotenv := opts.DotEnvPath
		if dotenv == "" {
			dotenv = ".env"
		}
		var err error
		getenv, err = Getenv(dotenv)
		if err != nil {
			return Resolved{}, err
		}
	}
	explicit := opts.ConfigPath
	if explicit == "" {
		explicit = getenv("PALETTEX_CONFIG")
	}
	xdg := opts.XDGHome
	if xdg == "" {
		xdg = getenv("XDG_CONFIG_HOME")
	}
	workDir := opts.WorkDir
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}

	path, source, err := Find(workDir, explicit, xdg, opts.Home)
	if err != nil {
		return Resolved{}, fmt.Errorf("find config: %w", err)
	}
	fileCfg, err := Load(path)
	if err != nil {
		return Resolved{}, err
	}
	envCfg, err := FromEnv(getenv)
	if err != nil {
		return Resolved{}, err
	}
	settings := Merge(Defaults(), fileCfg, envCfg, opts.Flags)
	if err := Validate(&settings); err != nil {
		return Resolved{}, err
	}
	return Resolved{Settings: settings, Path: path, Source: source}, nil
}
