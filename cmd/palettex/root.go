package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phyten/palettex/internal/config"
	"github.com/phyten/palettex/internal/logging"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/palette"
	"github.com/phyten/palettex/internal/termcolor"
)

// app carries process state and the resolved configuration shared by all
// subcommands. Tests replace the process-facing fields.
type app struct {
	env     map[string]string
	getenv  func(string) string
	workDir string
	home    string
	logOut  io.Writer

	configPath string
	debug      bool
	logFormat  string

	settings config.Settings
	logger   *slog.Logger
}

func newApp() *app {
	home, _ := os.UserHomeDir()
	return &app{
		env:    termcolor.EnvMap(os.Environ()),
		home:   home,
		logOut: os.Stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	flags := &flagLayer{}
	cmd := &cobra.Command{
		Use:           "palettex",
		Short:         "Generate color palettes and audit their accessibility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: .palettex.{yaml,toml,json} searched upwards)")
	pf.StringVarP(&flags.output, "output", "o", "", "table|json|ndjson|csv|markdown")
	pf.StringVar(&flags.color, "color", "", "auto|always|never")
	pf.StringVar(&flags.baseURL, "base-url", "", "palette API base URL (default "+palette.DefaultBaseURL+")")
	pf.DurationVar(&flags.timeout, "timeout", 0, "palette API request timeout (default 10s)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.StringVar(&a.logFormat, "log-format", "text", "text|json")

	cmd.AddCommand(
		serveCmd(a, flags),
		generateCmd(a),
		healthCmd(a),
		contrastCmd(a),
		simulateCmd(a),
		analyzeCmd(a, flags),
	)
	return cmd
}

// flagLayer collects flag values; only flags the user set become part of the
// config layer.
type flagLayer struct {
	output     string
	color      string
	baseURL    string
	timeout    time.Duration
	addr       string
	open       bool
	origins    []string
	background string
}

func (f *flagLayer) config(cmd *cobra.Command) config.Config {
	var cfg config.Config
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("output") {
		cfg.UI.Output = &f.output
	}
	if changed("color") {
		cfg.UI.Color = &f.color
	}
	if changed("base-url") {
		cfg.Client.BaseURL = &f.baseURL
	}
	if changed("timeout") {
		cfg.Client.Timeout = &f.timeout
	}
	if changed("addr") {
		cfg.Server.Addr = &f.addr
	}
	if changed("open") {
		cfg.Server.Open = &f.open
	}
	if changed("allow-origin") {
		cfg.Server.AllowOrigins = &f.origins
	}
	if changed("background") {
		cfg.UI.Background = &f.background
	}
	return cfg
}

func (a *app) init(cmd *cobra.Command, flags *flagLayer) error {
	logger, err := logging.Setup(logging.Config{Debug: a.debug, Format: a.logFormat, Out: a.logOut})
	if err != nil {
		return err
	}
	a.logger = logger

	resolved, err := config.Resolve(config.ResolveOptions{
		WorkDir:    a.workDir,
		ConfigPath: a.configPath,
		Home:       a.home,
		Getenv:     a.getenv,
		Flags:      flags.config(cmd),
	})
	if err != nil {
		return err
	}
	a.settings = resolved.Settings
	if resolved.Path != "" {
		a.logger.Debug("config.loaded", "path", resolved.Path, "source", string(resolved.Source))
	}
	return nil
}

func (a *app) client() *palette.Client {
	return palette.NewClient(a.settings.Client.BaseURL,
		palette.WithTimeout(a.settings.Client.Timeout),
		palette.WithLogger(a.logger),
	)
}

func (a *app) outputOptions(w io.Writer, title string) output.Options {
	mode, _ := termcolor.ParseMode(a.settings.UI.Color)
	f, _ := w.(*os.File)
	return output.Options{
		Color:   termcolor.Enabled(mode, f, a.env),
		Profile: termcolor.DetectProfile(a.env),
		Title:   strings.TrimSpace(title),
	}
}
