package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileTrueColor:
		return "truecolor"
	case ProfileANSI256:
		return "ansi256"
	default:
		return "basic8"
	}
}

// EnvMap turns os.Environ-style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		k, v, _ := strings.Cut(entry, "=")
		env[k] = v
	}
	return env
}

// DetectMode resolves ModeAuto for stdout. First match wins:
// TERM=dumb, NO_COLOR and CLICOLOR=0 disable colors; a non-zero
// CLICOLOR_FORCE or FORCE_COLOR enables them; otherwise stdout must be a TTY.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	switch {
	case strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb"):
		return ModeNever
	case strings.TrimSpace(env["NO_COLOR"]) != "":
		return ModeNever
	case strings.TrimSpace(env["CLICOLOR"]) == "0":
		return ModeNever
	case forced(env["CLICOLOR_FORCE"]), forced(env["FORCE_COLOR"]):
		return ModeAlways
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether to emit SGR sequences. An explicit mode from the
// user wins over detection.
func Enabled(mode ColorMode, stdout *os.File, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return DetectMode(stdout, env) == ModeAlways
	}
}

// DetectProfile picks the richest palette COLORTERM/TERM advertise.
func DetectProfile(env map[string]string) Profile {
	ct := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") || strings.Contains(ct, "24-bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
