package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
)

var outputFormats = map[string]struct{}{
	"table":    {},
	"json":     {},
	"ndjson":   {},
	"csv":      {},
	"markdown": {},
}

func CanonicalizeOutput(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "table", nil
	}
	if v == "md" {
		v = "markdown"
	}
	if _, ok := outputFormats[v]; !ok {
		return "", fmt.Errorf("invalid output: %s", raw)
	}
	return v, nil
}

func CanonicalizeColor(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

// Validate canonicalizes s in place and reports every problem at once.
func Validate(s *Settings) error {
	var errs []error
	if strings.TrimSpace(s.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if err := validateURL("client.base_url", s.Client.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("ai.base_url", s.AI.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if s.Client.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if s.AI.Timeout <= 0 {
		errs = append(errs, errors.New("ai.timeout must be positive"))
	}
	if out, err := CanonicalizeOutput(s.UI.Output); err != nil {
		errs = append(errs, err)
	} else {
		s.UI.Output = out
	}
	if color, err := CanonicalizeColor(s.UI.Color); err != nil {
		errs = append(errs, err)
	} else {
		s.UI.Color = color
	}
	if bg, err := colorutil.NormalizeHex(s.UI.Background); err != nil {
		errs = append(errs, fmt.Errorf("ui.background: %w", err))
	} else {
		s.UI.Background = bg
	}
	return errors.Join(errs...)
}

func validateURL(field, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL: %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", field, raw)
	}
	return nil
}
