package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

func ParseBool(raw, field string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %q", field, raw)
}

// Getenv returns a lookup that prefers the process environment and falls
// back to the variables of a .env file at dotenvPath. A missing .env file is
// not an error; a malformed one is.
func Getenv(dotenvPath string) (func(string) string, error) {
	values := map[string]string{}
	if dotenvPath != "" {
		read, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			values = read
		case errors.Is(err, os.ErrNotExist):
		default:
			return os.Getenv, fmt.Errorf("read %s: %w", dotenvPath, err)
		}
	}
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return values[key]
	}, nil
}

// FromEnv builds the env layer. PALETTEX_* names take precedence over the
// bare AI_* names.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(keys ...string) (string, string) {
		for _, key := range keys {
			if raw := strings.TrimSpace(getenv(key)); raw != "" {
				return raw, key
			}
		}
		return "", ""
	}
	setString := func(target **string, keys ...string) {
		raw, _ := lookup(keys...)
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, keys ...string) {
		raw, key := lookup(keys...)
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setDuration := func(target **time.Duration, keys ...string) {
		raw, key := lookup(keys...)
		if raw == "" {
			return
		}
		d, err := ParseDuration(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &d
	}

	setString(&cfg.Server.Addr, "PALETTEX_ADDR")
	if raw, _ := lookup("PALETTEX_ALLOW_ORIGINS"); raw != "" {
		list := SplitList(raw)
		cfg.Server.AllowOrigins = &list
	}
	setBool(&cfg.Server.Open, "PALETTEX_OPEN")

	setString(&cfg.Client.BaseURL, "PALETTEX_API_URL")
	setDuration(&cfg.Client.Timeout, "PALETTEX_CLIENT_TIMEOUT")

	setString(&cfg.AI.APIKey, "PALETTEX_AI_API_KEY", "AI_API_KEY")
	setString(&cfg.AI.BaseURL, "PALETTEX_AI_BASE_URL", "AI_API_BASE_URL")
	setString(&cfg.AI.Model, "PALETTEX_AI_MODEL", "AI_MODEL")
	setDuration(&cfg.AI.Timeout, "PALETTEX_AI_TIMEOUT", "AI_TIMEOUT")

	setString(&cfg.UI.Output, "PALETTEX_OUTPUT")
	setString(&cfg.UI.Color, "PALETTEX_COLOR")
	setString(&cfg.UI.Background, "PALETTEX_BACKGROUND")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
