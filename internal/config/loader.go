package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var sectionKeys = map[string]map[string]string{
	"server": {
		"addr":          "addr",
		"address":       "addr",
		"listen":        "addr",
		"allow_origins": "allow_origins",
		"cors_origins":  "allow_origins",
		"open":          "open",
	},
	"client": {
		"base_url": "base_url",
		"api_url":  "base_url",
		"timeout":  "timeout",
	},
	"ai": {
		"api_key":  "api_key",
		"base_url": "base_url",
		"model":    "model",
		"timeout":  "timeout",
	},
	"ui": {
		"output":     "output",
		"color":      "color",
		"background": "background",
		"bg":         "background",
	},
}

// Load reads one config file. The format follows the extension.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	sections := make(map[string]map[string]any, len(sectionKeys))
	for name := range sectionKeys {
		sections[name] = make(map[string]any)
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		if allowed, ok := sectionKeys[norm]; ok {
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", norm, err)
			}
			for k, v := range sub {
				canonical, ok := allowed[normalizeKey(k)]
				if !ok {
					return cfg, fmt.Errorf("unknown %s key: %s", norm, k)
				}
				sections[norm][canonical] = v
			}
			continue
		}
		// UI keys may also be written at the top level.
		if canonical, ok := sectionKeys["ui"][norm]; ok {
			sections["ui"][canonical] = value
			continue
		}
		return cfg, fmt.Errorf("unknown config key: %s", key)
	}

	if err := assignServer(sections["server"], &cfg.Server); err != nil {
		return cfg, fmt.Errorf("server: %w", err)
	}
	if err := assignClient(sections["client"], &cfg.Client); err != nil {
		return cfg, fmt.Errorf("client: %w", err)
	}
	if err := assignAI(sections["ai"], &cfg.AI); err != nil {
		return cfg, fmt.Errorf("ai: %w", err)
	}
	if err := assignUI(sections["ui"], &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func assignServer(section map[string]any, dst *ServerConfig) error {
	for key, value := range section {
		switch key {
		case "addr":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Addr = &str
		case "allow_origins":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.AllowOrigins = &list
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		}
	}
	return nil
}

func assignClient(section map[string]any, dst *ClientConfig) error {
	for key, value := range section {
		switch key {
		case "base_url":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.BaseURL = &str
		case "timeout":
			d, err := expectDuration(value, key)
			if err != nil {
				return err
			}
			dst.Timeout = &d
		}
	}
	return nil
}

func assignAI(section map[string]any, dst *AIConfig) error {
	for key, value := range section {
		var target **string
		switch key {
		case "timeout":
			d, err := expectDuration(value, key)
			if err != nil {
				return err
			}
			dst.Timeout = &d
			continue
		case "api_key":
			target = &dst.APIKey
		case "base_url":
			target = &dst.BaseURL
		case "model":
			target = &dst.Model
		default:
			continue
		}
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		*target = &str
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		switch key {
		case "output":
			dst.Output = &str
		case "color":
			dst.Color = &str
		case "background":
			dst.Background = &str
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("expected string for %s, got %T", field, value)
	}
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

// expectDuration treats bare numbers as seconds, matching AI_TIMEOUT.
func expectDuration(value any, field string) (time.Duration, error) {
	switch v := value.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	case string:
		return ParseDuration(v, field)
	default:
		return 0, fmt.Errorf("expected duration for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			if str != "" {
				out = append(out, str)
			}
		}
		return out, nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// ParseDuration accepts "10s"-style durations or a plain number of seconds.
func ParseDuration(raw, field string) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("invalid duration for %s: %q", field, raw)
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", field, raw)
	}
	return d, nil
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(raw string) []string {
	return normalizeList(strings.Split(raw, ","))
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
