// Package generator produces five-color palettes from a text prompt, first via
// an OpenAI-compatible chat model and then, when that fails, via a
// deterministic pseudo-random fallback.
package generator

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// PaletteSize is the number of colors every palette carries.
const PaletteSize = 5

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) ([]string, error)
}

// Result is a generated palette and the generator that produced it.
type Result struct {
	Colors []string
	Source string
}

var hexColorRe = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)

// ExtractColors returns every #RRGGBB code in text, uppercased and
// de-duplicated in first-seen order.
func ExtractColors(text string) []string {
	matches := hexColorRe.FindAllString(text, -1)
	colors := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		upper := strings.ToUpper(m)
		if _, ok := seen[upper]; ok {
			continue
		}
		seen[upper] = struct{}{}
		colors = append(colors, upper)
	}
	return colors
}

// Chain tries Primary and falls back to Fallback on any error.
type Chain struct {
	Primary  Generator
	Fallback Generator
	Logger   *slog.Logger
}

func (c *Chain) Generate(ctx context.Context, prompt string) (Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Primary != nil {
		colors, err := c.Primary.Generate(ctx, prompt)
		if err == nil {
			logger.Info("palette.ai.ok", "colors", len(colors))
			return Result{Colors: colors, Source: SourceAI}, nil
		}
		logger.Warn("palette.ai.failed", "err", err)
	}
	fallback := c.Fallback
	if fallback == nil {
		fallback = Fallback{}
	}
	colors, err := fallback.Generate(ctx, prompt)
	if err != nil {
		return Result{}, err
	}
	return Result{Colors: colors, Source: SourceFallback}, nil
}
