package termcolor

import (
	"fmt"
	"strings"
)

// Color is one SGR color in exactly one of the three palettes.
type Color struct {
	Basic *int
	ANSI  *int
	True  *[3]uint8
}

func (c Color) isZero() bool {
	return c.Basic == nil && c.ANSI == nil && c.True == nil
}

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FG        Color
	BG        Color
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 5)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if !s.FG.isZero() {
		codes = append(codes, colorCode(s.FG, 3))
	}
	if !s.BG.isZero() {
		codes = append(codes, colorCode(s.BG, 4))
	}
	return codes
}

// colorCode renders c with prefix 3 (foreground) or 4 (background).
func colorCode(c Color, prefix int) string {
	switch {
	case c.True != nil:
		rgb := *c.True
		return fmt.Sprintf("%d8;2;%d;%d;%d", prefix, rgb[0], rgb[1], rgb[2])
	case c.ANSI != nil:
		return fmt.Sprintf("%d8;5;%d", prefix, *c.ANSI)
	default:
		return fmt.Sprintf("%d%d", prefix, *c.Basic)
	}
}
