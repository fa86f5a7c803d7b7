package termcolor

import (
	"github.com/phyten/palettex/internal/colorutil"
)

// ColorFor maps c onto the given profile.
func ColorFor(c colorutil.RGB, profile Profile) Color {
	switch profile {
	case ProfileTrueColor:
		rgb := [3]uint8{c.R, c.G, c.B}
		return Color{True: &rgb}
	case ProfileANSI256:
		idx := RGBToANSI256(c.R, c.G, c.B)
		return Color{ANSI: &idx}
	default:
		idx := nearestBasic(c)
		return Color{Basic: &idx}
	}
}

// Swatch paints a block in c with whichever of black or white text reads
// better on it.
func Swatch(c colorutil.RGB, profile Profile) Style {
	return Style{
		FG: ColorFor(colorutil.AutoTextColor(c), profile),
		BG: ColorFor(c, profile),
	}
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// LevelStyle colors WCAG grades green, yellow or red.
func LevelStyle(level colorutil.Level) Style {
	var idx int
	switch level {
	case colorutil.LevelAAA:
		idx = 2
	case colorutil.LevelAA:
		idx = 3
	default:
		idx = 1
	}
	return Style{Bold: level == colorutil.LevelFail, FG: Color{Basic: &idx}}
}

func RGBToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}

// nearestBasic picks the 8-color index with each channel thresholded at half.
func nearestBasic(c colorutil.RGB) int {
	idx := 0
	if c.R >= 128 {
		idx |= 1
	}
	if c.G >= 128 {
		idx |= 2
	}
	if c.B >= 128 {
		idx |= 4
	}
	return idx
}
