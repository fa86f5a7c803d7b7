package colorutil

// Level is a WCAG 2.x normal-text conformance tag.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "FAIL"
)

const (
	MinRatioAA  = 4.5
	MinRatioAAA = 7.0
)

// Luminance is the WCAG relative luminance of c (BT.709 weights).
func (c RGB) Luminance() float64 {
	l := c.Linear()
	return 0.2126*l.R + 0.7152*l.G + 0.0722*l.B
}

// Luminance parses hex and returns its relative luminance.
func Luminance(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return c.Luminance(), nil
}

func ContrastRatio(fg, bg RGB) float64 {
	l1 := fg.Luminance()
	l2 := bg.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for two hex strings. The result is
// symmetric in its arguments and lies in [1, 21].
func ContrastRatioHex(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ca, cb), nil
}

// ContrastLevel grades ratio against the inclusive WCAG minimums.
func ContrastLevel(ratio float64) Level {
	switch {
	case ratio >= MinRatioAAA:
		return LevelAAA
	case ratio >= MinRatioAA:
		return LevelAA
	default:
		return LevelFail
	}
}

func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(black, bg)
	crWhite := ContrastRatio(white, bg)
	if crBlack >= MinRatioAA || crBlack >= crWhite {
		return black
	}
	return white
}

// EnsureContrast keeps fg when it already reaches minRatio against bg and
// otherwise falls back to AutoTextColor.
func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = MinRatioAA
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	return AutoTextColor(bg)
}
