package colorutil

import colorful "github.com/lucasb-eyer/go-colorful"

// DeltaE is the CIEDE2000 difference between a and b on the usual 0-100
// lightness scale. Values under ~2 are hard to tell apart.
func DeltaE(a, b RGB) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful()) * 100
}

// Distinguishable reports whether a and b differ by at least threshold.
func Distinguishable(a, b RGB, threshold float64) bool {
	return DeltaE(a, b) >= threshold
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
