package colorutil

import "math"

// Linear is a gamma-decoded color with channels in [0,1].
type Linear struct {
	R float64
	G float64
	B float64
}

// SRGBToLinear decodes an 8-bit sRGB channel (0-255) into linear light.
// Inputs outside 0-255 are clamped first.
func SRGBToLinear(channel float64) float64 {
	return srgbToLinear(clamp(channel, 0, 255) / 255.0)
}

// LinearToSRGB encodes a linear-light value back to the 0-1 sRGB scale.
// Matrix outputs can go slightly negative, so the input is clamped to [0,1].
func LinearToSRGB(v float64) float64 {
	c := clamp(v, 0, 1)
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Linear decodes every channel of c.
func (c RGB) Linear() Linear {
	return Linear{
		R: SRGBToLinear(float64(c.R)),
		G: SRGBToLinear(float64(c.G)),
		B: SRGBToLinear(float64(c.B)),
	}
}

// RGB re-encodes l to 8-bit sRGB, rounding and clamping each channel.
func (l Linear) RGB() RGB {
	return RGB{
		R: clampByte(LinearToSRGB(l.R) * 255),
		G: clampByte(LinearToSRGB(l.G) * 255),
		B: clampByte(LinearToSRGB(l.B) * 255),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
