package colorutil

import (
	"fmt"
	"strings"
)

// Matrix is a row-major 3x3 transform applied in linear light.
type Matrix [3][3]float64

// Deficiency names a simulated color-vision deficiency.
type Deficiency string

const (
	Deuteranopia  Deficiency = "deuteranopia"
	Protanopia    Deficiency = "protanopia"
	Tritanopia    Deficiency = "tritanopia"
	Achromatopsia Deficiency = "achromatopsia"
)

// Each row sums to roughly 1 so overall brightness is preserved.
var matrices = map[Deficiency]Matrix{
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Protanopia: {
		{0.56667, 0.43333, 0},
		{0.55833, 0.44167, 0},
		{0, 0.24167, 0.75833},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.43333, 0.56667},
		{0, 0.475, 0.525},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
}

// Deficiencies lists every supported simulation in display order.
func Deficiencies() []Deficiency {
	return []Deficiency{Deuteranopia, Protanopia, Tritanopia, Achromatopsia}
}

func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := matrices[d]; !ok {
		return "", fmt.Errorf("unknown deficiency: %s", s)
	}
	return d, nil
}

// MatrixFor returns a copy of the simulation matrix for d.
func MatrixFor(d Deficiency) (Matrix, bool) {
	m, ok := matrices[d]
	return m, ok
}

// Apply multiplies m by the column vector l.
func (m Matrix) Apply(l Linear) Linear {
	return Linear{
		R: m[0][0]*l.R + m[0][1]*l.G + m[0][2]*l.B,
		G: m[1][0]*l.R + m[1][1]*l.G + m[1][2]*l.B,
		B: m[2][0]*l.R + m[2][1]*l.G + m[2][2]*l.B,
	}
}

// Transform decodes c, applies m in linear light and re-encodes the result.
func (c RGB) Transform(m Matrix) RGB {
	return m.Apply(c.Linear()).RGB()
}

// ApplyMatrix is Transform for hex input and output.
func ApplyMatrix(hex string, m Matrix) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.Transform(m).Hex(), nil
}

// Simulate returns how hex appears to a viewer with deficiency d.
func Simulate(hex string, d Deficiency) (string, error) {
	m, ok := matrices[d]
	if !ok {
		return "", fmt.Errorf("unknown deficiency: %s", d)
	}
	return ApplyMatrix(hex, m)
}

func SimulateDeuteranopia(hex string) (string, error) { return Simulate(hex, Deuteranopia) }

func SimulateProtanopia(hex string) (string, error) { return Simulate(hex, Protanopia) }

func SimulateTritanopia(hex string) (string, error) { return Simulate(hex, Tritanopia) }

func SimulateAchromatopsia(hex string) (string, error) { return Simulate(hex, Achromatopsia) }
