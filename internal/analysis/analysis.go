package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
)

const (
	DefaultBackground = "#FFFFFF"
	// CollisionThreshold is the CIEDE2000 distance under which two simulated
	// colors are reported as hard to tell apart.
	CollisionThreshold = 10.0
)

type Entry struct {
	Hex         string                          `json:"hex"`
	Luminance   float64                         `json:"luminance"`
	Contrast    float64                         `json:"contrast"`
	Level       colorutil.Level                 `json:"level"`
	TextColor   string                          `json:"text_color"`
	Simulations map[colorutil.Deficiency]string `json:"simulations"`
}

type Collision struct {
	Deficiency colorutil.Deficiency `json:"deficiency"`
	A          string               `json:"a"`
	B          string               `json:"b"`
	DeltaE     float64              `json:"delta_e"`
}

type Report struct {
	Background string      `json:"background"`
	Entries    []Entry     `json:"entries"`
	Collisions []Collision `json:"collisions"`
}

// Analyze grades every color against background and lists the pairs that
// become indistinguishable under each simulated deficiency.
func Analyze(colors []string, background string) (Report, error) {
	if len(colors) == 0 {
		return Report{}, errors.New("at least one color is required")
	}
	if strings.TrimSpace(background) == "" {
		background = DefaultBackground
	}
	bg, err := colorutil.ParseHex(background)
	if err != nil {
		return Report{}, fmt.Errorf("background: %w", err)
	}

	parsed := make([]colorutil.RGB, len(colors))
	for i, raw := range colors {
		c, err := colorutil.ParseHex(raw)
		if err != nil {
			return Report{}, fmt.Errorf("color %d: %w", i+1, err)
		}
		parsed[i] = c
	}

	report := Report{Background: bg.Hex(), Entries: make([]Entry, 0, len(parsed)), Collisions: []Collision{}}
	simulated := make(map[colorutil.Deficiency][]colorutil.RGB, len(colorutil.Deficiencies()))
	for _, c := range parsed {
		ratio := colorutil.ContrastRatio(c, bg)
		entry := Entry{
			Hex:         c.Hex(),
			Luminance:   c.Luminance(),
			Contrast:    ratio,
			Level:       colorutil.ContrastLevel(ratio),
			TextColor:   colorutil.AutoTextColor(c).Hex(),
			Simulations: make(map[colorutil.Deficiency]string, len(colorutil.Deficiencies())),
		}
		for _, d := range colorutil.Deficiencies() {
			m, _ := colorutil.MatrixFor(d)
			sim := c.Transform(m)
			entry.Simulations[d] = sim.Hex()
			simulated[d] = append(simulated[d], sim)
		}
		report.Entries = append(report.Entries, entry)
	}

	for _, d := range colorutil.Deficiencies() {
		sims := simulated[d]
		for i := 0; i < len(sims); i++ {
			for j := i + 1; j < len(sims); j++ {
				if parsed[i] == parsed[j] {
					continue
				}
				if colorutil.Distinguishable(sims[i], sims[j], CollisionThreshold) {
					continue
				}
				report.Collisions = append(report.Collisions, Collision{
					Deficiency: d,
					A:          parsed[i].Hex(),
					B:          parsed[j].Hex(),
					DeltaE:     colorutil.DeltaE(sims[i], sims[j]),
				})
			}
		}
	}
	return report, nil
}
