package generator

import (
	"context"
	"fmt"
	"math/rand"
)

// Fallback derives colors from a PRNG seeded with the prompt length, so the
// same prompt length always yields the same palette.
type Fallback struct {
	Size int
}

func (f Fallback) Generate(_ context.Context, prompt string) ([]string, error) {
	size := f.Size
	if size <= 0 {
		size = PaletteSize
	}
	rng := rand.New(rand.NewSource(int64(len(prompt))))
	colors := make([]string, 0, size)
	for i := 0; i < size; i++ {
		colors = append(colors, fmt.Sprintf("#%06X", rng.Intn(0xFFFFFF)))
	}
	return colors, nil
}
