package colorutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

// black and white are the two text colors AutoTextColor chooses between.
var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ParseHex decodes "#RRGGBB", "RRGGBB", "#RGB" or "RGB" (any case).
// Shorthand doubles every digit, so "#abc" equals "#aabbcc".
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return RGB{}, &FormatError{Input: s, Reason: fmt.Sprintf("expected 3 or 6 hex digits, got %d", len(digits))}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, &FormatError{Input: s, Reason: "contains non-hex characters"}
	}
	return RGB{
		R: uint8((v >> 16) & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8(v & 0xff),
	}, nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeHex returns s re-encoded as uppercase "#RRGGBB".
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex encodes the color as uppercase "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// RGBToHex rounds each channel to the nearest integer and clamps it into
// 0-255 before encoding. NaN encodes as 0.
func RGBToHex(r, g, b float64) string {
	return RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}.Hex()
}

// RGBToHexStrict is RGBToHex without clamping: a channel that rounds outside
// 0-255 (or is NaN) yields ErrChannelOutOfRange.
func RGBToHexStrict(r, g, b float64) (string, error) {
	channels := [3]struct {
		name  string
		value float64
	}{{"r", r}, {"g", g}, {"b", b}}
	for _, ch := range channels {
		rounded := math.Round(ch.value)
		if math.IsNaN(rounded) || rounded < 0 || rounded > 255 {
			return "", &RangeError{Channel: ch.name, Value: ch.value}
		}
	}
	return RGBToHex(r, g, b), nil
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
