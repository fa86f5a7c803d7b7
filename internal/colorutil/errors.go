package colorutil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColorFormat reports a hex color that is not 3 or 6 hex digits.
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrChannelOutOfRange reports a channel that cannot be encoded as a byte.
	ErrChannelOutOfRange = errors.New("channel out of range")
)

// FormatError describes why a color string was rejected.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidColorFormat, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidColorFormat }

// RangeError carries the offending channel value.
type RangeError struct {
	Channel string
	Value   float64
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s=%v (want 0-255)", ErrChannelOutOfRange, e.Channel, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrChannelOutOfRange }
