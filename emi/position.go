package emi

import (
	"fmt"
	"strings"
)

// PaddingDirection is the alignment of a value within a fixed-width field.
type PaddingDirection int

const (
	// PadRight appends spaces after the value (value left-justified).
	PadRight PaddingDirection = iota
	// PadLeft prepends spaces before the value (value right-justified).
	PadLeft
)

// String returns a human-readable representation of the padding direction.
func (d PaddingDirection) String() string {
	switch d {
	case PadRight:
		return "right"
	case PadLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Position describes one fixed-width field as a start offset, a length, and
// the side the padding goes on.
type Position struct {
	Start   int
	Length  int
	Padding PaddingDirection
}

// End returns the offset one past the last character of the field.
func (p Position) End() int {
	return p.Start + p.Length
}

// Slice extracts the field value from a header string, stripping leading and
// trailing spaces. The caller is responsible for checking the overall input
// length first; a short input yields the available portion.
func (p Position) Slice(s string) string {
	if p.Start >= len(s) {
		return ""
	}
	end := p.End()
	if end > len(s) {
		end = len(s)
	}
	return strings.Trim(s[p.Start:end], string(PadChar))
}

// Pad expands value to the field length with ASCII spaces on the side
// opposite its alignment. An empty value pads to all spaces. Returns an
// error wrapping ErrInvalidFieldLength if the value is wider than the field.
func (p Position) Pad(value string) (string, error) {
	if len(value) > p.Length {
		return "", fmt.Errorf("value %q exceeds length %d: %w", value, p.Length, ErrInvalidFieldLength)
	}
	fill := strings.Repeat(string(PadChar), p.Length-len(value))
	if p.Padding == PadLeft {
		return fill + value, nil
	}
	return value + fill, nil
}
