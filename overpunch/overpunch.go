package overpunch

import (
	"fmt"
	"strconv"

	"github.com/rxkit/ncpdp/emi"
)

// terminal maps a trailing character to its units digit and sign.
type terminal struct {
	digit    byte
	negative bool
}

var terminals = map[byte]terminal{
	'{': {digit: 0}, 'A': {digit: 1}, 'B': {digit: 2}, 'C': {digit: 3},
	'D': {digit: 4}, 'E': {digit: 5}, 'F': {digit: 6}, 'G': {digit: 7},
	'H': {digit: 8}, 'I': {digit: 9},

	'}': {digit: 0, negative: true}, 'J': {digit: 1, negative: true},
	'K': {digit: 2, negative: true}, 'L': {digit: 3, negative: true},
	'M': {digit: 4, negative: true}, 'N': {digit: 5, negative: true},
	'O': {digit: 6, negative: true}, 'P': {digit: 7, negative: true},
	'Q': {digit: 8, negative: true}, 'R': {digit: 9, negative: true},
}

// positiveTerminals maps a units digit to its positive overpunch character.
var positiveTerminals = [10]byte{'{', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I'}

// negativeTerminals maps a units digit to its negative overpunch character.
var negativeTerminals = [10]byte{'}', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R'}

// Decode converts an Overpunch string to a signed integer. The last
// character supplies the units digit and the sign; a plain trailing digit
// decodes as positive. All preceding characters must be decimal digits.
// Failures wrap emi.ErrInvalidOverpunch.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value: %w", emi.ErrInvalidOverpunch)
	}

	last := s[len(s)-1]
	prefix := s[:len(s)-1]

	var units byte
	var negative bool
	switch {
	case last >= '0' && last <= '9':
		units = last - '0'
	default:
		t, ok := terminals[last]
		if !ok {
			return 0, fmt.Errorf("terminal character %q in %q: %w", string(last), s, emi.ErrInvalidOverpunch)
		}
		units = t.digit
		negative = t.negative
	}

	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return 0, fmt.Errorf("non-digit %q in %q: %w", string(prefix[i]), s, emi.ErrInvalidOverpunch)
		}
	}

	magnitude, err := strconv.ParseInt(prefix+string('0'+units), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q out of range: %w", s, emi.ErrInvalidOverpunch)
	}

	if negative {
		return -magnitude, nil
	}
	return magnitude, nil
}

// Encode converts a signed integer to its canonical Overpunch form: the
// magnitude's decimal digits with the last digit replaced by the overpunch
// character carrying the sign. Encode(0) yields "{".
func Encode(n int64) string {
	negative := n < 0
	magnitude := n
	if negative {
		magnitude = -magnitude
	}

	digits := strconv.FormatInt(magnitude, 10)
	units := digits[len(digits)-1] - '0'
	prefix := digits[:len(digits)-1]

	if negative {
		return prefix + string(negativeTerminals[units])
	}
	return prefix + string(positiveTerminals[units])
}

// Valid reports whether s is a decodable Overpunch value.
func Valid(s string) bool {
	_, err := Decode(s)
	return err == nil
}
