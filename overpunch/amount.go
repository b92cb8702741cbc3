package overpunch

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rxkit/ncpdp/emi"
)

// amountExponent is the implied fraction width of Pricing dollar amounts:
// the wire carries cents, the decoded value is dollars.
const amountExponent = -2

// DecodeAmount converts an Overpunch string to a decimal dollar amount with
// the implied two-digit fraction. The wire value "125C" decodes to 12.53.
func DecodeAmount(s string) (decimal.Decimal, error) {
	n, err := Decode(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(n, amountExponent), nil
}

// EncodeAmount converts a decimal dollar amount to its Overpunch wire form.
// The amount must be representable in whole cents; finer fractions fail
// with an error wrapping emi.ErrInvalidOverpunch.
func EncodeAmount(d decimal.Decimal) (string, error) {
	cents := d.Shift(-amountExponent)
	if !cents.IsInteger() {
		return "", fmt.Errorf("amount %s has sub-cent precision: %w", d, emi.ErrInvalidOverpunch)
	}
	return Encode(cents.IntPart()), nil
}
