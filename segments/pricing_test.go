package segments

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxkit/ncpdp/emi"
)

func samplePricing() *Pricing {
	return &Pricing{
		IngredientCostSubmitted:         "00000125C",
		DispensingFeeSubmitted:          "00000015{",
		ProfessionalServiceFeeSubmitted: "0000000I",
		GrossAmountDue:                  "00000140C",
		OtherAmountClaimed:              "0{",
	}
}

func TestParsePricing(t *testing.T) {
	want := samplePricing()
	raw := "AM11" + fs + "D9" + want.IngredientCostSubmitted +
		fs + "DC" + want.DispensingFeeSubmitted +
		fs + "E3" + want.ProfessionalServiceFeeSubmitted +
		fs + "DQ" + want.GrossAmountDue +
		fs + "DU" + want.OtherAmountClaimed

	got, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPricingRoundTrip(t *testing.T) {
	withFee := samplePricing()
	withoutFee := samplePricing()
	withoutFee.ProfessionalServiceFeeSubmitted = ""

	for _, want := range []*Pricing{withFee, withoutFee} {
		require.NoError(t, want.Validate())
		got, err := Parse(want.Serialize())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPricingSerializeOmitsAbsentFee(t *testing.T) {
	p := samplePricing()
	p.ProfessionalServiceFeeSubmitted = ""
	assert.NotContains(t, p.Serialize(), fs+"E3")
}

// Raw Overpunch strings are stored untouched; decoding is on demand.
func TestPricingAmounts(t *testing.T) {
	p := samplePricing()

	a, err := p.Amounts()
	require.NoError(t, err)

	assert.True(t, a.IngredientCostSubmitted.Equal(decimal.RequireFromString("12.53")))
	assert.True(t, a.DispensingFeeSubmitted.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, a.ProfessionalServiceFeeSubmitted.Valid)
	assert.True(t, a.ProfessionalServiceFeeSubmitted.Decimal.Equal(decimal.RequireFromString("0.09")))
	assert.True(t, a.GrossAmountDue.Equal(decimal.RequireFromString("14.03")))
	assert.True(t, a.OtherAmountClaimed.IsZero())

	// Stored wire forms are unchanged by decoding.
	assert.Equal(t, "00000125C", p.IngredientCostSubmitted)
}

func TestPricingAmountsAbsentFee(t *testing.T) {
	p := samplePricing()
	p.ProfessionalServiceFeeSubmitted = ""

	a, err := p.Amounts()
	require.NoError(t, err)
	assert.False(t, a.ProfessionalServiceFeeSubmitted.Valid)
}

func TestParsePricingInvalidOverpunch(t *testing.T) {
	raw := "AM11" + fs + "D9BOGUS" + fs + "DC0{" + fs + "DQ0{" + fs + "DU0{"

	_, err := Parse(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrInvalidOverpunch))

	var segErr *emi.SegmentError
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, "D9", segErr.Key)
}

func TestParsePricingMissingAmount(t *testing.T) {
	raw := "AM11" + fs + "D90{" + fs + "DC0{" + fs + "DU0{"

	_, err := Parse(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrMissingRequiredField))

	var segErr *emi.SegmentError
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, "DQ", segErr.Key)
}
