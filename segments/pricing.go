package segments

import (
	"github.com/shopspring/decimal"

	"github.com/rxkit/ncpdp/emi"
	"github.com/rxkit/ncpdp/overpunch"
)

// Pricing is the AM11 pricing segment. Every attribute is a signed dollar
// amount in Overpunch form; values are stored as their raw wire strings so
// serialization is byte-exact, and decoded on demand via Amounts.
type Pricing struct {
	// IngredientCostSubmitted is field D9.
	IngredientCostSubmitted string

	// DispensingFeeSubmitted is field DC.
	DispensingFeeSubmitted string

	// ProfessionalServiceFeeSubmitted is field E3. Optional; empty when
	// absent.
	ProfessionalServiceFeeSubmitted string

	// GrossAmountDue is field DQ.
	GrossAmountDue string

	// OtherAmountClaimed is field DU.
	OtherAmountClaimed string
}

var pricingKeys = map[string]bool{
	"D9": true, "DC": true, "E3": true, "DQ": true, "DU": true,
}

func parsePricing(fields map[string]string) (Segment, error) {
	s := &Pricing{}
	var err error

	if s.IngredientCostSubmitted, err = requireField(PricingID, fields, "D9"); err != nil {
		return nil, err
	}
	if s.DispensingFeeSubmitted, err = requireField(PricingID, fields, "DC"); err != nil {
		return nil, err
	}
	if s.GrossAmountDue, err = requireField(PricingID, fields, "DQ"); err != nil {
		return nil, err
	}
	if s.OtherAmountClaimed, err = requireField(PricingID, fields, "DU"); err != nil {
		return nil, err
	}
	s.ProfessionalServiceFeeSubmitted = fields["E3"]

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM11".
func (s *Pricing) ID() string { return PricingID }

// Serialize returns the segment's wire form with fields in the canonical
// order D9, DC, E3, DQ, DU. An absent professional service fee contributes
// no piece.
func (s *Pricing) Serialize() string {
	pieces := []string{
		"D9" + s.IngredientCostSubmitted,
		"DC" + s.DispensingFeeSubmitted,
	}
	if s.ProfessionalServiceFeeSubmitted != "" {
		pieces = append(pieces, "E3"+s.ProfessionalServiceFeeSubmitted)
	}
	pieces = append(pieces,
		"DQ"+s.GrossAmountDue,
		"DU"+s.OtherAmountClaimed,
	)
	return join(PricingID, pieces...)
}

// Validate checks that every present amount is a decodable Overpunch value.
func (s *Pricing) Validate() error {
	amounts := map[string]string{
		"D9": s.IngredientCostSubmitted,
		"DC": s.DispensingFeeSubmitted,
		"DQ": s.GrossAmountDue,
		"DU": s.OtherAmountClaimed,
	}
	if s.ProfessionalServiceFeeSubmitted != "" {
		amounts["E3"] = s.ProfessionalServiceFeeSubmitted
	}
	for key, value := range amounts {
		if value == "" {
			return &emi.SegmentError{SegmentID: PricingID, Key: key, Cause: emi.ErrMissingRequiredField}
		}
		if !overpunch.Valid(value) {
			return &emi.SegmentError{SegmentID: PricingID, Key: key, Reason: value, Cause: emi.ErrInvalidOverpunch}
		}
	}
	return nil
}

// Amounts is the decoded decimal view of a Pricing segment. Dollar values
// carry the implied two-digit fraction of the wire form.
type Amounts struct {
	IngredientCostSubmitted         decimal.Decimal
	DispensingFeeSubmitted          decimal.Decimal
	ProfessionalServiceFeeSubmitted decimal.NullDecimal
	GrossAmountDue                  decimal.Decimal
	OtherAmountClaimed              decimal.Decimal
}

// Amounts decodes the Overpunch fields into exact decimal dollar amounts.
// The stored wire strings are unaffected.
func (s *Pricing) Amounts() (Amounts, error) {
	var a Amounts
	var err error

	if a.IngredientCostSubmitted, err = overpunch.DecodeAmount(s.IngredientCostSubmitted); err != nil {
		return Amounts{}, &emi.SegmentError{SegmentID: PricingID, Key: "D9", Cause: err}
	}
	if a.DispensingFeeSubmitted, err = overpunch.DecodeAmount(s.DispensingFeeSubmitted); err != nil {
		return Amounts{}, &emi.SegmentError{SegmentID: PricingID, Key: "DC", Cause: err}
	}
	if s.ProfessionalServiceFeeSubmitted != "" {
		fee, err := overpunch.DecodeAmount(s.ProfessionalServiceFeeSubmitted)
		if err != nil {
			return Amounts{}, &emi.SegmentError{SegmentID: PricingID, Key: "E3", Cause: err}
		}
		a.ProfessionalServiceFeeSubmitted = decimal.NullDecimal{Decimal: fee, Valid: true}
	}
	if a.GrossAmountDue, err = overpunch.DecodeAmount(s.GrossAmountDue); err != nil {
		return Amounts{}, &emi.SegmentError{SegmentID: PricingID, Key: "DQ", Cause: err}
	}
	if a.OtherAmountClaimed, err = overpunch.DecodeAmount(s.OtherAmountClaimed); err != nil {
		return Amounts{}, &emi.SegmentError{SegmentID: PricingID, Key: "DU", Cause: err}
	}

	return a, nil
}
