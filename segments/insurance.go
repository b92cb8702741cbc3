package segments

import (
	"github.com/rxkit/ncpdp/emi"
)

// Insurance is the AM04 insurance segment carrying cardholder identity.
type Insurance struct {
	// FirstName is field C1: cardholder first name.
	FirstName string

	// InternalControlNumber is field C2.
	InternalControlNumber string

	// PersonCode is field C3: the person's relationship code on the card.
	PersonCode string

	// CardholderID is field A6.
	CardholderID string

	// LastName is field A7: cardholder last name.
	LastName string
}

var insuranceKeys = map[string]bool{
	"C1": true, "C2": true, "C3": true, "A6": true, "A7": true,
}

func parseInsurance(fields map[string]string) (Segment, error) {
	s := &Insurance{}
	var err error

	if s.FirstName, err = requireField(InsuranceID, fields, "C1"); err != nil {
		return nil, err
	}
	if s.InternalControlNumber, err = requireField(InsuranceID, fields, "C2"); err != nil {
		return nil, err
	}
	if s.PersonCode, err = requireField(InsuranceID, fields, "C3"); err != nil {
		return nil, err
	}
	if s.CardholderID, err = requireField(InsuranceID, fields, "A6"); err != nil {
		return nil, err
	}
	if s.LastName, err = requireField(InsuranceID, fields, "A7"); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM04".
func (s *Insurance) ID() string { return InsuranceID }

// Serialize returns the segment's wire form with fields in the canonical
// order C2, C1, C3, A6, A7.
func (s *Insurance) Serialize() string {
	return join(InsuranceID,
		"C2"+s.InternalControlNumber,
		"C1"+s.FirstName,
		"C3"+s.PersonCode,
		"A6"+s.CardholderID,
		"A7"+s.LastName,
	)
}

// Validate checks that every required attribute is set.
func (s *Insurance) Validate() error {
	for key, value := range map[string]string{
		"C1": s.FirstName,
		"C2": s.InternalControlNumber,
		"C3": s.PersonCode,
		"A6": s.CardholderID,
		"A7": s.LastName,
	} {
		if value == "" {
			return &emi.SegmentError{SegmentID: InsuranceID, Key: key, Cause: emi.ErrMissingRequiredField}
		}
	}
	return nil
}
