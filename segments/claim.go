package segments

import (
	"regexp"

	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/emi"
)

var (
	rxReferencePattern = regexp.MustCompile(`^\d{12}$`)
	modifiersPattern   = regexp.MustCompile(`^.{2}$`)
)

// Claim is the AM07 claim segment carrying the prescription fill detail.
type Claim struct {
	// RxServiceReferenceQualifier is field EM.
	RxServiceReferenceQualifier codes.RxServiceReferenceQualifier

	// RxServiceReferenceNumber is field D2: exactly 12 decimal digits.
	RxServiceReferenceNumber string

	// ProductServiceIDQualifier is field E1.
	ProductServiceIDQualifier codes.ProductServiceIDQualifier

	// ProductServiceID is field D7: the dispensed product identifier.
	ProductServiceID string

	// ProcedureModifiers is field SE: exactly 2 characters.
	ProcedureModifiers string

	// QuantityDispensed is field E7: metric quantity with implied
	// three-digit fraction (0000010000 = 10.000).
	QuantityDispensed string

	// FillNumber is field D3.
	FillNumber string

	// DaysSupply is field D5.
	DaysSupply string

	// RefillsAuthorized is field D6.
	RefillsAuthorized string

	// DAWCode is field D8: dispense-as-written product selection code.
	DAWCode string

	// DatePrescriptionWritten is field DE.
	DatePrescriptionWritten string

	// NumberAuthorizedRefills is field DF.
	NumberAuthorizedRefills string

	// PrescriptionOriginCode is field DJ.
	PrescriptionOriginCode string

	// SpecialPackagingIndicator is field DT. Optional; empty when absent.
	SpecialPackagingIndicator codes.SpecialPackagingIndicator

	// OtherCoverageCode is field EB. Optional; empty when absent.
	OtherCoverageCode string
}

var claimKeys = map[string]bool{
	"EM": true, "D2": true, "E1": true, "D7": true, "SE": true,
	"E7": true, "D3": true, "D5": true, "D6": true, "D8": true,
	"DE": true, "DF": true, "DJ": true, "DT": true, "EB": true,
}

func parseClaim(fields map[string]string) (Segment, error) {
	s := &Claim{}
	var err error

	rawQualifier, err := requireField(ClaimID, fields, "EM")
	if err != nil {
		return nil, err
	}
	if s.RxServiceReferenceQualifier, err = codes.ParseRxServiceReferenceQualifier(rawQualifier); err != nil {
		return nil, &emi.SegmentError{SegmentID: ClaimID, Key: "EM", Cause: err}
	}

	if s.RxServiceReferenceNumber, err = requireField(ClaimID, fields, "D2"); err != nil {
		return nil, err
	}
	if !rxReferencePattern.MatchString(s.RxServiceReferenceNumber) {
		return nil, &emi.SegmentError{
			SegmentID: ClaimID,
			Key:       "D2",
			Reason:    "reference number must be 12 digits",
			Cause:     emi.ErrInvalidFormat,
		}
	}

	rawProductQualifier, err := requireField(ClaimID, fields, "E1")
	if err != nil {
		return nil, err
	}
	if s.ProductServiceIDQualifier, err = codes.ParseProductServiceIDQualifier(rawProductQualifier); err != nil {
		return nil, &emi.SegmentError{SegmentID: ClaimID, Key: "E1", Cause: err}
	}

	if s.ProductServiceID, err = requireField(ClaimID, fields, "D7"); err != nil {
		return nil, err
	}

	if s.ProcedureModifiers, err = requireField(ClaimID, fields, "SE"); err != nil {
		return nil, err
	}
	if !modifiersPattern.MatchString(s.ProcedureModifiers) {
		return nil, &emi.SegmentError{
			SegmentID: ClaimID,
			Key:       "SE",
			Reason:    "procedure modifiers must be 2 characters",
			Cause:     emi.ErrInvalidFormat,
		}
	}

	if s.QuantityDispensed, err = requireField(ClaimID, fields, "E7"); err != nil {
		return nil, err
	}
	if s.FillNumber, err = requireField(ClaimID, fields, "D3"); err != nil {
		return nil, err
	}
	if s.DaysSupply, err = requireField(ClaimID, fields, "D5"); err != nil {
		return nil, err
	}
	if s.RefillsAuthorized, err = requireField(ClaimID, fields, "D6"); err != nil {
		return nil, err
	}
	if s.DAWCode, err = requireField(ClaimID, fields, "D8"); err != nil {
		return nil, err
	}
	if s.DatePrescriptionWritten, err = requireField(ClaimID, fields, "DE"); err != nil {
		return nil, err
	}
	if s.NumberAuthorizedRefills, err = requireField(ClaimID, fields, "DF"); err != nil {
		return nil, err
	}
	if s.PrescriptionOriginCode, err = requireField(ClaimID, fields, "DJ"); err != nil {
		return nil, err
	}

	if raw, ok := fields["DT"]; ok {
		if s.SpecialPackagingIndicator, err = codes.ParseSpecialPackagingIndicator(raw); err != nil {
			return nil, &emi.SegmentError{SegmentID: ClaimID, Key: "DT", Cause: err}
		}
	}
	if raw, ok := fields["EB"]; ok {
		s.OtherCoverageCode = raw
	}

	return s, nil
}

// ID returns the segment identifier "AM07".
func (s *Claim) ID() string { return ClaimID }

// Serialize returns the segment's wire form with fields in the canonical
// order EM, D2, E1, D7, SE, E7, D3, D5, D6, D8, DE, DF, DJ, DT, EB.
// Absent optional fields contribute no piece.
func (s *Claim) Serialize() string {
	pieces := []string{
		"EM" + string(s.RxServiceReferenceQualifier),
		"D2" + s.RxServiceReferenceNumber,
		"E1" + string(s.ProductServiceIDQualifier),
		"D7" + s.ProductServiceID,
		"SE" + s.ProcedureModifiers,
		"E7" + s.QuantityDispensed,
		"D3" + s.FillNumber,
		"D5" + s.DaysSupply,
		"D6" + s.RefillsAuthorized,
		"D8" + s.DAWCode,
		"DE" + s.DatePrescriptionWritten,
		"DF" + s.NumberAuthorizedRefills,
		"DJ" + s.PrescriptionOriginCode,
	}
	if s.SpecialPackagingIndicator != "" {
		pieces = append(pieces, "DT"+string(s.SpecialPackagingIndicator))
	}
	if s.OtherCoverageCode != "" {
		pieces = append(pieces, "EB"+s.OtherCoverageCode)
	}
	return join(ClaimID, pieces...)
}

// Validate checks the enumerated qualifiers and fixed-shape fields.
func (s *Claim) Validate() error {
	if !s.RxServiceReferenceQualifier.IsValid() {
		return &emi.SegmentError{SegmentID: ClaimID, Key: "EM", Cause: emi.ErrUnknownCode}
	}
	if !rxReferencePattern.MatchString(s.RxServiceReferenceNumber) {
		return &emi.SegmentError{SegmentID: ClaimID, Key: "D2", Cause: emi.ErrInvalidFormat}
	}
	if !s.ProductServiceIDQualifier.IsValid() {
		return &emi.SegmentError{SegmentID: ClaimID, Key: "E1", Cause: emi.ErrUnknownCode}
	}
	if !modifiersPattern.MatchString(s.ProcedureModifiers) {
		return &emi.SegmentError{SegmentID: ClaimID, Key: "SE", Cause: emi.ErrInvalidFormat}
	}
	if s.SpecialPackagingIndicator != "" && !s.SpecialPackagingIndicator.IsValid() {
		return &emi.SegmentError{SegmentID: ClaimID, Key: "DT", Cause: emi.ErrUnknownCode}
	}
	for key, value := range map[string]string{
		"D7": s.ProductServiceID,
		"E7": s.QuantityDispensed,
		"D3": s.FillNumber,
		"D5": s.DaysSupply,
		"D6": s.RefillsAuthorized,
		"D8": s.DAWCode,
		"DE": s.DatePrescriptionWritten,
		"DF": s.NumberAuthorizedRefills,
		"DJ": s.PrescriptionOriginCode,
	} {
		if value == "" {
			return &emi.SegmentError{SegmentID: ClaimID, Key: key, Cause: emi.ErrMissingRequiredField}
		}
	}
	return nil
}
