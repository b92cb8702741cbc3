package segments

import (
	"github.com/rxkit/ncpdp/emi"
)

// Prescriber is the AM03 prescriber segment.
type Prescriber struct {
	// IDQualifier is field EZ: qualifies the prescriber identifier.
	IDQualifier string

	// PrescriberID is field DB.
	PrescriberID string
}

var prescriberKeys = map[string]bool{"EZ": true, "DB": true}

func parsePrescriber(fields map[string]string) (Segment, error) {
	s := &Prescriber{}
	var err error

	if s.IDQualifier, err = requireField(PrescriberID, fields, "EZ"); err != nil {
		return nil, err
	}
	if s.PrescriberID, err = requireField(PrescriberID, fields, "DB"); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM03".
func (s *Prescriber) ID() string { return PrescriberID }

// Serialize returns the segment's wire form with fields in the canonical
// order EZ, DB.
func (s *Prescriber) Serialize() string {
	return join(PrescriberID,
		"EZ"+s.IDQualifier,
		"DB"+s.PrescriberID,
	)
}

// Validate checks that both attributes are set.
func (s *Prescriber) Validate() error {
	if s.IDQualifier == "" {
		return &emi.SegmentError{SegmentID: PrescriberID, Key: "EZ", Cause: emi.ErrMissingRequiredField}
	}
	if s.PrescriberID == "" {
		return &emi.SegmentError{SegmentID: PrescriberID, Key: "DB", Cause: emi.ErrMissingRequiredField}
	}
	return nil
}

// PharmacyProvider is the AM06 pharmacy provider segment.
type PharmacyProvider struct {
	// GroupID is field DZ.
	GroupID string
}

var pharmacyProviderKeys = map[string]bool{"DZ": true}

func parsePharmacyProvider(fields map[string]string) (Segment, error) {
	s := &PharmacyProvider{}
	var err error

	if s.GroupID, err = requireField(PharmacyProviderID, fields, "DZ"); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM06".
func (s *PharmacyProvider) ID() string { return PharmacyProviderID }

// Serialize returns the segment's wire form.
func (s *PharmacyProvider) Serialize() string {
	return join(PharmacyProviderID, "DZ"+s.GroupID)
}

// Validate checks that the group id is set.
func (s *PharmacyProvider) Validate() error {
	if s.GroupID == "" {
		return &emi.SegmentError{SegmentID: PharmacyProviderID, Key: "DZ", Cause: emi.ErrMissingRequiredField}
	}
	return nil
}

// Clinical is the AM08 clinical segment carrying other-payer context.
type Clinical struct {
	// OtherPayerCoverageType is field 7E.
	OtherPayerCoverageType string

	// OtherPayerIDQualifier is field E5.
	OtherPayerIDQualifier string
}

var clinicalKeys = map[string]bool{"7E": true, "E5": true}

func parseClinical(fields map[string]string) (Segment, error) {
	s := &Clinical{}
	var err error

	if s.OtherPayerCoverageType, err = requireField(ClinicalID, fields, "7E"); err != nil {
		return nil, err
	}
	if s.OtherPayerIDQualifier, err = requireField(ClinicalID, fields, "E5"); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM08".
func (s *Clinical) ID() string { return ClinicalID }

// Serialize returns the segment's wire form with fields in the canonical
// order 7E, E5.
func (s *Clinical) Serialize() string {
	return join(ClinicalID,
		"7E"+s.OtherPayerCoverageType,
		"E5"+s.OtherPayerIDQualifier,
	)
}

// Validate checks that both attributes are set.
func (s *Clinical) Validate() error {
	if s.OtherPayerCoverageType == "" {
		return &emi.SegmentError{SegmentID: ClinicalID, Key: "7E", Cause: emi.ErrMissingRequiredField}
	}
	if s.OtherPayerIDQualifier == "" {
		return &emi.SegmentError{SegmentID: ClinicalID, Key: "E5", Cause: emi.ErrMissingRequiredField}
	}
	return nil
}
