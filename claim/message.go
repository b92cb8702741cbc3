package claim

import (
	"fmt"
	"strings"

	"github.com/rxkit/ncpdp/emi"
	"github.com/rxkit/ncpdp/header"
	"github.com/rxkit/ncpdp/segments"
)

// Message is a whole NCPDP claim: one transaction header plus one set of
// segments. Insurance, Patient, Claim, and Pricing are always present;
// the pointer-valued segments are optional.
//
// Messages are value types; the parser returns a fully populated Message
// and never mutates one after construction.
type Message struct {
	Header           header.Header
	Insurance        segments.Insurance
	Patient          segments.Patient
	Claim            segments.Claim
	Pricing          segments.Pricing
	Prescriber       *segments.Prescriber
	PharmacyProvider *segments.PharmacyProvider
	Clinical         *segments.Clinical
}

// FromSegments collates parsed segment variants into a Message. A variant
// appearing twice fails with emi.ErrDuplicateSegment; a missing required
// variant fails with emi.ErrMissingRequiredSegment.
func FromSegments(h header.Header, segs []segments.Segment) (*Message, error) {
	m := &Message{Header: h}

	var haveInsurance, havePatient, haveClaim, havePricing bool

	for _, seg := range segs {
		switch s := seg.(type) {
		case *segments.Insurance:
			if haveInsurance {
				return nil, duplicate(segments.InsuranceID)
			}
			m.Insurance = *s
			haveInsurance = true
		case *segments.Patient:
			if havePatient {
				return nil, duplicate(segments.PatientID)
			}
			m.Patient = *s
			havePatient = true
		case *segments.Claim:
			if haveClaim {
				return nil, duplicate(segments.ClaimID)
			}
			m.Claim = *s
			haveClaim = true
		case *segments.Pricing:
			if havePricing {
				return nil, duplicate(segments.PricingID)
			}
			m.Pricing = *s
			havePricing = true
		case *segments.Prescriber:
			if m.Prescriber != nil {
				return nil, duplicate(segments.PrescriberID)
			}
			m.Prescriber = s
		case *segments.PharmacyProvider:
			if m.PharmacyProvider != nil {
				return nil, duplicate(segments.PharmacyProviderID)
			}
			m.PharmacyProvider = s
		case *segments.Clinical:
			if m.Clinical != nil {
				return nil, duplicate(segments.ClinicalID)
			}
			m.Clinical = s
		default:
			return nil, &emi.SegmentError{SegmentID: seg.ID(), Cause: emi.ErrUnknownSegment}
		}
	}

	for id, present := range map[string]bool{
		segments.InsuranceID: haveInsurance,
		segments.PatientID:   havePatient,
		segments.ClaimID:     haveClaim,
		segments.PricingID:   havePricing,
	} {
		if !present {
			return nil, &emi.SegmentError{SegmentID: id, Cause: emi.ErrMissingRequiredSegment}
		}
	}

	return m, nil
}

func duplicate(id string) error {
	return &emi.SegmentError{SegmentID: id, Cause: emi.ErrDuplicateSegment}
}

// Serialize writes the message to its EMI wire form: the 56-column header,
// then each present segment in canonical order, joined by the segment
// separator. Fails only when a header value is wider than its field.
func (m *Message) Serialize() (string, error) {
	head, err := m.Header.Serialize()
	if err != nil {
		return "", fmt.Errorf("serializing header: %w", err)
	}

	parts := []string{head}
	for _, seg := range m.presentSegments() {
		parts = append(parts, seg.Serialize())
	}

	return strings.Join(parts, string(emi.SegmentSeparator)), nil
}

// presentSegments returns the message's segments in canonical emit order.
func (m *Message) presentSegments() []segments.Segment {
	segs := []segments.Segment{&m.Insurance, &m.Patient, &m.Claim, &m.Pricing}
	if m.Prescriber != nil {
		segs = append(segs, m.Prescriber)
	}
	if m.PharmacyProvider != nil {
		segs = append(segs, m.PharmacyProvider)
	}
	if m.Clinical != nil {
		segs = append(segs, m.Clinical)
	}
	return segs
}

// Validate checks the header and every present segment against their
// shapes. Serialize does not validate; call this before serializing
// hand-built messages.
func (m *Message) Validate() error {
	if err := m.Header.Validate(); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for _, seg := range m.presentSegments() {
		if err := seg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Reversal returns a copy of the message with the transaction code flipped
// to the reversal counterpart of its current code (B1 and B3 reverse to
// B2, and so on). Fails for codes with no reversal counterpart.
func (m *Message) Reversal() (*Message, error) {
	code, ok := m.Header.TransactionCode.ReversalCode()
	if !ok {
		return nil, fmt.Errorf("transaction code %s has no reversal: %w",
			m.Header.TransactionCode, emi.ErrUnknownCode)
	}

	reversed := *m
	reversed.Header.TransactionCode = code
	return &reversed, nil
}
