package segments

import (
	"fmt"
	"strings"

	"github.com/rxkit/ncpdp/emi"
)

// Segment identifiers.
const (
	InsuranceID        = "AM04"
	PatientID          = "AM01"
	ClaimID            = "AM07"
	PricingID          = "AM11"
	PrescriberID       = "AM03"
	PharmacyProviderID = "AM06"
	ClinicalID         = "AM08"
)

// Segment is one delimited segment of a claim message.
type Segment interface {
	// ID returns the 4-character segment identifier.
	ID() string

	// Serialize returns the segment's wire form: a field separator, the
	// identifier, then each key-prefixed field in canonical order joined
	// by field separators.
	Serialize() string

	// Validate checks the segment's attributes against their shapes.
	Validate() error
}

// decoder ties a segment identifier to its key set and constructor.
type decoder struct {
	keys  map[string]bool
	parse func(fields map[string]string) (Segment, error)
}

var registry = map[string]decoder{
	InsuranceID:        {keys: insuranceKeys, parse: parseInsurance},
	PatientID:          {keys: patientKeys, parse: parsePatient},
	ClaimID:            {keys: claimKeys, parse: parseClaim},
	PricingID:          {keys: pricingKeys, parse: parsePricing},
	PrescriberID:       {keys: prescriberKeys, parse: parsePrescriber},
	PharmacyProviderID: {keys: pharmacyProviderKeys, parse: parsePharmacyProvider},
	ClinicalID:         {keys: clinicalKeys, parse: parseClinical},
}

// frameCutset is trimmed from both ends of a raw segment before splitting:
// surrounding whitespace plus the field and group separators that frame a
// segment on the wire.
const frameCutset = " \t\r\n" + string(emi.FieldSeparator) + string(emi.GroupSeparator)

// Parse decodes one raw segment into its typed variant. The raw form is the
// text between two segment separators; leading and trailing whitespace and
// framing bytes are ignored. Unrecognized identifiers fail with an error
// wrapping emi.ErrUnknownSegment.
func Parse(raw string) (Segment, error) {
	raw = strings.Trim(raw, frameCutset)
	if raw == "" {
		return nil, fmt.Errorf("empty segment: %w", emi.ErrEmptyInput)
	}

	pieces := strings.Split(raw, string(emi.FieldSeparator))
	id := pieces[0]

	dec, ok := registry[id]
	if !ok {
		return nil, &emi.SegmentError{SegmentID: id, Cause: emi.ErrUnknownSegment}
	}

	// Sweep the key-prefixed pieces. Wire order is not significant and
	// unknown keys are skipped.
	fields := make(map[string]string, len(pieces)-1)
	for _, piece := range pieces[1:] {
		if len(piece) < 2 {
			continue
		}
		key := piece[:2]
		if dec.keys[key] {
			fields[key] = piece[2:]
		}
	}

	return dec.parse(fields)
}

// Registered reports whether id is a known segment identifier.
func Registered(id string) bool {
	_, ok := registry[id]
	return ok
}

// join builds a segment's wire form from its identifier and key-prefixed
// field pieces.
func join(id string, pieces ...string) string {
	sep := string(emi.FieldSeparator)
	return sep + id + sep + strings.Join(pieces, sep)
}

// requireField extracts a required field from the swept key map.
func requireField(id string, fields map[string]string, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", &emi.SegmentError{SegmentID: id, Key: key, Cause: emi.ErrMissingRequiredField}
	}
	return v, nil
}
