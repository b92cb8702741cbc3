package header

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/emi"
)

// Field positions within the 56-column header.
var (
	posRxBIN            = emi.Position{Start: 0, Length: 6, Padding: emi.PadRight}
	posVersion          = emi.Position{Start: 6, Length: 2, Padding: emi.PadRight}
	posTransactionCode  = emi.Position{Start: 8, Length: 2, Padding: emi.PadRight}
	posPCN              = emi.Position{Start: 10, Length: 10, Padding: emi.PadRight}
	posTransactionCount = emi.Position{Start: 20, Length: 1, Padding: emi.PadRight}
	posProviderIDQual   = emi.Position{Start: 21, Length: 2, Padding: emi.PadRight}
	posProviderID       = emi.Position{Start: 23, Length: 15, Padding: emi.PadRight}
	posServiceDate      = emi.Position{Start: 38, Length: 8, Padding: emi.PadRight}
	posCertificationID  = emi.Position{Start: 46, Length: 10, Padding: emi.PadRight}
)

// Field shape patterns.
var (
	rxbinPattern       = regexp.MustCompile(`^\d{6}$`)
	countPattern       = regexp.MustCompile(`^[1-9]$`)
	qualifierPattern   = regexp.MustCompile(`^[0-9][0-9]?$`)
	serviceDatePattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])$`)
)

// Header is the parsed transaction header.
//
// PCN, ServiceProviderID, and CertificationID are optional; the empty
// string is the absent state and serializes to all spaces.
type Header struct {
	// RxBIN is the 6-digit issuer identification number routing the claim
	// to a payer.
	RxBIN string

	// Version is the Telecommunication standard version code.
	Version codes.Version

	// TransactionCode classifies the message (billing, reversal, rebill...).
	TransactionCode codes.TransactionCode

	// PCN is the processor control number, up to 10 characters of routing
	// context within a payer. Optional.
	PCN string

	// TransactionCount is the number of transactions in the transmission,
	// a single digit 1-9.
	TransactionCount string

	// ServiceProviderIDQualifier qualifies ServiceProviderID, one or two
	// decimal digits.
	ServiceProviderIDQualifier string

	// ServiceProviderID identifies the submitting pharmacy, up to 15
	// characters. Optional.
	ServiceProviderID string

	// ServiceDate is the date of service in YYYYMMDD form.
	ServiceDate string

	// CertificationID is the processor-assigned certification id, up to 10
	// characters. Optional.
	CertificationID string
}

// Parse reads a 56-column header string into a Header, validating every
// field's shape. Inputs shorter than the header length fail with
// emi.ErrShortInput; extra trailing characters are ignored.
func Parse(s string) (*Header, error) {
	if len(s) < emi.HeaderLength {
		return nil, fmt.Errorf("header length %d, need %d: %w", len(s), emi.HeaderLength, emi.ErrShortInput)
	}

	rxbin := posRxBIN.Slice(s)
	if !rxbinPattern.MatchString(rxbin) {
		return nil, &emi.FieldError{Field: "rxbin", Offset: posRxBIN.Start, Value: rxbin, Cause: emi.ErrInvalidFormat}
	}

	version, err := codes.ParseVersion(posVersion.Slice(s))
	if err != nil {
		return nil, &emi.FieldError{Field: "version", Offset: posVersion.Start, Value: posVersion.Slice(s), Cause: err}
	}

	txCode, err := codes.ParseTransactionCode(posTransactionCode.Slice(s))
	if err != nil {
		return nil, &emi.FieldError{Field: "transaction_code", Offset: posTransactionCode.Start, Value: posTransactionCode.Slice(s), Cause: err}
	}

	count := posTransactionCount.Slice(s)
	if !countPattern.MatchString(count) {
		return nil, &emi.FieldError{Field: "transaction_count", Offset: posTransactionCount.Start, Value: count, Cause: emi.ErrInvalidFormat}
	}

	qualifier := posProviderIDQual.Slice(s)
	if !qualifierPattern.MatchString(qualifier) {
		return nil, &emi.FieldError{Field: "service_provider_id_qualifier", Offset: posProviderIDQual.Start, Value: qualifier, Cause: emi.ErrInvalidFormat}
	}

	date := posServiceDate.Slice(s)
	if !serviceDatePattern.MatchString(date) {
		return nil, &emi.FieldError{Field: "service_date", Offset: posServiceDate.Start, Value: date, Cause: emi.ErrInvalidFormat}
	}

	return &Header{
		RxBIN:                      rxbin,
		Version:                    version,
		TransactionCode:            txCode,
		PCN:                        posPCN.Slice(s),
		TransactionCount:           count,
		ServiceProviderIDQualifier: qualifier,
		ServiceProviderID:          posProviderID.Slice(s),
		ServiceDate:                date,
		CertificationID:            posCertificationID.Slice(s),
	}, nil
}

// Serialize writes the header back to its 56-column wire form. Absent
// optional fields pad to all spaces. Fails only when a stored value is
// wider than its field.
func (h *Header) Serialize() (string, error) {
	var b strings.Builder
	b.Grow(emi.HeaderLength)

	fields := []struct {
		name  string
		pos   emi.Position
		value string
	}{
		{name: "rxbin", pos: posRxBIN, value: h.RxBIN},
		{name: "version", pos: posVersion, value: string(h.Version)},
		{name: "transaction_code", pos: posTransactionCode, value: string(h.TransactionCode)},
		{name: "pcn", pos: posPCN, value: h.PCN},
		{name: "transaction_count", pos: posTransactionCount, value: h.TransactionCount},
		{name: "service_provider_id_qualifier", pos: posProviderIDQual, value: h.ServiceProviderIDQualifier},
		{name: "service_provider_id", pos: posProviderID, value: h.ServiceProviderID},
		{name: "service_date", pos: posServiceDate, value: h.ServiceDate},
		{name: "certification_id", pos: posCertificationID, value: h.CertificationID},
	}

	for _, f := range fields {
		padded, err := f.pos.Pad(f.value)
		if err != nil {
			return "", &emi.FieldError{Field: f.name, Offset: f.pos.Start, Value: f.value, Cause: err}
		}
		b.WriteString(padded)
	}

	return b.String(), nil
}

// Validate checks every field against its shape without serializing.
// Useful before constructing a message from hand-built headers.
func (h *Header) Validate() error {
	if !rxbinPattern.MatchString(h.RxBIN) {
		return &emi.FieldError{Field: "rxbin", Offset: posRxBIN.Start, Value: h.RxBIN, Cause: emi.ErrInvalidFormat}
	}
	if !h.Version.IsValid() {
		return &emi.FieldError{Field: "version", Offset: posVersion.Start, Value: string(h.Version), Cause: emi.ErrUnknownCode}
	}
	if !h.TransactionCode.IsValid() {
		return &emi.FieldError{Field: "transaction_code", Offset: posTransactionCode.Start, Value: string(h.TransactionCode), Cause: emi.ErrUnknownCode}
	}
	if !countPattern.MatchString(h.TransactionCount) {
		return &emi.FieldError{Field: "transaction_count", Offset: posTransactionCount.Start, Value: h.TransactionCount, Cause: emi.ErrInvalidFormat}
	}
	if !qualifierPattern.MatchString(h.ServiceProviderIDQualifier) {
		return &emi.FieldError{Field: "service_provider_id_qualifier", Offset: posProviderIDQual.Start, Value: h.ServiceProviderIDQualifier, Cause: emi.ErrInvalidFormat}
	}
	if !serviceDatePattern.MatchString(h.ServiceDate) {
		return &emi.FieldError{Field: "service_date", Offset: posServiceDate.Start, Value: h.ServiceDate, Cause: emi.ErrInvalidFormat}
	}
	if len(h.PCN) > posPCN.Length {
		return &emi.FieldError{Field: "pcn", Offset: posPCN.Start, Value: h.PCN, Cause: emi.ErrInvalidFieldLength}
	}
	if len(h.ServiceProviderID) > posProviderID.Length {
		return &emi.FieldError{Field: "service_provider_id", Offset: posProviderID.Start, Value: h.ServiceProviderID, Cause: emi.ErrInvalidFieldLength}
	}
	if len(h.CertificationID) > posCertificationID.Length {
		return &emi.FieldError{Field: "certification_id", Offset: posCertificationID.Start, Value: h.CertificationID, Cause: emi.ErrInvalidFieldLength}
	}
	return nil
}
