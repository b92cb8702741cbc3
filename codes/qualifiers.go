package codes

import (
	"fmt"

	"github.com/rxkit/ncpdp/emi"
)

// RxServiceReferenceQualifier qualifies the prescription/service reference
// number in Claim field EM.
type RxServiceReferenceQualifier string

// Valid prescription/service reference number qualifiers.
const (
	RxBilling              RxServiceReferenceQualifier = "01"
	ServiceBillingRef      RxServiceReferenceQualifier = "02"
	NonPrescriptionProduct RxServiceReferenceQualifier = "03"
)

// ParseRxServiceReferenceQualifier validates s against the closed set.
func ParseRxServiceReferenceQualifier(s string) (RxServiceReferenceQualifier, error) {
	switch q := RxServiceReferenceQualifier(s); q {
	case RxBilling, ServiceBillingRef, NonPrescriptionProduct:
		return q, nil
	}
	return "", fmt.Errorf("prescription service reference qualifier %q: %w", s, emi.ErrUnknownCode)
}

// IsValid reports whether the qualifier is a member of the closed set.
func (q RxServiceReferenceQualifier) IsValid() bool {
	switch q {
	case RxBilling, ServiceBillingRef, NonPrescriptionProduct:
		return true
	}
	return false
}

// ProductServiceIDQualifier qualifies the product/service id in Claim
// field E1.
type ProductServiceIDQualifier string

// Valid product/service id qualifiers.
const (
	ProductIDNotSpecified         ProductServiceIDQualifier = "00"
	ProductIDUPC                  ProductServiceIDQualifier = "01"
	ProductIDHRI                  ProductServiceIDQualifier = "02"
	ProductIDNDC                  ProductServiceIDQualifier = "03"
	ProductIDHIBCC                ProductServiceIDQualifier = "04"
	ProductIDDURPPS               ProductServiceIDQualifier = "06"
	ProductIDCPT4                 ProductServiceIDQualifier = "07"
	ProductIDCPT5                 ProductServiceIDQualifier = "08"
	ProductIDHCPCS                ProductServiceIDQualifier = "09"
	ProductIDPPAC                 ProductServiceIDQualifier = "10"
	ProductIDNAPPI                ProductServiceIDQualifier = "11"
	ProductIDGTIN                 ProductServiceIDQualifier = "12"
	ProductIDGCN                  ProductServiceIDQualifier = "15"
	ProductIDFDBMedNameID         ProductServiceIDQualifier = "28"
	ProductIDFDBRoutedMedID       ProductServiceIDQualifier = "29"
	ProductIDFDBRoutedDosageForm  ProductServiceIDQualifier = "30"
	ProductIDFDBMedID             ProductServiceIDQualifier = "31"
	ProductIDGCNSeqNo             ProductServiceIDQualifier = "32"
	ProductIDHICLSeqNo            ProductServiceIDQualifier = "33"
	ProductIDUPN                  ProductServiceIDQualifier = "34"
	ProductIDNDC36                ProductServiceIDQualifier = "36"
	ProductIDMPID                 ProductServiceIDQualifier = "42"
	ProductIDProdID               ProductServiceIDQualifier = "43"
	ProductIDSPID                 ProductServiceIDQualifier = "44"
	ProductIDDI                   ProductServiceIDQualifier = "45"
	ProductIDOther                ProductServiceIDQualifier = "99"
)

var productServiceIDQualifiers = map[ProductServiceIDQualifier]struct{}{
	ProductIDNotSpecified:        {},
	ProductIDUPC:                 {},
	ProductIDHRI:                 {},
	ProductIDNDC:                 {},
	ProductIDHIBCC:               {},
	ProductIDDURPPS:              {},
	ProductIDCPT4:                {},
	ProductIDCPT5:                {},
	ProductIDHCPCS:               {},
	ProductIDPPAC:                {},
	ProductIDNAPPI:               {},
	ProductIDGTIN:                {},
	ProductIDGCN:                 {},
	ProductIDFDBMedNameID:        {},
	ProductIDFDBRoutedMedID:      {},
	ProductIDFDBRoutedDosageForm: {},
	ProductIDFDBMedID:            {},
	ProductIDGCNSeqNo:            {},
	ProductIDHICLSeqNo:           {},
	ProductIDUPN:                 {},
	ProductIDNDC36:               {},
	ProductIDMPID:                {},
	ProductIDProdID:              {},
	ProductIDSPID:                {},
	ProductIDDI:                  {},
	ProductIDOther:               {},
}

// ParseProductServiceIDQualifier validates s against the closed set.
func ParseProductServiceIDQualifier(s string) (ProductServiceIDQualifier, error) {
	q := ProductServiceIDQualifier(s)
	if _, ok := productServiceIDQualifiers[q]; !ok {
		return "", fmt.Errorf("product service id qualifier %q: %w", s, emi.ErrUnknownCode)
	}
	return q, nil
}

// IsValid reports whether the qualifier is a member of the closed set.
func (q ProductServiceIDQualifier) IsValid() bool {
	_, ok := productServiceIDQualifiers[q]
	return ok
}
