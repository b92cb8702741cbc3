package codes

import (
	"fmt"

	"github.com/rxkit/ncpdp/emi"
)

// TransactionCode classifies the message in header field A3.
type TransactionCode string

// Valid transaction codes.
const (
	Billing                        TransactionCode = "B1"
	Reversal                       TransactionCode = "B2"
	Rebill                         TransactionCode = "B3"
	ControlledSubstanceReporting   TransactionCode = "C1"
	ControlledSubstanceReversal    TransactionCode = "C2"
	ControlledSubstanceRebill      TransactionCode = "C3"
	PredeterminationOfBenefits     TransactionCode = "D1"
	EligibilityVerification        TransactionCode = "E1"
	InformationReporting           TransactionCode = "N1"
	InformationReportingReversal   TransactionCode = "N2"
	InformationReportingRebill     TransactionCode = "N3"
	PARequestAndBilling            TransactionCode = "P1"
	PAReversal                     TransactionCode = "P2"
	PAInquiry                      TransactionCode = "P3"
	PARequestOnly                  TransactionCode = "P4"
	ServiceBilling                 TransactionCode = "S1"
	ServiceReversal                TransactionCode = "S2"
	ServiceRebill                  TransactionCode = "S3"
	FinancialReportingInquiry      TransactionCode = "F1"
	FinancialReportingUpdate       TransactionCode = "F2"
	FinancialReportingExchange     TransactionCode = "F3"
)

var transactionCodeNames = map[TransactionCode]string{
	Billing:                      "Billing",
	Reversal:                     "Reversal",
	Rebill:                       "Rebill",
	ControlledSubstanceReporting: "Controlled Substance Reporting",
	ControlledSubstanceReversal:  "Controlled Substance Reversal",
	ControlledSubstanceRebill:    "Controlled Substance Rebill",
	PredeterminationOfBenefits:   "Predetermination of Benefits",
	EligibilityVerification:      "Eligibility Verification",
	InformationReporting:         "Information Reporting",
	InformationReportingReversal: "Information Reporting Reversal",
	InformationReportingRebill:   "Information Reporting Rebill",
	PARequestAndBilling:          "Prior Authorization Request and Billing",
	PAReversal:                   "Prior Authorization Reversal",
	PAInquiry:                    "Prior Authorization Inquiry",
	PARequestOnly:                "Prior Authorization Request Only",
	ServiceBilling:               "Service Billing",
	ServiceReversal:              "Service Reversal",
	ServiceRebill:                "Service Rebill",
	FinancialReportingInquiry:    "Financial Information Reporting Inquiry",
	FinancialReportingUpdate:     "Financial Information Reporting Update",
	FinancialReportingExchange:   "Financial Information Reporting Exchange",
}

// reversalCounterparts maps submission codes to the code that reverses them.
var reversalCounterparts = map[TransactionCode]TransactionCode{
	Billing:                      Reversal,
	Rebill:                       Reversal,
	ControlledSubstanceReporting: ControlledSubstanceReversal,
	ControlledSubstanceRebill:    ControlledSubstanceReversal,
	InformationReporting:         InformationReportingReversal,
	InformationReportingRebill:   InformationReportingReversal,
	PARequestAndBilling:          PAReversal,
	ServiceBilling:               ServiceReversal,
	ServiceRebill:                ServiceReversal,
}

// ParseTransactionCode validates s against the closed set of transaction
// codes. Returns an error wrapping emi.ErrUnknownCode for any other value.
func ParseTransactionCode(s string) (TransactionCode, error) {
	c := TransactionCode(s)
	if _, ok := transactionCodeNames[c]; !ok {
		return "", fmt.Errorf("transaction code %q: %w", s, emi.ErrUnknownCode)
	}
	return c, nil
}

// IsValid reports whether the code is a member of the closed set.
func (c TransactionCode) IsValid() bool {
	_, ok := transactionCodeNames[c]
	return ok
}

// Description returns the human-readable name of the transaction code, or
// "Unknown" for values outside the set.
func (c TransactionCode) Description() string {
	if name, ok := transactionCodeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ReversalCode returns the transaction code that reverses this one.
// The second return is false for codes with no reversal counterpart
// (reversals, inquiries, eligibility checks).
func (c TransactionCode) ReversalCode() (TransactionCode, bool) {
	r, ok := reversalCounterparts[c]
	return r, ok
}
