// Package testdata provides embedded EMI wire claims and model builders for
// testing the ncpdp library.
package testdata

import (
	"embed"
	"fmt"
	"time"

	"github.com/rxkit/ncpdp/claim"
	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/header"
	"github.com/rxkit/ncpdp/segments"
)

//go:embed *.emi malformed/*.emi
var FS embed.FS

// Wire claim file names.
const (
	FileValidClaim       = "valid_claim.emi"
	FileMinimalClaim     = "minimal_claim.emi"
	FileUnknownSegment   = "unknown_segment.emi"
	FileShortHeader      = "malformed/short_header.emi"
	FileBadVersion       = "malformed/bad_version.emi"
	FileMissingPricing   = "malformed/missing_pricing.emi"
	FileDuplicatePatient = "malformed/duplicate_patient.emi"
)

// Load reads a wire claim file from the embedded filesystem.
func Load(name string) (string, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("loading test file %s: %w", name, err)
	}
	return string(data), nil
}

// MustLoad reads a wire claim file and panics on error. Useful for test
// setup where failure should halt the test.
func MustLoad(name string) string {
	data, err := Load(name)
	if err != nil {
		panic(err)
	}
	return data
}

// BuildHeader returns a billing transaction header matching the embedded
// wire claims.
func BuildHeader() header.Header {
	return header.Header{
		RxBIN:                      "024368",
		Version:                    codes.VersionD0,
		TransactionCode:            codes.Billing,
		TransactionCount:           "1",
		ServiceProviderIDQualifier: "01",
		ServiceProviderID:          "1790887081",
		ServiceDate:                "20231110",
	}
}

// BuildInsurance returns a populated insurance segment.
func BuildInsurance() segments.Insurance {
	return segments.Insurance{
		FirstName:             "JOHN",
		InternalControlNumber: "ICN0001",
		PersonCode:            "001",
		CardholderID:          "CARD12345",
		LastName:              "DOE",
	}
}

// BuildPatient returns a populated patient segment.
func BuildPatient() segments.Patient {
	return segments.Patient{
		DOB:       time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC),
		Gender:    codes.GenderMale,
		LastName:  "SMITH",
		FirstName: "JANE",
		ZIP:       "12345",
	}
}

// BuildClaimSegment returns a populated claim segment.
func BuildClaimSegment() segments.Claim {
	return segments.Claim{
		RxServiceReferenceQualifier: codes.RxBilling,
		RxServiceReferenceNumber:    "123456789012",
		ProductServiceIDQualifier:   codes.ProductIDNDC,
		ProductServiceID:            "00002021990",
		ProcedureModifiers:          "00",
		QuantityDispensed:           "0000010000",
		FillNumber:                  "0",
		DaysSupply:                  "30",
		RefillsAuthorized:           "5",
		DAWCode:                     "0",
		DatePrescriptionWritten:     "20231101",
		NumberAuthorizedRefills:     "5",
		PrescriptionOriginCode:      "1",
	}
}

// BuildPricing returns a populated pricing segment.
func BuildPricing() segments.Pricing {
	return segments.Pricing{
		IngredientCostSubmitted:         "00000125C",
		DispensingFeeSubmitted:          "00000015{",
		ProfessionalServiceFeeSubmitted: "0000000I",
		GrossAmountDue:                  "00000140C",
		OtherAmountClaimed:              "0{",
	}
}

// BuildPrescriber returns a populated prescriber segment.
func BuildPrescriber() *segments.Prescriber {
	return &segments.Prescriber{IDQualifier: "01", PrescriberID: "1234567890"}
}

// BuildPharmacyProvider returns a populated pharmacy provider segment.
func BuildPharmacyProvider() *segments.PharmacyProvider {
	return &segments.PharmacyProvider{GroupID: "RXGRP"}
}

// BuildClinical returns a populated clinical segment.
func BuildClinical() *segments.Clinical {
	return &segments.Clinical{OtherPayerCoverageType: "01", OtherPayerIDQualifier: "99"}
}

// BuildMessage returns a claim message with all seven segments populated.
// Its serialized form equals the contents of FileValidClaim.
func BuildMessage() *claim.Message {
	return &claim.Message{
		Header:           BuildHeader(),
		Insurance:        BuildInsurance(),
		Patient:          BuildPatient(),
		Claim:            BuildClaimSegment(),
		Pricing:          BuildPricing(),
		Prescriber:       BuildPrescriber(),
		PharmacyProvider: BuildPharmacyProvider(),
		Clinical:         BuildClinical(),
	}
}

// BuildMinimalMessage returns a claim message with only the required
// segments. Its serialized form equals the contents of FileMinimalClaim.
func BuildMinimalMessage() *claim.Message {
	return &claim.Message{
		Header:    BuildHeader(),
		Insurance: BuildInsurance(),
		Patient:   BuildPatient(),
		Claim:     BuildClaimSegment(),
		Pricing:   BuildPricing(),
	}
}
