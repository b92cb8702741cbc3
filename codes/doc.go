// Package codes defines the closed enumerations used by NCPDP
// Telecommunication claim messages: header version, transaction code,
// patient gender, product/service id qualifier, prescription service
// reference number qualifier, and special packaging indicator.
//
// Each enumeration is a string type whose values are exactly the code
// points that appear on the wire. Parsing a value outside a set fails with
// an error wrapping emi.ErrUnknownCode; there is no fallback to plain
// strings.
//
//	code, err := codes.ParseTransactionCode("B1")
//	if errors.Is(err, emi.ErrUnknownCode) {
//	    // value outside the closed set
//	}
package codes
