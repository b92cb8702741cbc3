// Package header implements the fixed-width NCPDP transaction header codec.
//
// The header occupies the first 56 columns of an EMI message. Each field
// lives at a fixed offset with space padding; values are left-justified with
// spaces appended. Parse validates every field's shape (digits, closed code
// sets, date pattern) and Serialize reproduces the exact 56-column form, so
// Serialize(Parse(s)) == s for any well-formed header string.
//
// Optional fields (PCN, ServiceProviderID, CertificationID) are absent when
// their column range is entirely blank; the absent state is the empty
// string and serializes back to all spaces.
package header
