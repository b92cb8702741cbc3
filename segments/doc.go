// Package segments provides typed structs and codecs for the NCPDP claim
// segments.
//
// Each segment variant carries a fixed 4-character identifier and a set of
// named attributes that map one-to-one to 2-character field keys on the
// wire:
//
//	Insurance        AM04
//	Patient          AM01
//	Claim            AM07
//	Pricing          AM11
//	Prescriber       AM03
//	PharmacyProvider AM06
//	Clinical         AM08
//
// Parse splits a raw segment on the field separator, looks the identifier
// up in the static registry, and assigns each known key's value to the
// matching attribute. Key order on the wire is not significant; unknown
// keys inside a recognized segment are skipped for forward compatibility.
// Unknown segment identifiers fail with emi.ErrUnknownSegment, which
// lenient callers treat as "drop the segment".
//
// Serialize emits the identifier and the key-prefixed fields in each
// variant's canonical order, joined by the field separator, with a field
// separator prepended. The Patient segment's serialized form additionally
// ends with the group separator.
package segments
