// Package claim assembles NCPDP transaction headers and segments into whole
// claim messages and converts them to and from the EMI wire form.
//
// A Message owns exactly one header and one set of segments. Insurance,
// Patient, Claim, and Pricing are always present; Prescriber,
// PharmacyProvider, and Clinical are optional and pointer-valued.
//
// # Parsing
//
//	p := claim.NewParser()
//	msg, err := p.ParseString(wire)
//
// The parser splits the input on the segment separator, parses the first
// piece as the fixed-width header, dispatches the remaining pieces through
// the segment registry, and collates the results. By default unknown
// segment identifiers are dropped for forward compatibility;
// WithStrictSegments(true) turns them into failures. Header field errors
// carry the field name and offset, and segment errors carry the segment
// identifier; input-level errors (empty input, short header, size limits)
// carry neither. No partial Message is ever returned.
//
// For one-off use, FromString parses with the default configuration and
// ParseFile reads the wire text from disk first.
//
// # Serializing
//
//	wire, err := msg.Serialize()
//
// Segments are emitted in the canonical order Insurance, Patient, Claim,
// Pricing, Prescriber, PharmacyProvider, Clinical, joined by the segment
// separator after the 56-column header. The Patient segment's bytes end
// with the group separator. Serialization does not rewrite stored segment
// values but emits each segment's fields in its canonical order, so parse
// followed by serialize reproduces byte for byte a well-formed input whose
// fields are already in canonical order. Unknown keys and unknown segments
// are dropped and do not reappear.
package claim
