// Package emi provides the core wire vocabulary for NCPDP Telecommunication
// messages in their EMI form: the framing control bytes, the fixed-width
// field position table primitives, and the shared error taxonomy.
//
// # Wire Form
//
// An EMI message is a mixed fixed-width and delimited representation:
//
//	Message = Header (56 chars) <RS> Segment1 <RS> Segment2 <RS> ...
//
// The transaction header occupies the first 56 columns with space-padded
// fields at fixed offsets. Everything after the header is a stream of
// segments framed by three control bytes:
//
//	Field separator   0x1C  separates key-prefixed fields within a segment
//	Group separator   0x1D  terminates the Patient segment
//	Segment separator 0x1E  separates segments (and the header)
//
// # Positions and Padding
//
// Position describes one fixed-width header field as (start, length, padding
// direction). Reading always takes the slice and strips surrounding spaces;
// writing pads the value with ASCII spaces on the side opposite its
// alignment. See Position.Slice and Position.Pad.
//
// # Errors
//
// The package defines sentinel errors for every failure kind the codec can
// report, plus FieldError and SegmentError carrying the offending field or
// segment identifier. All higher-level packages wrap these sentinels, so
// callers can classify failures with errors.Is:
//
//	_, err := header.Parse(raw)
//	if errors.Is(err, emi.ErrShortInput) {
//	    // input was truncated
//	}
package emi
