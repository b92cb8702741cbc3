package emi

// Control bytes framing the delimited portion of an EMI message.
// These are the only framing bytes in the wire language.
const (
	// FieldSeparator separates key-prefixed fields within a segment.
	FieldSeparator = '\x1c' // File Separator <FS>
	// GroupSeparator terminates the Patient segment before the following
	// segment separator.
	GroupSeparator = '\x1d' // Group Separator <GS>
	// SegmentSeparator separates the header and each segment.
	SegmentSeparator = '\x1e' // Record Separator <RS>
)

// HeaderLength is the fixed width of the transaction header in characters.
const HeaderLength = 56

// PadChar is the padding character for fixed-width header fields.
const PadChar = ' '
