package emi

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds reported by the codec.
var (
	// ErrShortInput indicates input shorter than the required header length.
	ErrShortInput = errors.New("input shorter than header length")
	// ErrInvalidFieldLength indicates a value wider than its declared field.
	ErrInvalidFieldLength = errors.New("value exceeds field length")
	// ErrInvalidFormat indicates a field that does not match its shape.
	ErrInvalidFormat = errors.New("invalid field format")
	// ErrUnknownCode indicates an enumerated field outside its closed set.
	ErrUnknownCode = errors.New("unknown code")
	// ErrInvalidOverpunch indicates an Overpunch decode failure.
	ErrInvalidOverpunch = errors.New("invalid overpunch value")
	// ErrMissingRequiredField indicates a required field key was not present
	// in a segment.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMissingRequiredSegment indicates a required segment variant was not
	// present in the claim.
	ErrMissingRequiredSegment = errors.New("missing required segment")
	// ErrDuplicateSegment indicates a segment variant appeared more than once.
	ErrDuplicateSegment = errors.New("duplicate segment")
	// ErrUnknownSegment indicates a segment identifier not in the registry.
	// Lenient parsers drop such segments instead of failing.
	ErrUnknownSegment = errors.New("unknown segment")
	// ErrEmptyInput indicates an empty message was provided.
	ErrEmptyInput = errors.New("empty input")
)

// FieldError reports a failure tied to a specific header field.
type FieldError struct {
	// Field is the header field name (e.g., "rxbin", "service_date").
	Field string
	// Offset is the 0-based byte offset of the field within the header.
	Offset int
	// Value is the offending value, if meaningful.
	Value string
	// Cause is the underlying sentinel or wrapped error.
	Cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	msg := fmt.Sprintf("field %s at offset %d", e.Field, e.Offset)
	if e.Value != "" {
		msg = fmt.Sprintf("%s: value %q", msg, e.Value)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the field error.
func (e *FieldError) Unwrap() error {
	return e.Cause
}

// SegmentError reports a failure tied to a segment or one of its fields.
type SegmentError struct {
	// SegmentID is the 4-character segment identifier (e.g., "AM04").
	SegmentID string
	// Key is the 2-character field key within the segment, if applicable.
	Key string
	// Reason describes what went wrong.
	Reason string
	// Cause is the underlying sentinel or wrapped error.
	Cause error
}

// Error implements the error interface.
func (e *SegmentError) Error() string {
	msg := fmt.Sprintf("segment %s", e.SegmentID)
	if e.Key != "" {
		msg = fmt.Sprintf("%s field %s", msg, e.Key)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the segment error.
func (e *SegmentError) Unwrap() error {
	return e.Cause
}
