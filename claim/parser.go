package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rxkit/ncpdp/emi"
	"github.com/rxkit/ncpdp/header"
	"github.com/rxkit/ncpdp/segments"
)

// Parser-specific errors.
var (
	// ErrTooManySegments is returned when the message exceeds the
	// configured segment limit.
	ErrTooManySegments = errors.New("message exceeds maximum segment count")
	// ErrFieldTooLong is returned when a field exceeds the configured
	// length limit.
	ErrFieldTooLong = errors.New("field exceeds maximum length")
)

// Parser converts EMI wire text into claim Messages.
type Parser interface {
	// Parse parses raw wire data into a Message.
	Parse(data []byte) (*Message, error)

	// ParseString parses a wire string into a Message.
	ParseString(s string) (*Message, error)

	// ParseContext parses with context support, allowing cancellation
	// between segments.
	ParseContext(ctx context.Context, data []byte) (*Message, error)
}

// parser is the concrete implementation of Parser.
type parser struct {
	config parserConfig
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...ParserOption) Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{config: cfg}
}

// Parse parses raw wire data into a Message.
func (p *parser) Parse(data []byte) (*Message, error) {
	return p.ParseContext(context.Background(), data)
}

// ParseString parses a wire string into a Message.
func (p *parser) ParseString(s string) (*Message, error) {
	return p.ParseContext(context.Background(), []byte(s))
}

// ParseContext parses raw wire data with context support.
func (p *parser) ParseContext(ctx context.Context, data []byte) (*Message, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, emi.ErrEmptyInput
	}

	pieces := strings.Split(string(data), string(emi.SegmentSeparator))
	if len(pieces)-1 > p.config.maxSegments {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManySegments, len(pieces)-1, p.config.maxSegments)
	}

	// The first piece is the fixed-width header. Only line terminators are
	// trimmed: the header's space padding is significant.
	h, err := header.Parse(strings.Trim(pieces[0], "\r\n"))
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	var segs []segments.Segment
	for _, raw := range pieces[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := p.checkFieldLengths(raw); err != nil {
			return nil, err
		}

		seg, err := segments.Parse(raw)
		if err != nil {
			switch {
			case errors.Is(err, emi.ErrEmptyInput):
				continue
			case errors.Is(err, emi.ErrUnknownSegment) && !p.config.strictSegments:
				continue
			}
			return nil, err
		}
		segs = append(segs, seg)
	}

	return FromSegments(*h, segs)
}

// checkFieldLengths validates that no field within the raw segment exceeds
// the configured maximum.
func (p *parser) checkFieldLengths(raw string) error {
	for _, field := range strings.Split(raw, string(emi.FieldSeparator)) {
		if len(field) > p.config.maxFieldLength {
			return fmt.Errorf("%w: field is %d bytes, max %d", ErrFieldTooLong, len(field), p.config.maxFieldLength)
		}
	}
	return nil
}

// FromString parses a wire string with the default parser configuration.
func FromString(s string) (*Message, error) {
	return NewParser().ParseString(s)
}
