package claim

// Default parser configuration values.
const (
	defaultMaxSegments    = 64   // protection against runaway segment streams
	defaultMaxFieldLength = 4096 // protection against oversized field values
)

// parserConfig holds the parser configuration.
type parserConfig struct {
	strictSegments bool // fail on unknown segment identifiers
	maxSegments    int  // maximum segments allowed per message
	maxFieldLength int  // maximum field length allowed in bytes
}

// defaultConfig returns a parser configuration with default values.
func defaultConfig() parserConfig {
	return parserConfig{
		strictSegments: false,
		maxSegments:    defaultMaxSegments,
		maxFieldLength: defaultMaxFieldLength,
	}
}

// ParserOption is a functional option for configuring the parser.
type ParserOption func(*parserConfig)

// WithStrictSegments controls handling of unknown segment identifiers.
// When false (the default) unrecognized segments are dropped, preserving
// forward compatibility with processors that add segments. When true,
// an unrecognized identifier fails the parse with emi.ErrUnknownSegment.
func WithStrictSegments(strict bool) ParserOption {
	return func(c *parserConfig) {
		c.strictSegments = strict
	}
}

// WithMaxSegments sets the maximum number of segments allowed in a message.
// Default is 64.
func WithMaxSegments(limit int) ParserOption {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxSegments = limit
		}
	}
}

// WithMaxFieldLength sets the maximum length in bytes of a single
// key-prefixed field. Default is 4096.
func WithMaxFieldLength(limit int) ParserOption {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxFieldLength = limit
		}
	}
}
