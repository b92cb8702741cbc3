package envelope

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/rxkit/ncpdp/claim"
)

// Default execution flags for submitted payloads.
const (
	defaultRulesRangeStart = 0
	defaultRulesRangeStop  = 29
)

// RulesRange bounds the processor's rules execution.
type RulesRange struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Payload is the JSON submission envelope for one claim transaction.
type Payload struct {
	// MessageID uniquely identifies the submission.
	MessageID string `json:"message_id"`

	// Transaction is the base64-encoded EMI wire text.
	Transaction string `json:"transaction"`

	IsDebug    bool `json:"is_debug"`
	IgnoreSAS  bool `json:"ignore_sas"`
	WebPricing bool `json:"web_pricing"`

	// RulesExecutionRange bounds which processor rules run.
	RulesExecutionRange RulesRange `json:"rules_execution_range"`
}

// payloadConfig holds the payload configuration.
type payloadConfig struct {
	isDebug    bool
	ignoreSAS  bool
	webPricing bool
	rules      RulesRange
}

func defaultConfig() payloadConfig {
	return payloadConfig{
		isDebug:    true,
		ignoreSAS:  true,
		webPricing: true,
		rules:      RulesRange{Start: defaultRulesRangeStart, Stop: defaultRulesRangeStop},
	}
}

// PayloadOption is a functional option for configuring a payload.
type PayloadOption func(*payloadConfig)

// WithDebug sets the processor debug flag. Default true.
func WithDebug(debug bool) PayloadOption {
	return func(c *payloadConfig) {
		c.isDebug = debug
	}
}

// WithIgnoreSAS sets the ignore-SAS flag. Default true.
func WithIgnoreSAS(ignore bool) PayloadOption {
	return func(c *payloadConfig) {
		c.ignoreSAS = ignore
	}
}

// WithWebPricing sets the web pricing flag. Default true.
func WithWebPricing(web bool) PayloadOption {
	return func(c *payloadConfig) {
		c.webPricing = web
	}
}

// WithRulesRange sets the rules execution range. Default 0-29.
func WithRulesRange(start, stop int) PayloadOption {
	return func(c *payloadConfig) {
		c.rules = RulesRange{Start: start, Stop: stop}
	}
}

// NewPayload serializes the claim and wraps it in a submission payload
// with a fresh message id.
func NewPayload(m *claim.Message, opts ...PayloadOption) (*Payload, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	wire, err := m.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serializing claim: %w", err)
	}

	return &Payload{
		MessageID:           uuid.NewString(),
		Transaction:         base64.StdEncoding.EncodeToString([]byte(wire)),
		IsDebug:             cfg.isDebug,
		IgnoreSAS:           cfg.ignoreSAS,
		WebPricing:          cfg.webPricing,
		RulesExecutionRange: cfg.rules,
	}, nil
}

// DecodeTransaction unwraps a payload's base64 transaction back into a
// claim message. Useful for auditing echoed transactions.
func DecodeTransaction(p *Payload) (*claim.Message, error) {
	wire, err := base64.StdEncoding.DecodeString(p.Transaction)
	if err != nil {
		return nil, fmt.Errorf("decoding transaction: %w", err)
	}
	return claim.FromString(string(wire))
}
