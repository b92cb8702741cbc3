// Package envelope builds the JSON submission payload that carries a
// serialized claim to a transaction processor.
//
// The wire text is UTF-8 encoded and base64-wrapped into the payload's
// transaction field, alongside a fresh message id and the processor's
// execution flags:
//
//	p, err := envelope.NewPayload(msg)
//	body, err := json.Marshal(p)
//
// DecodeTransaction reverses the wrapping for audit of echoed
// transactions. The HTTP client that posts the payload is out of scope
// here; callers own transport, retries, and the response schema.
package envelope
