package claim

import (
	"context"
	"fmt"
	"io"

	"github.com/rxkit/ncpdp/emi"
)

// EncodeToWriter serializes the message and writes it to w, checking for
// context cancellation between segments. Suitable for writing to network
// connections where cancellation support matters.
func EncodeToWriter(ctx context.Context, w io.Writer, m *Message) error {
	head, err := m.Header.Serialize()
	if err != nil {
		return fmt.Errorf("serializing header: %w", err)
	}
	if _, err := io.WriteString(w, head); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	sep := string(emi.SegmentSeparator)
	for _, seg := range m.presentSegments() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := io.WriteString(w, sep+seg.Serialize()); err != nil {
			return fmt.Errorf("writing segment %s: %w", seg.ID(), err)
		}
	}

	return nil
}
