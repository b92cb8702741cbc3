package claim

import (
	"fmt"
	"os"
)

// ParseFile reads a file containing EMI wire text and parses it with the
// default parser configuration.
func ParseFile(path string) (*Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading claim file: %w", err)
	}

	m, err := FromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing claim file %s: %w", path, err)
	}

	return m, nil
}
