package checkout

import (
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

// Order number format: "EM-" followed by a random digit code. The
// number only needs to be unique enough for display; there is no
// backend reconciliation.
const (
	orderNumberPrefix = "EM-"
	orderCodeAlphabet = "0123456789"
	orderCodeLength   = 12
)

// NewOrderNumberGenerator returns a function producing display order
// numbers.
func NewOrderNumberGenerator() (func() string, error) {
	gen, err := nanoid.CustomASCII(orderCodeAlphabet, orderCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to build order code generator: %w", err)
	}
	return func() string {
		return orderNumberPrefix + gen()
	}, nil
}
