package trainer

import (
	"errors"

	"blackjack-trainer/internal/shoe"
)

// Error kinds, mirroring internal/blackjack/errors.go's pattern.
var (
	// ErrInvalidConfig is returned by New when Config fails validation.
	ErrInvalidConfig = errors.New("trainer: invalid config")

	// ErrExhausted surfaces only from a deterministic test-mode shoe; see
	// internal/shoe. It is the shoe's own sentinel, so NextRound's error
	// matches it under errors.Is.
	ErrExhausted = shoe.ErrExhausted
)
