package blackjack

import "errors"

// Error kinds, grounded on holdem/errors.go's pattern: a handful of
// sentinel values plus one named string-error type for messages that carry
// their own detail.
var (
	// ErrInvalidConfig is returned by NewEngine when GameConfig fails
	// validation. Fatal to construction, never surfaced mid-session.
	ErrInvalidConfig = errors.New("blackjack: invalid config")

	// ErrExhausted surfaces only in deterministic test-mode shoes (see
	// internal/shoe); it leaves the engine in a well-defined aborted state.
	ErrExhausted = errors.New("blackjack: shoe exhausted")
)

// InvalidActionError names an action rejected for the current phase or
// hand. It never changes engine state; its Error() text is also mirrored
// into the snapshot's message field.
type InvalidActionError string

func (e InvalidActionError) Error() string { return "invalid action: " + string(e) }
