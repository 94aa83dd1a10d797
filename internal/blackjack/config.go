package blackjack

import (
	"fmt"

	"blackjack-trainer/internal/counter"
	"blackjack-trainer/internal/history"

	charmlog "github.com/charmbracelet/log"
)

// GameConfig is the validated, immutable parameter bundle for one Engine.
// Grounded on holdem/config.go's Config/validate() pattern.
type GameConfig struct {
	NumDecks          int
	StartingBankroll  int64
	MinBet            int64
	MaxBet            int64
	BlackjackPayout   float64 // e.g. 1.5 for 3:2
	DealerHitsSoft17  bool
	DoubleAfterSplit  bool
	SplitAcesOneCard  bool
	MaxSplits         int
	InsurancePays     float64 // e.g. 2.0 for 2:1
	Penetration       float64
	AllowSplitByValue bool

	// AllowSurrender gates late surrender (SPEC_FULL §4.4). Defaults to
	// false: spec.md treats surrender as optional, config-gated.
	AllowSurrender bool

	// ExtraCounters lets a collaborator run a second counting system (KO or
	// Omega II) alongside the engine's primary Hi-Lo counter (SPEC_FULL
	// §4.3). Optional; nil runs Hi-Lo only.
	ExtraCounters []counter.System

	// Logger is optional and nil-safe; when set, the Engine logs its
	// construction, phase transitions, and shoe reshuffles through it at
	// Info level (ambient stack, grounded on
	// lox-pokerforbots/internal/game.GameEngine's logger field). Rejected
	// actions and shoe errors are not logged; they are reported only through
	// return values and the snapshot's message field.
	Logger *charmlog.Logger

	// History is optional and nil-safe; when set, the Engine appends phase
	// transitions, actions, and outcomes for each round to it (SPEC_FULL.md
	// §4.5's round history recorder, adapted from the teacher's replay
	// package).
	History *history.Recorder
}

// Validate enforces spec.md §8's construction-time bounds. Construction
// failure (ErrInvalidConfig) is fatal to the builder, not the process.
func (c GameConfig) Validate() error {
	if c.NumDecks < 1 || c.NumDecks > 8 {
		return fmt.Errorf("%w: NumDecks must be in [1,8], got %d", ErrInvalidConfig, c.NumDecks)
	}
	if c.StartingBankroll <= 0 {
		return fmt.Errorf("%w: StartingBankroll must be > 0", ErrInvalidConfig)
	}
	if c.MinBet <= 0 {
		return fmt.Errorf("%w: MinBet must be > 0", ErrInvalidConfig)
	}
	if c.MaxBet < c.MinBet {
		return fmt.Errorf("%w: MaxBet must be >= MinBet", ErrInvalidConfig)
	}
	if c.BlackjackPayout <= 0 {
		return fmt.Errorf("%w: BlackjackPayout must be > 0", ErrInvalidConfig)
	}
	if c.MaxSplits < 0 {
		return fmt.Errorf("%w: MaxSplits must be >= 0", ErrInvalidConfig)
	}
	if c.InsurancePays <= 0 {
		return fmt.Errorf("%w: InsurancePays must be > 0", ErrInvalidConfig)
	}
	if c.Penetration < 0.1 || c.Penetration > 1.0 {
		return fmt.Errorf("%w: Penetration must be in [0.1,1.0], got %v", ErrInvalidConfig, c.Penetration)
	}
	return nil
}
