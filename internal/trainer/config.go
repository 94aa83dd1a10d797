package trainer

import (
	"fmt"

	"blackjack-trainer/internal/history"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DrillType selects how many cards the trainer deals per round and what
// the collaborator is expected to count: a single card, a two-card hand,
// or a full four-card opening round.
type DrillType uint8

const (
	DrillSingleCard DrillType = iota
	DrillHand
	DrillRound
)

func (d DrillType) String() string {
	switch d {
	case DrillSingleCard:
		return "single_card"
	case DrillHand:
		return "hand"
	case DrillRound:
		return "round"
	default:
		return "unknown"
	}
}

// defaultCardsPerRound is spec.md §6's "1/2/4 for the three drill types
// respectively."
func (d DrillType) defaultCardsPerRound() int {
	switch d {
	case DrillHand:
		return 2
	case DrillRound:
		return 4
	default:
		return 1
	}
}

// trainerPenetration is the Trainer's own fixed high-penetration default:
// spec.md §4.6 says the Trainer "is not constrained by table penetration
// rules," so it isn't a configurable field the way GameConfig.Penetration
// is — it deals nearly the whole shoe before reshuffling.
const trainerPenetration = 0.95

// Config is the validated, immutable parameter bundle for one Trainer,
// spec.md §6's CountingTrainerConfig.
type Config struct {
	NumDecks int

	DrillType DrillType
	// CardsPerRound defaults to DrillType.defaultCardsPerRound() when zero.
	CardsPerRound int

	AskTrueCount bool

	// TimeLimitSeconds is optional; 0 disables the time limit entirely.
	TimeLimitSeconds int

	ShowHistory bool

	// Logger is optional and nil-safe (ambient stack, SPEC_FULL §2).
	Logger *charmlog.Logger

	// Clock is optional; defaults to the real wall clock. Tests inject
	// quartz.NewMock for deterministic time-limit scoring.
	Clock quartz.Clock

	// HistoryCapacity bounds the ShowHistory recorder's retained rounds.
	// Ignored when ShowHistory is false. Defaults to 20.
	HistoryCapacity int
}

// Validate enforces spec.md §6's construction-time bounds.
func (c Config) Validate() error {
	if c.NumDecks < 1 || c.NumDecks > 8 {
		return fmt.Errorf("%w: NumDecks must be in [1,8], got %d", ErrInvalidConfig, c.NumDecks)
	}
	if c.DrillType != DrillSingleCard && c.DrillType != DrillHand && c.DrillType != DrillRound {
		return fmt.Errorf("%w: unknown DrillType %d", ErrInvalidConfig, c.DrillType)
	}
	if c.CardsPerRound < 0 {
		return fmt.Errorf("%w: CardsPerRound must be >= 0 (0 takes the drill-type default)", ErrInvalidConfig)
	}
	if c.TimeLimitSeconds < 0 {
		return fmt.Errorf("%w: TimeLimitSeconds must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func (c Config) resolved() Config {
	if c.CardsPerRound == 0 {
		c.CardsPerRound = c.DrillType.defaultCardsPerRound()
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	if c.HistoryCapacity <= 0 {
		c.HistoryCapacity = 20
	}
	return c
}

func (c Config) newHistoryRecorder() *history.Recorder {
	if !c.ShowHistory {
		return nil
	}
	return history.NewRecorder(c.HistoryCapacity)
}
