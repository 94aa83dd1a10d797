// Package trainer implements the counting-drill subsystem: deal N cards,
// track the expected running/true count, accept a guess, score it.
// Independent of the round engine (spec.md §2: "The Trainer shares only
// Shoe and Counter abstractions"), grounded the same way internal/blackjack
// is on holdem/game.go's constructor/validate shape, scaled down to the
// Trainer's much smaller state machine. Unlike the Engine, a Trainer carries
// no mutex and is not safe for concurrent use.
package trainer

import (
	"fmt"
	"math"
	"time"

	"blackjack-trainer/card"
	"blackjack-trainer/internal/counter"
	"blackjack-trainer/internal/history"
	"blackjack-trainer/internal/shoe"
	"blackjack-trainer/internal/stats"
)

// Feedback is submit_guess's return value, spec.md §4.6.
type Feedback struct {
	IsCorrectRC bool
	ExpectedRC  int

	// IsCorrectTC is nil when Config.AskTrueCount is false or no tcGuess
	// was supplied.
	IsCorrectTC *bool
	ExpectedTC  float64

	DeltaPerCard   string
	DecksRemaining float64

	// TimedOut is true when Config.TimeLimitSeconds is set and exceeded;
	// the guess is still scored for accuracy but does not extend the
	// streak (SPEC_FULL §4.6).
	TimedOut bool
}

// Trainer runs one counting-drill session against its own Shoe and Counter.
type Trainer struct {
	cfg     Config
	shoe    *shoe.Shoe
	counter *counter.Counter
	stats   stats.TrainerStats
	history *history.Recorder

	pending    []card.Card
	expectedRC int
	dealtAt    time.Time
	active     bool
}

// New validates cfg and starts a fresh Trainer with its own random shoe at
// the Trainer's fixed high penetration, per spec.md §4.6's start(config).
func New(cfg Config) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.resolved()
	sh, err := shoe.New(cfg.NumDecks, trainerPenetration)
	if err != nil {
		return nil, err
	}
	return newWithShoe(cfg, sh), nil
}

// NewWithShoe is the deterministic-shoe test seam, mirroring
// blackjack.NewEngineWithShoe: it validates cfg but takes the shoe as
// given, so tests can inject shoe.NewDeterministic fixtures.
func NewWithShoe(cfg Config, sh *shoe.Shoe) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWithShoe(cfg.resolved(), sh), nil
}

func newWithShoe(cfg Config, sh *shoe.Shoe) *Trainer {
	t := &Trainer{
		cfg:     cfg,
		shoe:    sh,
		counter: counter.New(counter.HiLo),
		history: cfg.newHistoryRecorder(),
	}
	t.logf("trainer constructed: %d deck(s), drill=%s, cards_per_round=%d",
		cfg.NumDecks, cfg.DrillType, cfg.CardsPerRound)
	return t
}

func (t *Trainer) logf(format string, args ...any) {
	if t.cfg.Logger != nil {
		t.cfg.Logger.Infof(format, args...)
	}
}

// NextRound deals cfg.CardsPerRound cards and returns them, computing (but
// not yet committing) the expected running count. The running count only
// advances once SubmitGuess is called — see its doc comment.
func (t *Trainer) NextRound() ([]card.Card, error) {
	if t.shoe.NeedsReshuffle() {
		t.shoe.RebuildAndShuffle()
		t.counter.Reset()
		t.logf("trainer shoe reshuffled")
	}
	if t.history != nil {
		t.history.Begin()
	}

	cards := make([]card.Card, 0, t.cfg.CardsPerRound)
	for i := 0; i < t.cfg.CardsPerRound; i++ {
		c, err := t.shoe.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	delta := 0
	for _, c := range cards {
		delta += c.HiLoDelta()
	}

	t.pending = cards
	t.expectedRC = t.counter.RunningCount() + delta
	t.dealtAt = t.cfg.Clock.Now()
	t.active = true

	if t.history != nil {
		t.history.Action(fmt.Sprintf("dealt %v", cards))
	}
	return append([]card.Card{}, cards...), nil
}

// SubmitGuess scores rcGuess (and, if cfg.AskTrueCount, tcGuess) against
// the pending round's expected running count, then advances the running
// count to expected_rc unconditionally — correct or not, per spec.md
// §4.6: "the guess is evaluated against expected_rc; then the running
// count is advanced to expected_rc regardless of the guess." Calling this
// without a pending round (no NextRound call yet) is a no-op that returns
// a zero Feedback.
func (t *Trainer) SubmitGuess(rcGuess int, tcGuess *float64) Feedback {
	if !t.active {
		return Feedback{}
	}

	decksRemaining := t.shoe.DecksRemaining()
	expectedTC := counter.TrueCount(counter.HiLo, t.expectedRC, decksRemaining)

	fb := Feedback{
		ExpectedRC:     t.expectedRC,
		ExpectedTC:     expectedTC,
		DecksRemaining: decksRemaining,
		DeltaPerCard:   explainDeltas(t.pending),
		IsCorrectRC:    rcGuess == t.expectedRC,
	}

	if t.cfg.AskTrueCount && tcGuess != nil {
		ok := math.Abs(*tcGuess-expectedTC) <= 0.5
		fb.IsCorrectTC = &ok
	}

	if t.cfg.TimeLimitSeconds > 0 {
		elapsed := t.cfg.Clock.Since(t.dealtAt)
		if elapsed > time.Duration(t.cfg.TimeLimitSeconds)*time.Second {
			fb.TimedOut = true
		}
	}

	t.stats.RecordAttempt(fb.IsCorrectRC, fb.IsCorrectTC, !fb.TimedOut)

	t.counter.Update(t.pending...)
	if t.history != nil {
		t.history.Outcome(fmt.Sprintf("rc_guess=%d expected=%d correct=%v timed_out=%v",
			rcGuess, t.expectedRC, fb.IsCorrectRC, fb.TimedOut))
		t.history.End()
	}

	t.pending = nil
	t.active = false
	return fb
}

// explainDeltas renders each drawn card's Hi-Lo contribution, e.g.
// "5H:+1 KS:-1", for Feedback.DeltaPerCard.
func explainDeltas(cards []card.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s:%+d", c, c.HiLoDelta())
	}
	return out
}

// Stats returns a copy of the accumulated drill statistics.
func (t *Trainer) Stats() stats.TrainerStats {
	return t.stats
}

// History returns the bounded round-history recorder, or nil when
// cfg.ShowHistory is false.
func (t *Trainer) History() *history.Recorder {
	return t.history
}

// Stop ends the session and returns its final statistics, spec.md §6's
// stop() -> stats.
func (t *Trainer) Stop() stats.TrainerStats {
	return t.stats
}
