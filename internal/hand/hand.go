// Package hand implements pure functions and the value type over an ordered
// card sequence that the round engine deals out to a player or dealer.
package hand

import (
	"strings"

	"blackjack-trainer/card"

	"github.com/google/uuid"
)

// Outcome tags the terminal result of a resolved hand.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeBlackjack
	OutcomeWin
	OutcomePush
	OutcomeLose
	OutcomeBust
	OutcomeSurrender
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeLose:
		return "lose"
	case OutcomeBust:
		return "bust"
	case OutcomeSurrender:
		return "surrender"
	default:
		return "none"
	}
}

// Hand is an ordered sequence of cards plus the betting/resolution state
// spec.md §3 attaches to it. It is created at bet placement (or on split)
// and discarded at round end.
type Hand struct {
	ID uuid.UUID

	Cards []card.Card
	Bet   int64

	IsDoubled    bool
	IsSplitChild bool
	Resolved     bool
	IsActive     bool
	HadAction    bool // true once any action beyond the initial deal has been taken

	Outcome Outcome
}

// New creates an empty, active hand with the given bet.
func New(bet int64) *Hand {
	return &Hand{ID: uuid.New(), Bet: bet, IsActive: true}
}

// Add appends cards to the hand in dealt order.
func (h *Hand) Add(cards ...card.Card) {
	h.Cards = append(h.Cards, cards...)
}

// BestTotalAndSoft returns the best total not exceeding 21 when possible,
// and whether that total counts an Ace as 11 ("soft"). An Ace is demoted
// from 11 to 1 (i.e. the running total drops by 10) one at a time, only as
// needed to stay at or under 21, stopping as soon as the total is ≤21.
func BestTotalAndSoft(cards []card.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}
	softAces := aces
	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces > 0 && total <= 21
}

// BestTotalAndSoft is the corresponding method on a Hand.
func (h *Hand) BestTotalAndSoft() (int, bool) {
	return BestTotalAndSoft(h.Cards)
}

// Total is a convenience wrapper returning just the best total.
func (h *Hand) Total() int {
	total, _ := h.BestTotalAndSoft()
	return total
}

// IsSoft reports whether the hand currently counts an Ace as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.BestTotalAndSoft()
	return soft
}

// IsBust reports whether the hand's best total exceeds 21.
func IsBust(cards []card.Card) bool {
	total, _ := BestTotalAndSoft(cards)
	return total > 21
}

// IsBust is the corresponding method on a Hand.
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsBlackjack reports a two-card natural 21 that did not originate from a
// split (spec.md §3: "is_blackjack iff exactly two cards and best_total=21
// and the hand did not originate from a split").
func (h *Hand) IsBlackjack() bool {
	if h.IsSplitChild || len(h.Cards) != 2 {
		return false
	}
	total, _ := h.BestTotalAndSoft()
	return total == 21
}

// CanSplit reports whether the hand is exactly two cards of a splittable
// pair. byValue switches the comparison from identical rank to identical
// base value (GameConfig.AllowSplitByValue).
func (h *Hand) CanSplit(byValue bool) bool {
	if len(h.Cards) != 2 {
		return false
	}
	a, b := h.Cards[0], h.Cards[1]
	if byValue {
		return a.BaseValue() == b.BaseValue()
	}
	return a.Rank == b.Rank
}

// Format renders the hand's cards space-separated, for logs and tests.
func (h *Hand) Format() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
