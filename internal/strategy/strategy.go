// Package strategy implements the basic-strategy decision tables and the
// optional count-based deviation overlay. Grounded on
// holdem/npc/brain.go's BrainDecider interface (Decide(view) Decision),
// generalized from a probabilistic poker persona to a deterministic
// blackjack lookup: (hand, dealer upcard, capabilities) -> one action.
//
// Open question resolved: the dealer upcard is keyed as the integer 11 for
// an Ace (not 1), matching original_source/blackjack_card_counter/strategy.py.
package strategy

import (
	"blackjack-trainer/card"
	"blackjack-trainer/internal/action"
)

// Capabilities are the action-legality flags the engine computes for the
// active hand; the strategy engine never re-derives these itself.
type Capabilities struct {
	CanDouble    bool
	CanSplit     bool
	CanSurrender bool
	// SplitByValue mirrors GameConfig.AllowSplitByValue: when true, a pair
	// is any two cards of identical base value (e.g. K+Q), not just
	// identical rank.
	SplitByValue bool
}

// HandView is a read-only projection of the player's hand and the dealer's
// upcard, the strategy engine's only inputs besides Capabilities.
type HandView struct {
	PlayerCards []card.Card
	DealerUp    card.Card
	TrueCount   *float64 // nil disables the deviation overlay
}

// Recommendation is the engine's output: one action, plus whether a count
// deviation overrode the basic-strategy cell.
type Recommendation struct {
	Action    action.Action
	Deviated  bool
	TableUsed string // "pairs", "soft", "hard" — for explanations/tests
}

func dealerKey(up card.Card) int {
	if up.IsAce() {
		return 11
	}
	return up.BaseValue()
}

// Recommend looks up the basic-strategy action for view under caps, then
// applies the deviation overlay (if view.TrueCount is non-nil).
func Recommend(view HandView, caps Capabilities) Recommendation {
	dealerUp := dealerKey(view.DealerUp)
	total, soft := handTotalAndSoft(view.PlayerCards)

	var rec Recommendation
	switch {
	case len(view.PlayerCards) == 2 && caps.CanSplit && isPair(view.PlayerCards, caps.SplitByValue):
		rec = lookupPairs(pairRank(view.PlayerCards), dealerUp, caps)
	case soft:
		rec = lookupSoft(total, dealerUp, caps)
	default:
		rec = lookupHard(total, dealerUp, caps)
	}

	if view.TrueCount != nil && rec.TableUsed != "pairs" {
		if dev, ok := findDeviation(view, caps, total, soft); ok && *view.TrueCount >= dev.ThresholdTC {
			rec.Action = dev.Action
			rec.Deviated = true
		}
	}
	return rec
}

// ShouldTakeInsurance reports whether the deviation-aware insurance cell
// recommends taking insurance at the given true count. Basic strategy
// without deviations never recommends insurance (its EV is negative
// against a random true count), so this only ever returns true once a true
// count is supplied and crosses InsuranceThresholdTC.
func ShouldTakeInsurance(trueCount float64) bool {
	return trueCount >= InsuranceThresholdTC
}

func handTotalAndSoft(cards []card.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0 && total <= 21
}

func isPair(cards []card.Card, byValue bool) bool {
	if len(cards) != 2 {
		return false
	}
	if byValue {
		return cards[0].BaseValue() == cards[1].BaseValue()
	}
	return cards[0].Rank == cards[1].Rank
}

// pairRank returns the table row to use for a pair: the shared rank, or
// card.Ten for any 10-valued pair, same-rank or by value (the pairs table
// has a single "10s" row regardless of which face cards made it up).
func pairRank(cards []card.Card) card.Rank {
	if cards[0].BaseValue() == 10 {
		return card.Ten
	}
	return cards[0].Rank
}
