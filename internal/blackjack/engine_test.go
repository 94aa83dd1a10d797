package blackjack

import (
	"testing"

	"blackjack-trainer/card"
	"blackjack-trainer/internal/action"
	"blackjack-trainer/internal/hand"
	"blackjack-trainer/internal/shoe"

	"github.com/stretchr/testify/require"
)

func baseConfig() GameConfig {
	return GameConfig{
		NumDecks:         6,
		StartingBankroll: 1000,
		MinBet:           10,
		MaxBet:           500,
		BlackjackPayout:  1.5,
		DealerHitsSoft17: false,
		SplitAcesOneCard: true,
		MaxSplits:        3,
		InsurancePays:    2.0,
		Penetration:      0.75,
	}
}

func newFixtureEngine(t *testing.T, preset []card.Card, cfg GameConfig) *Engine {
	t.Helper()
	sh := shoe.NewDeterministic(preset)
	e, err := NewEngineWithShoe(cfg, sh)
	require.NoError(t, err)
	return e
}

func c(r card.Rank, s card.Suit) card.Card { return card.New(r, s) }

func TestPlayerBlackjackAgainstNonNaturalDealer(t *testing.T) {
	// A♥, 7♣, K♠, 8♦: player draws a natural (A+K), the dealer's 7+8 isn't
	// one. The early-resolution branch should pay 3:2 and still count all
	// four cards (including the hole) into the running count on reveal.
	preset := []card.Card{
		c(card.Ace, card.Hearts), c(card.Seven, card.Clubs),
		c(card.King, card.Spades), c(card.Eight, card.Diamonds),
	}
	e := newFixtureEngine(t, preset, baseConfig())

	require.True(t, e.StartRound(100))
	snap := e.Snapshot()
	require.Equal(t, "round_over", snap.Phase)
	require.Equal(t, "blackjack", snap.PlayerHands[0].Outcome)
	require.Equal(t, int64(1150), snap.Bankroll)
	require.Equal(t, -2, snap.RunningCount)
}

func TestPlayerBlackjackPaysThreeToTwo(t *testing.T) {
	preset := []card.Card{
		c(card.Ace, card.Hearts), c(card.Seven, card.Clubs),
		c(card.King, card.Spades), c(card.Nine, card.Diamonds),
	}
	e := newFixtureEngine(t, preset, baseConfig())

	require.True(t, e.StartRound(100))
	snap := e.Snapshot()
	require.Equal(t, "round_over", snap.Phase)
	require.Equal(t, "blackjack", snap.PlayerHands[0].Outcome)
	require.Equal(t, int64(1150), snap.Bankroll)
}

func TestDoubleDownPush(t *testing.T) {
	preset := []card.Card{
		c(card.Five, card.Hearts), c(card.Six, card.Clubs),
		c(card.Six, card.Spades), c(card.King, card.Diamonds),
		c(card.Ten, card.Hearts), c(card.Five, card.Spades),
	}
	e := newFixtureEngine(t, preset, baseConfig())

	require.True(t, e.StartRound(100))
	require.Equal(t, "player_turn", e.Snapshot().Phase)
	require.True(t, e.Act(action.Double))

	snap := e.Snapshot()
	require.Equal(t, "round_over", snap.Phase)
	require.Equal(t, int64(200), snap.PlayerHands[0].Bet)
	require.Equal(t, "push", snap.PlayerHands[0].Outcome)
	require.Equal(t, int64(1000), snap.Bankroll)
}

func TestSplitAcesOneCardOnlyNeverBlackjack(t *testing.T) {
	preset := []card.Card{
		c(card.Ace, card.Hearts), c(card.Six, card.Clubs),
		c(card.Ace, card.Spades), c(card.Seven, card.Diamonds),
		c(card.Ten, card.Hearts), c(card.Five, card.Spades), c(card.Ten, card.Diamonds),
	}
	e := newFixtureEngine(t, preset, baseConfig())

	require.True(t, e.StartRound(100))
	require.Contains(t, e.AvailableActions(), action.Split)
	require.True(t, e.Act(action.Split))

	snap := e.Snapshot()
	require.Equal(t, "round_over", snap.Phase)
	require.Len(t, snap.PlayerHands, 2)
	require.Equal(t, 21, snap.PlayerHands[0].Total)
	require.Equal(t, "win", snap.PlayerHands[0].Outcome, "a 21 built from a split is Win, never Blackjack")
	require.Equal(t, 16, snap.PlayerHands[1].Total)
	require.Equal(t, "win", snap.PlayerHands[1].Outcome)
	require.Equal(t, int64(1200), snap.Bankroll)
}

func TestHoleCardCountedOnceAfterInsuranceDeclined(t *testing.T) {
	preset := []card.Card{
		c(card.Five, card.Hearts), c(card.Ace, card.Clubs),
		c(card.Three, card.Spades), c(card.Five, card.Diamonds),
		c(card.Ten, card.Hearts), c(card.Two, card.Clubs),
	}
	e := newFixtureEngine(t, preset, baseConfig())

	require.True(t, e.StartRound(100))
	snap := e.Snapshot()
	require.Equal(t, "insurance_offer", snap.Phase)
	require.Equal(t, 1, snap.RunningCount)
	require.Len(t, snap.DealerCards, 1, "hole card must stay masked before reveal")

	require.True(t, e.TakeInsurance(false))
	snap = e.Snapshot()
	require.Equal(t, "player_turn", snap.Phase)
	require.Equal(t, 2, snap.RunningCount)
	require.True(t, snap.HoleRevealed)
	require.Len(t, snap.DealerCards, 2)

	require.True(t, e.Act(action.Stand))
	snap = e.Snapshot()
	require.Equal(t, "round_over", snap.Phase)
	require.Equal(t, 2, snap.RunningCount, "the hole card must not be counted twice")
	require.Equal(t, "lose", snap.PlayerHands[0].Outcome)
}

func TestInvalidActionReturnsFalseWithoutMutation(t *testing.T) {
	e := newFixtureEngine(t, nil, baseConfig())
	require.False(t, e.Act(action.Hit), "no action is legal before a round starts")
	require.Equal(t, int64(1000), e.Bankroll())
}

func TestStartRoundRejectedMidRound(t *testing.T) {
	preset := []card.Card{
		c(card.Five, card.Hearts), c(card.Seven, card.Clubs),
		c(card.Six, card.Spades), c(card.Eight, card.Diamonds),
	}
	e := newFixtureEngine(t, preset, baseConfig())
	require.True(t, e.StartRound(100))
	require.Equal(t, "player_turn", e.Snapshot().Phase)

	bankrollBefore := e.Bankroll()
	require.False(t, e.StartRound(50))
	require.Equal(t, bankrollBefore, e.Bankroll())
}

func TestActionLegalityAcrossAnOrdinaryRound(t *testing.T) {
	preset := []card.Card{
		c(card.Five, card.Hearts), c(card.Seven, card.Clubs),
		c(card.Six, card.Spades), c(card.Eight, card.Diamonds),
		c(card.Nine, card.Hearts),
	}
	e := newFixtureEngine(t, preset, baseConfig())
	require.True(t, e.StartRound(100))

	acts := e.AvailableActions()
	require.Contains(t, acts, action.Hit)
	require.Contains(t, acts, action.Stand)
	require.True(t, e.Act(action.Hit))

	snap := e.Snapshot()
	require.Equal(t, "player_turn", snap.Phase, "11+9=20 doesn't bust, so the hand still needs a stand")
	require.Equal(t, 20, snap.PlayerHands[0].Total)
	require.NotContains(t, e.AvailableActions(), action.Double, "double is only legal on the first two cards")

	require.True(t, e.Act(action.Stand))
	require.Equal(t, "round_over", e.Snapshot().Phase)
}

func TestNextRoundOnlyFromRoundOver(t *testing.T) {
	e := newFixtureEngine(t, nil, baseConfig())
	require.False(t, e.NextRound(), "next_round is illegal before any round has been played")
}

func TestBankrollConservationAcrossLoseOutcome(t *testing.T) {
	preset := []card.Card{
		c(card.Ten, card.Hearts), c(card.Ten, card.Clubs),
		c(card.Six, card.Spades), c(card.Ten, card.Diamonds),
	}
	e := newFixtureEngine(t, preset, baseConfig())
	require.True(t, e.StartRound(100))
	require.True(t, e.Act(action.Stand))

	snap := e.Snapshot()
	require.Equal(t, "lose", snap.PlayerHands[0].Outcome)
	require.Equal(t, int64(900), snap.Bankroll)
}

func TestSoftHandMonotonicity(t *testing.T) {
	h := hand.New(100)
	h.Add(c(card.Ace, card.Hearts), c(card.Six, card.Clubs))
	_, soft := h.BestTotalAndSoft()
	require.True(t, soft)
	h.Add(c(card.Nine, card.Spades))
	total, soft2 := h.BestTotalAndSoft()
	require.Equal(t, 16, total)
	require.False(t, soft2, "the ace must have been demoted, never re-promoted")
}
