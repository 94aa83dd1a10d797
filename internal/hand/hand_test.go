package hand

import (
	"testing"

	"blackjack-trainer/card"
	"github.com/stretchr/testify/require"
)

func TestBestTotalAndSoftHardHand(t *testing.T) {
	total, soft := BestTotalAndSoft([]card.Card{card.New(card.King, card.Spades), card.New(card.Seven, card.Hearts)})
	require.Equal(t, 17, total)
	require.False(t, soft)
}

func TestBestTotalAndSoftSoftHand(t *testing.T) {
	total, soft := BestTotalAndSoft([]card.Card{card.New(card.Ace, card.Spades), card.New(card.Six, card.Hearts)})
	require.Equal(t, 17, total)
	require.True(t, soft)
}

func TestBestTotalAndSoftAceDemotedOnBust(t *testing.T) {
	total, soft := BestTotalAndSoft([]card.Card{
		card.New(card.Ace, card.Spades), card.New(card.Nine, card.Hearts), card.New(card.Five, card.Clubs),
	})
	require.Equal(t, 15, total)
	require.False(t, soft)
}

func TestBestTotalAndSoftTwoAces(t *testing.T) {
	total, soft := BestTotalAndSoft([]card.Card{
		card.New(card.Ace, card.Spades), card.New(card.Ace, card.Hearts), card.New(card.Nine, card.Clubs),
	})
	require.Equal(t, 21, total)
	require.True(t, soft)
}

func TestSoftMonotonicity(t *testing.T) {
	// Adding a card should never increase the count of Aces counted as 11.
	h := New(100)
	h.Add(card.New(card.Ace, card.Spades), card.New(card.Ace, card.Hearts))
	_, softBefore := h.BestTotalAndSoft()
	require.True(t, softBefore)
	h.Add(card.New(card.King, card.Clubs))
	total, softAfter := h.BestTotalAndSoft()
	require.Equal(t, 12, total)
	require.False(t, softAfter) // both aces demoted (A+A+K = 12 only with both aces as 1)
}

func TestIsBlackjack(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.Ace, card.Spades), card.New(card.King, card.Hearts))
	require.True(t, h.IsBlackjack())
}

func TestIsBlackjackFalseAfterSplit(t *testing.T) {
	h := New(100)
	h.IsSplitChild = true
	h.Add(card.New(card.Ace, card.Spades), card.New(card.King, card.Hearts))
	require.False(t, h.IsBlackjack(), "a split-child 21 is Win, never Blackjack")
}

func TestIsBlackjackFalseWithThreeCards(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.Seven, card.Spades), card.New(card.Seven, card.Hearts), card.New(card.Seven, card.Clubs))
	require.False(t, h.IsBlackjack())
}

func TestCanSplitSameRank(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.Eight, card.Spades), card.New(card.Eight, card.Hearts))
	require.True(t, h.CanSplit(false))
}

func TestCanSplitByValue(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.King, card.Spades), card.New(card.Queen, card.Hearts))
	require.False(t, h.CanSplit(false))
	require.True(t, h.CanSplit(true))
}

func TestIsBust(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.King, card.Spades), card.New(card.Queen, card.Hearts), card.New(card.Two, card.Clubs))
	require.True(t, h.IsBust())
}

func TestFormat(t *testing.T) {
	h := New(100)
	h.Add(card.New(card.Ace, card.Hearts), card.New(card.Ten, card.Spades))
	require.Equal(t, "AH 10S", h.Format())
}
