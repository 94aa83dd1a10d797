package counter

import (
	"testing"

	"blackjack-trainer/card"
	"github.com/stretchr/testify/require"
)

func TestHiLoRunningCount(t *testing.T) {
	c := New(HiLo)
	c.Update(card.New(card.Ace, card.Hearts), card.New(card.Seven, card.Clubs), card.New(card.King, card.Spades), card.New(card.Eight, card.Diamonds))
	require.Equal(t, -2, c.RunningCount())
}

func TestTrueCountFloor(t *testing.T) {
	c := New(HiLo)
	c.Update(card.New(card.Two, card.Hearts))
	// decksRemaining well under the 0.5 floor should still divide by 0.5.
	require.InDelta(t, 2.0, c.TrueCount(0.1), 0.0001)
}

func TestTrueCountNormal(t *testing.T) {
	c := New(HiLo)
	for i := 0; i < 4; i++ {
		c.Update(card.New(card.Two, card.Hearts))
	}
	require.InDelta(t, 2.0, c.TrueCount(2.0), 0.0001)
}

func TestKODeltas(t *testing.T) {
	require.Equal(t, 1, koDelta(card.Seven))
	require.Equal(t, 0, koDelta(card.Eight))
	require.Equal(t, -1, koDelta(card.Ace))
}

func TestKOTrueCountIsUnscaledRunningCount(t *testing.T) {
	c := New(KO)
	c.Update(card.New(card.Two, card.Hearts), card.New(card.Three, card.Clubs))
	require.Equal(t, float64(2), c.TrueCount(1.5))
}

func TestOmegaIIDeltas(t *testing.T) {
	require.Equal(t, 2, omegaIIDelta(card.Four))
	require.Equal(t, 0, omegaIIDelta(card.Ace))
	require.Equal(t, -2, omegaIIDelta(card.King))
}

func TestCountersAreIndependent(t *testing.T) {
	hi := New(HiLo)
	ko := New(KO)
	hi.Update(card.New(card.Two, card.Hearts))
	require.Equal(t, 1, hi.RunningCount())
	require.Equal(t, 0, ko.RunningCount())
}

func TestReset(t *testing.T) {
	c := New(HiLo)
	c.Update(card.New(card.Two, card.Hearts))
	c.Reset()
	require.Equal(t, 0, c.RunningCount())
}
