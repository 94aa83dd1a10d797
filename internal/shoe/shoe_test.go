package shoe

import (
	"testing"

	"blackjack-trainer/card"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsFullShoe(t *testing.T) {
	s, err := New(6, 0.75)
	require.NoError(t, err)
	require.Equal(t, 6*52, s.Remaining())
}

func TestNewRejectsOutOfRangeParams(t *testing.T) {
	_, err := New(0, 0.5)
	require.Error(t, err)
	_, err = New(9, 0.5)
	require.Error(t, err)
	_, err = New(6, 0.05)
	require.Error(t, err)
	_, err = New(6, 1.5)
	require.Error(t, err)
}

func TestDrawConservesCardCount(t *testing.T) {
	s, err := New(1, 1.0)
	require.NoError(t, err)
	initial := s.Remaining()
	drawn := 0
	for i := 0; i < 10; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
		drawn++
	}
	require.Equal(t, initial, s.Remaining()+drawn)
}

func TestDeterministicShoeExhaustsWithError(t *testing.T) {
	preset := []card.Card{card.New(card.Ace, card.Hearts), card.New(card.Seven, card.Clubs)}
	s := NewDeterministic(preset)
	_, err := s.Draw()
	require.NoError(t, err)
	_, err = s.Draw()
	require.NoError(t, err)
	_, err = s.Draw()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestRandomShoeRebuildsSilentlyOnExhaustion(t *testing.T) {
	s, err := New(1, 1.0)
	require.NoError(t, err)
	for i := 0; i < 52; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
	}
	require.Equal(t, 0, s.Remaining())
	c, err := s.Draw()
	require.NoError(t, err)
	require.NotEqual(t, card.Card{}, c)
	require.Equal(t, 51, s.Remaining())
}

func TestNeedsReshuffleAtPenetration(t *testing.T) {
	s, err := New(1, 0.5)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
		require.False(t, s.NeedsReshuffle())
	}
	_, err = s.Draw()
	require.NoError(t, err)
	require.True(t, s.NeedsReshuffle())
}

func TestRebuildAndShuffleResetsDealtCounter(t *testing.T) {
	s, err := New(1, 0.5)
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		_, _ = s.Draw()
	}
	require.True(t, s.NeedsReshuffle())
	s.RebuildAndShuffle()
	require.False(t, s.NeedsReshuffle())
	require.Equal(t, 52, s.Remaining())
}

func TestDeterministicDecksRemaining(t *testing.T) {
	preset := make([]card.Card, 0, 52)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			preset = append(preset, card.New(rank, suit))
		}
	}
	s := NewDeterministic(preset)
	require.InDelta(t, 1.0, s.DecksRemaining(), 0.001)
}
