// Package shoe owns the ordered sequence of undealt cards dealt from during
// a blackjack session: building, shuffling, drawing, penetration tracking,
// and reshuffle.
package shoe

import (
	"errors"
	"fmt"
	"math/rand"

	"blackjack-trainer/card"
)

// ErrExhausted is returned by Draw when a deterministic (preset-sequence)
// shoe runs out of cards. A random shoe never returns it: it silently
// rebuilds instead.
var ErrExhausted = errors.New("shoe: exhausted")

// Shoe is the ordered stack of undealt cards for one table. It is owned
// exclusively by whichever Round Engine or Trainer created it.
type Shoe struct {
	cards       []card.Card
	capacity    int
	numDecks    int
	penetration float64
	dealt       int

	deterministic bool
	preset        []card.Card

	rng *rand.Rand
}

// New builds a shoe of numDecks standard 52-card decks, shuffled, with a
// reshuffle mandated once penetration (fraction of capacity dealt) is
// reached. numDecks must be in [1,8]; penetration must be in [0.1,1.0].
func New(numDecks int, penetration float64) (*Shoe, error) {
	if numDecks < 1 || numDecks > 8 {
		return nil, fmt.Errorf("shoe: numDecks must be in [1,8], got %d", numDecks)
	}
	if penetration < 0.1 || penetration > 1.0 {
		return nil, fmt.Errorf("shoe: penetration must be in [0.1,1.0], got %v", penetration)
	}
	s := &Shoe{
		capacity:    numDecks * 52,
		numDecks:    numDecks,
		penetration: penetration,
		rng:         rand.New(rand.NewSource(rand.Int63())),
	}
	s.rebuildAndShuffleLocked()
	return s, nil
}

// NewDeterministic builds a shoe from a fixed, caller-supplied card
// sequence, consumed front-to-back. Drawing past the end of preset is an
// error (ErrExhausted) rather than a silent rebuild — this is the test seam
// spec.md §4.1 requires.
func NewDeterministic(preset []card.Card) *Shoe {
	cards := make([]card.Card, len(preset))
	copy(cards, preset)
	return &Shoe{
		cards:         cards,
		capacity:      len(preset),
		penetration:   1.0,
		deterministic: true,
		preset:        preset,
	}
}

// Draw removes and returns the next card from the shoe. A random shoe that
// is empty rebuilds and reshuffles before drawing (resetting its own dealt
// counter — callers that must reset an accompanying Counter on rebuild
// should check NeedsReshuffle themselves before drawing, since Draw's silent
// rebuild happens only on hard exhaustion, a narrower condition).
func (s *Shoe) Draw() (card.Card, error) {
	if len(s.cards) == 0 {
		if s.deterministic {
			return card.Card{}, ErrExhausted
		}
		s.rebuildAndShuffleLocked()
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	s.dealt++
	return c, nil
}

// Remaining is the count of undealt cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// DecksRemaining estimates decks left as remaining/52.
func (s *Shoe) DecksRemaining() float64 {
	return float64(s.Remaining()) / 52.0
}

// NeedsReshuffle reports whether cards dealt this shoe have reached
// capacity*penetration. A deterministic shoe always reports false.
func (s *Shoe) NeedsReshuffle() bool {
	if s.deterministic {
		return false
	}
	return float64(s.dealt) >= float64(s.capacity)*s.penetration
}

// RebuildAndShuffle rebuilds a fresh numDecks shoe and reshuffles it,
// resetting the dealt counter. Deterministic shoes reset back to their
// original preset sequence instead of building a random deck, so test code
// that wants a reshuffle mid-scenario gets the same fixture back.
func (s *Shoe) RebuildAndShuffle() {
	if s.deterministic {
		s.cards = append([]card.Card{}, s.preset...)
		s.dealt = 0
		return
	}
	s.rebuildAndShuffleLocked()
}

func (s *Shoe) rebuildAndShuffleLocked() {
	cards := make([]card.Card, 0, s.capacity)
	for n := 0; n < s.numDecks; n++ {
		for _, suit := range card.Suits {
			for _, rank := range card.Ranks {
				cards = append(cards, card.New(rank, suit))
			}
		}
	}
	s.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	s.cards = cards
	s.dealt = 0
}
