// Package history records a bounded, append-only audit trail of recent
// rounds for collaborators and tests (SPEC_FULL.md §4.5/§4.6 expansion).
// Adapted from the teacher's replay package (replay/types.go,
// replay/wire.go): same append-only, sequenced event-list shape, without
// the protobuf-backed ReplayEvent.Value or any file/wire persistence -- this
// is an in-memory recorder, not a save format (spec.md Non-goals exclude a
// persistence format).
package history

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// EventKind tags one entry in a round's event list.
type EventKind uint8

const (
	EventPhase EventKind = iota
	EventAction
	EventOutcome
)

func (k EventKind) String() string {
	switch k {
	case EventPhase:
		return "phase"
	case EventAction:
		return "action"
	case EventOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event is one append-only record: a phase transition, a player/drill
// action, or a terminal outcome. Seq is monotonic within one Round.
type Event struct {
	Seq    int
	Kind   EventKind
	Detail string
}

// Round is one completed round's (or drill's) event list, keyed by a
// monotonically increasing round number.
type Round struct {
	Number int
	Events []Event
}

// Recorder is a bounded, read-only-to-collaborators audit trail of the most
// recent rounds. Bounded by an LRU cache (capacity = the window size), so
// old rounds fall off rather than growing without limit across a long
// session.
type Recorder struct {
	cache     *lru.Cache[int, *Round]
	nextRound int
	current   *Round
	nextSeq   int
}

// NewRecorder builds a Recorder retaining up to capacity most-recent
// rounds. capacity must be >= 1.
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	c, _ := lru.New[int, *Round](capacity)
	return &Recorder{cache: c}
}

// Begin starts a new round's event list. Any previously-begun round that
// was never closed with End is discarded.
func (r *Recorder) Begin() {
	r.current = &Round{Number: r.nextRound}
	r.nextRound++
	r.nextSeq = 0
}

func (r *Recorder) record(kind EventKind, detail string) {
	if r.current == nil {
		return
	}
	r.current.Events = append(r.current.Events, Event{Seq: r.nextSeq, Kind: kind, Detail: detail})
	r.nextSeq++
}

// Phase records a phase transition.
func (r *Recorder) Phase(detail string) { r.record(EventPhase, detail) }

// Action records a player or trainer-drill action.
func (r *Recorder) Action(detail string) { r.record(EventAction, detail) }

// Outcome records a terminal outcome or payout. The completeness property
// (SPEC_FULL §8) requires this be the last event recorded before End.
func (r *Recorder) Outcome(detail string) { r.record(EventOutcome, detail) }

// End closes the current round's event list and files it into the bounded
// window, keyed by its round number.
func (r *Recorder) End() {
	if r.current == nil {
		return
	}
	r.cache.Add(r.current.Number, r.current)
	r.current = nil
}

// Round returns the recorded event list for round n, if it is still within
// the bounded window.
func (r *Recorder) Round(n int) (*Round, bool) {
	return r.cache.Peek(n)
}

// Recent returns up to n of the most-recently-completed rounds, oldest
// first. n <= 0 returns every round still in the window.
func (r *Recorder) Recent(n int) []*Round {
	keys := r.cache.Keys()
	if n > 0 && len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	out := make([]*Round, 0, len(keys))
	for _, k := range keys {
		if round, ok := r.cache.Peek(k); ok {
			out = append(out, round)
		}
	}
	return out
}
