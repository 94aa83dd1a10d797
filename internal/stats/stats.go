// Package stats implements the two passive aggregators spec.md §4.7
// describes: per-round table stats, and per-drill trainer stats. Neither
// aggregator drives behavior; both are fed by their respective engines and
// read by collaborators.
package stats

import "blackjack-trainer/internal/hand"

// RoundStats aggregates outcomes across rounds played by one Round Engine
// session.
type RoundStats struct {
	HandsPlayed int
	HandsWon    int
	HandsLost   int
	HandsPushed int

	Blackjacks int
	Busts      int

	DoublesWon  int
	DoublesLost int
	Splits      int

	InsuranceTaken int
	InsuranceWon   int

	TotalWagered int64
	TotalWon     int64
	TotalLost    int64

	PeakBankroll   int64
	TroughBankroll int64
	initialized    bool
}

// RecordHand folds one resolved hand's outcome into the aggregate. wager is
// the hand's final bet (post-double, if doubled).
func (s *RoundStats) RecordHand(outcome hand.Outcome, wager int64, wasDoubled bool, profit int64) {
	s.HandsPlayed++
	s.TotalWagered += wager

	switch outcome {
	case hand.OutcomeBlackjack:
		s.Blackjacks++
		s.HandsWon++
		s.TotalWon += profit
	case hand.OutcomeWin:
		s.HandsWon++
		s.TotalWon += profit
		if wasDoubled {
			s.DoublesWon++
		}
	case hand.OutcomePush:
		s.HandsPushed++
	case hand.OutcomeBust:
		s.Busts++
		s.HandsLost++
		s.TotalLost += wager
		if wasDoubled {
			s.DoublesLost++
		}
	case hand.OutcomeLose:
		s.HandsLost++
		s.TotalLost += wager
		if wasDoubled {
			s.DoublesLost++
		}
	case hand.OutcomeSurrender:
		s.HandsLost++
		s.TotalLost += wager / 2
	}
}

// RecordSplit counts one split event (not per resulting hand).
func (s *RoundStats) RecordSplit() { s.Splits++ }

// RecordInsurance counts an insurance stake taken, and whether it paid out.
func (s *RoundStats) RecordInsurance(won bool) {
	s.InsuranceTaken++
	if won {
		s.InsuranceWon++
	}
}

// ObserveBankroll updates the peak/trough watermarks.
func (s *RoundStats) ObserveBankroll(bankroll int64) {
	if !s.initialized {
		s.PeakBankroll = bankroll
		s.TroughBankroll = bankroll
		s.initialized = true
		return
	}
	if bankroll > s.PeakBankroll {
		s.PeakBankroll = bankroll
	}
	if bankroll < s.TroughBankroll {
		s.TroughBankroll = bankroll
	}
}

// TrainerStats aggregates counting-drill attempts for one Trainer session.
type TrainerStats struct {
	Attempts      int
	RCCorrect     int
	TCCorrect     int
	CurrentStreak int
	BestStreak    int
}

// RecordAttempt folds one drill round's scoring into the aggregate.
// buildsStreak is false for a timed-out answer (SPEC_FULL §4.6): the round
// still counts toward Attempts/RCCorrect/TCCorrect, but it neither extends
// nor breaks the current streak.
func (s *TrainerStats) RecordAttempt(rcCorrect bool, tcCorrect *bool, buildsStreak bool) {
	s.Attempts++
	if rcCorrect {
		s.RCCorrect++
	}
	if tcCorrect != nil && *tcCorrect {
		s.TCCorrect++
	}
	if !buildsStreak {
		return
	}
	if rcCorrect {
		s.CurrentStreak++
		if s.CurrentStreak > s.BestStreak {
			s.BestStreak = s.CurrentStreak
		}
	} else {
		s.CurrentStreak = 0
	}
}
