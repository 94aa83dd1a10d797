package blackjack

// Phase is one node of the round state machine graph from spec.md §4.5:
//
//	BETTING -> DEALING -> (INSURANCE_OFFER ->)? PLAYER_TURN -> DEALER_TURN -> ROUND_OVER -> BETTING
//	                  \_______________________________________________________/  (early resolution on naturals)
type Phase uint8

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhaseInsuranceOffer
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhaseInsuranceOffer:
		return "insurance_offer"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}
