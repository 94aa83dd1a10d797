package strategy

import (
	"blackjack-trainer/card"
	"blackjack-trainer/internal/action"
)

// cellCode is the conditional-code vocabulary from spec.md §4.4: plain
// actions, plus the five conditional codes {D/H, D/S, R/H, R/S, R/P} that
// resolve to their first letter if the governing capability is allowed,
// otherwise their second. Consolidating every cell into one of these codes
// (rather than scattering if/else ladders per cell) is the re-architecture
// spec.md §9 calls for.
type cellCode uint8

const (
	codeH  cellCode = iota // Hit
	codeS                  // Stand
	codeP                  // Split (only reachable once CanSplit already gated the lookup)
	codeDH                 // Double if allowed, else Hit
	codeDS                 // Double if allowed, else Stand
	codeRH                 // Surrender if allowed, else Hit
	codeRS                 // Surrender if allowed, else Stand
	codeRP                 // Surrender if allowed, else Split
)

func resolveCell(code cellCode, caps Capabilities) action.Action {
	switch code {
	case codeH:
		return action.Hit
	case codeS:
		return action.Stand
	case codeP:
		return action.Split
	case codeDH:
		if caps.CanDouble {
			return action.Double
		}
		return action.Hit
	case codeDS:
		if caps.CanDouble {
			return action.Double
		}
		return action.Stand
	case codeRH:
		if caps.CanSurrender {
			return action.Surrender
		}
		return action.Hit
	case codeRS:
		if caps.CanSurrender {
			return action.Surrender
		}
		return action.Stand
	case codeRP:
		if caps.CanSurrender {
			return action.Surrender
		}
		return action.Split
	default:
		return action.Hit
	}
}

// dealerCols indexes every table's per-dealer-upcard row: 2..10 then 11
// (Ace), nine columns in total.
var dealerCols = [9]int{2, 3, 4, 5, 6, 7, 8, 9, 10}

func dealerColIndex(dealerUp int) int {
	if dealerUp == 11 {
		return 8
	}
	return dealerUp - 2
}

// hardTable maps hard total (5..20) to a 9-wide row of cellCodes keyed by
// dealerColIndex. Totals outside [5,20] fall back to spec.md's default:
// stand at >=17, else hit.
var hardTable = map[int][9]cellCode{
	5:  {codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH},
	6:  {codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH},
	7:  {codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH},
	8:  {codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH, codeH},
	9:  {codeH, codeDH, codeDH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	10: {codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeH},
	11: {codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeH},
	12: {codeH, codeH, codeS, codeS, codeS, codeH, codeH, codeH, codeH},
	13: {codeS, codeS, codeS, codeS, codeS, codeH, codeH, codeH, codeH},
	14: {codeS, codeS, codeS, codeS, codeS, codeH, codeH, codeH, codeH},
	15: {codeS, codeS, codeS, codeS, codeS, codeH, codeH, codeRH, codeH},
	16: {codeS, codeS, codeS, codeS, codeS, codeH, codeRH, codeRH, codeRH},
	17: {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
	18: {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
	19: {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
	20: {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
}

// softTable maps soft total (13..20, i.e. Ace+2..Ace+9) to a dealerCols row.
var softTable = map[int][9]cellCode{
	13: {codeH, codeH, codeH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	14: {codeH, codeH, codeH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	15: {codeH, codeH, codeDH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	16: {codeH, codeH, codeDH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	17: {codeH, codeDH, codeDH, codeDH, codeDH, codeH, codeH, codeH, codeH},
	18: {codeS, codeDS, codeDS, codeDS, codeDS, codeS, codeS, codeH, codeH},
	19: {codeS, codeS, codeS, codeS, codeDS, codeS, codeS, codeS, codeS},
	20: {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
}

// pairsTable maps pair rank (card.Two..card.Nine, card.Ten, card.Ace) to a
// dealerCols row. card.Ten stands in for any 10-valued pair.
var pairsTable = map[card.Rank][9]cellCode{
	card.Ace:   {codeP, codeP, codeP, codeP, codeP, codeP, codeP, codeP, codeP},
	card.Ten:   {codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS, codeS},
	card.Nine:  {codeP, codeP, codeP, codeP, codeP, codeS, codeP, codeP, codeS},
	card.Eight: {codeP, codeP, codeP, codeP, codeP, codeP, codeP, codeP, codeRP},
	card.Seven: {codeP, codeP, codeP, codeP, codeP, codeP, codeH, codeH, codeH},
	card.Six:   {codeP, codeP, codeP, codeP, codeP, codeH, codeH, codeH, codeH},
	card.Five:  {codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeDH, codeH, codeH},
	card.Four:  {codeH, codeH, codeH, codeP, codeP, codeH, codeH, codeH, codeH},
	card.Three: {codeP, codeP, codeP, codeP, codeP, codeP, codeH, codeH, codeH},
	card.Two:   {codeP, codeP, codeP, codeP, codeP, codeP, codeH, codeH, codeH},
}

func lookupHard(total, dealerUp int, caps Capabilities) Recommendation {
	row, ok := hardTable[total]
	if !ok {
		act := action.Hit
		if total >= 17 {
			act = action.Stand
		}
		return Recommendation{Action: act, TableUsed: "hard"}
	}
	return Recommendation{Action: resolveCell(row[dealerColIndex(dealerUp)], caps), TableUsed: "hard"}
}

func lookupSoft(total, dealerUp int, caps Capabilities) Recommendation {
	row, ok := softTable[total]
	if !ok {
		act := action.Hit
		if total >= 19 {
			act = action.Stand
		}
		return Recommendation{Action: act, TableUsed: "soft"}
	}
	return Recommendation{Action: resolveCell(row[dealerColIndex(dealerUp)], caps), TableUsed: "soft"}
}

func lookupPairs(rank card.Rank, dealerUp int, caps Capabilities) Recommendation {
	row, ok := pairsTable[rank]
	if !ok {
		return lookupHard(rank.BaseValue()*2, dealerUp, caps)
	}
	return Recommendation{Action: resolveCell(row[dealerColIndex(dealerUp)], caps), TableUsed: "pairs"}
}
