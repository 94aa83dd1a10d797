package strategy

import (
	"blackjack-trainer/internal/action"
)

// InsuranceThresholdTC is the true count at or above which taking insurance
// becomes +EV — basic strategy alone never recommends it. A published
// Illustrious-18-style deviation set uses roughly +3.
const InsuranceThresholdTC = 3.0

type deviationKind uint8

const (
	devHard deviationKind = iota
	devSoft
)

// deviationRule is one (hand-descriptor, dealer upcard) -> {threshold,
// overridden action} cell from spec.md §4.4's deviation overlay. Applied
// iff the current true count is >= ThresholdTC.
type deviationRule struct {
	Kind        deviationKind
	Total       int
	DealerUp    int
	ThresholdTC float64
	Action      action.Action
}

// deviations is a published-style (Illustrious-18-shaped) set of ~18
// cells. Not asserted to be historically exact to any one published chart
// — it exists to exercise the overlay mechanism spec.md §4.4 describes,
// with recognizable, frequently-cited deviation shapes (16v10, 15v10, etc).
var deviations = []deviationRule{
	{Kind: devHard, Total: 16, DealerUp: 10, ThresholdTC: 0, Action: action.Stand},
	{Kind: devHard, Total: 15, DealerUp: 10, ThresholdTC: 4, Action: action.Stand},
	{Kind: devHard, Total: 10, DealerUp: 10, ThresholdTC: 4, Action: action.Double},
	{Kind: devHard, Total: 12, DealerUp: 3, ThresholdTC: 2, Action: action.Stand},
	{Kind: devHard, Total: 12, DealerUp: 2, ThresholdTC: 3, Action: action.Stand},
	{Kind: devHard, Total: 11, DealerUp: 11, ThresholdTC: 1, Action: action.Double},
	{Kind: devHard, Total: 9, DealerUp: 2, ThresholdTC: 1, Action: action.Double},
	{Kind: devHard, Total: 10, DealerUp: 11, ThresholdTC: 4, Action: action.Double},
	{Kind: devHard, Total: 9, DealerUp: 7, ThresholdTC: 3, Action: action.Double},
	{Kind: devHard, Total: 16, DealerUp: 9, ThresholdTC: 5, Action: action.Stand},
	{Kind: devHard, Total: 13, DealerUp: 2, ThresholdTC: -1, Action: action.Stand},
	{Kind: devHard, Total: 12, DealerUp: 4, ThresholdTC: 0, Action: action.Stand},
	{Kind: devHard, Total: 12, DealerUp: 5, ThresholdTC: -2, Action: action.Stand},
	{Kind: devHard, Total: 12, DealerUp: 6, ThresholdTC: -1, Action: action.Stand},
	{Kind: devHard, Total: 13, DealerUp: 3, ThresholdTC: -2, Action: action.Stand},
	{Kind: devHard, Total: 14, DealerUp: 10, ThresholdTC: 3, Action: action.Surrender},
	{Kind: devHard, Total: 15, DealerUp: 9, ThresholdTC: 2, Action: action.Surrender},
	{Kind: devSoft, Total: 19, DealerUp: 6, ThresholdTC: 1, Action: action.Double},
}

// findDeviation returns the first deviation cell matching the current hand
// shape (hard/soft total) and dealer upcard. Pair hands never consult the
// deviation table: Recommend skips the overlay whenever the pairs table
// chose the action, so a split recommendation keeps its basic-strategy
// action untouched.
func findDeviation(view HandView, caps Capabilities, total int, soft bool) (deviationRule, bool) {
	dealerUp := dealerKey(view.DealerUp)
	kind := devHard
	if soft {
		kind = devSoft
	}
	for _, d := range deviations {
		if d.Kind == kind && d.Total == total && d.DealerUp == dealerUp {
			// Surrender deviations require the capability to actually be
			// available; without it we keep the basic-strategy action.
			if d.Action == action.Surrender && !caps.CanSurrender {
				continue
			}
			if d.Action == action.Double && !caps.CanDouble {
				continue
			}
			return d, true
		}
	}
	return deviationRule{}, false
}
