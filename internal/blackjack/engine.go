package blackjack

import (
	"fmt"
	"math"
	"sync"

	"blackjack-trainer/card"
	"blackjack-trainer/internal/action"
	"blackjack-trainer/internal/counter"
	"blackjack-trainer/internal/hand"
	"blackjack-trainer/internal/shoe"
	"blackjack-trainer/internal/stats"
)

// Engine runs one table's worth of rounds against a single shoe. It is safe
// for concurrent use; every exported method takes the engine's mutex for its
// duration, mirroring holdem/game.go's GameEngine.
type Engine struct {
	mu sync.Mutex

	cfg GameConfig

	shoe          *shoe.Shoe
	primaryCount  *counter.Counter
	extraCounters []*counter.Counter

	bankroll int64
	stats    stats.RoundStats

	phase Phase

	playerHands     []*hand.Hand
	activeHandIndex int
	splitCount      int

	dealerCards        []card.Card
	dealerHoleRevealed bool

	insuranceOffered bool
	insuranceBet     int64
	insuranceTaken   bool

	message string
}

// NewEngine validates cfg and builds a fresh Engine with its own shoe and
// counters, bankroll seeded from cfg.StartingBankroll.
func NewEngine(cfg GameConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sh, err := shoe.New(cfg.NumDecks, cfg.Penetration)
	if err != nil {
		return nil, err
	}
	return NewEngineWithShoe(cfg, sh)
}

// NewEngineWithShoe is the deterministic-shoe test seam: it validates cfg
// but takes the shoe as given, so callers can inject shoe.NewDeterministic
// fixtures instead of a random shuffle.
func NewEngineWithShoe(cfg GameConfig, sh *shoe.Shoe) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:          cfg,
		shoe:         sh,
		primaryCount: counter.New(counter.HiLo),
		bankroll:     cfg.StartingBankroll,
		phase:        PhaseBetting,
	}
	for _, sys := range cfg.ExtraCounters {
		e.extraCounters = append(e.extraCounters, counter.New(sys))
	}
	e.logf("engine constructed: %d deck(s), bankroll %d", cfg.NumDecks, cfg.StartingBankroll)
	return e, nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Infof(format, args...)
	}
}

// setPhase transitions the engine to p, logging it and appending the
// transition to the optional history recorder. The round's event list is
// closed by resolveAndPayout, after its outcome events, so Begin/End stay
// paired one-to-one with StartRound/resolution and the outcomes are the last
// events of the round (history's completeness property, SPEC_FULL §8).
func (e *Engine) setPhase(p Phase) {
	e.phase = p
	e.logf("phase -> %s", p)
	if e.cfg.History != nil {
		e.cfg.History.Phase(p.String())
	}
}

// StartRound places a bet and begins a new round from PhaseBetting. It
// returns false (and sets the message field) if the bet is out of bounds,
// bankroll is insufficient, or the engine isn't in PhaseBetting.
func (e *Engine) StartRound(bet int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseBetting {
		e.message = InvalidActionError("start_round is only legal from betting").Error()
		return false
	}
	if bet < e.cfg.MinBet || bet > e.cfg.MaxBet {
		e.message = InvalidActionError("bet out of configured bounds").Error()
		return false
	}
	if bet > e.bankroll {
		e.message = InvalidActionError("insufficient bankroll").Error()
		return false
	}

	if e.shoe.NeedsReshuffle() {
		e.shoe.RebuildAndShuffle()
		e.primaryCount.Reset()
		for _, c := range e.extraCounters {
			c.Reset()
		}
		e.logf("shoe reshuffled at configured penetration")
	}

	e.bankroll -= bet
	e.playerHands = []*hand.Hand{hand.New(bet)}
	e.activeHandIndex = 0
	e.splitCount = 0
	e.dealerCards = nil
	e.dealerHoleRevealed = false
	e.insuranceOffered = false
	e.insuranceBet = 0
	e.insuranceTaken = false
	e.message = ""
	if e.cfg.History != nil {
		e.cfg.History.Begin()
	}
	e.setPhase(PhaseDealing)

	e.dealInitial()
	return true
}

// dealInitial deals the opening four cards, counts the three visible ones,
// and resolves the round's opening branch: insurance offer, an immediate
// natural resolution, or a plain transition to PLAYER_TURN.
func (e *Engine) dealInitial() {
	h := e.playerHands[0]

	p1, _ := e.shoe.Draw()
	up, _ := e.shoe.Draw()
	p2, _ := e.shoe.Draw()
	hole, _ := e.shoe.Draw()

	h.Add(p1, p2)
	e.dealerCards = []card.Card{up, hole}

	e.countCards(p1, up, p2)

	if up.IsAce() {
		e.setPhase(PhaseInsuranceOffer)
		e.insuranceOffered = true
		return
	}

	playerNatural := h.IsBlackjack()
	dealerNatural := dealerHasNatural(e.dealerCards)

	switch {
	case playerNatural && dealerNatural:
		h.Resolved = true
		h.Outcome = hand.OutcomePush
		e.resolveWithoutDealerPlay()
	case playerNatural:
		h.Resolved = true
		h.Outcome = hand.OutcomeBlackjack
		e.resolveWithoutDealerPlay()
	case dealerNatural:
		h.Resolved = true
		h.Outcome = hand.OutcomeLose
		e.resolveWithoutDealerPlay()
	default:
		e.setPhase(PhasePlayerTurn)
	}
}

func dealerHasNatural(cards []card.Card) bool {
	if len(cards) != 2 {
		return false
	}
	total, _ := hand.BestTotalAndSoft(cards)
	return total == 21
}

func (e *Engine) countCards(cards ...card.Card) {
	e.primaryCount.Update(cards...)
	for _, c := range e.extraCounters {
		c.Update(cards...)
	}
}

// TakeInsurance resolves the INSURANCE_OFFER phase. It is a no-op (returning
// false) outside that phase.
func (e *Engine) TakeInsurance(yes bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseInsuranceOffer {
		e.message = InvalidActionError("take_insurance is only legal from insurance_offer").Error()
		return false
	}

	h := e.playerHands[0]
	stake := h.Bet / 2
	if yes && stake > 0 && stake <= e.bankroll {
		e.bankroll -= stake
		e.insuranceBet = stake
		e.insuranceTaken = true
	}

	e.revealHole()

	if dealerHasNatural(e.dealerCards) {
		if e.insuranceTaken {
			won := int64(math.Floor(float64(e.insuranceBet) * e.cfg.InsurancePays))
			e.bankroll += e.insuranceBet + won
			e.stats.RecordInsurance(true)
		}
		if h.IsBlackjack() {
			h.Outcome = hand.OutcomePush
		} else {
			h.Outcome = hand.OutcomeLose
		}
		h.Resolved = true
		e.resolveWithoutDealerPlay()
		return true
	}

	if e.insuranceTaken {
		e.stats.RecordInsurance(false) // stake forfeited: dealer had no natural
	}

	if h.IsBlackjack() {
		h.Resolved = true
		h.Outcome = hand.OutcomeBlackjack
		e.resolveWithoutDealerPlay()
		return true
	}

	e.setPhase(PhasePlayerTurn)
	return true
}

// resolveWithoutDealerPlay settles a round whose outcome is already known at
// deal time or at the insurance decision — a natural on one or both sides —
// without entering a dealer draw loop: the hole card still needs revealing
// and the bet still needs paying out, but no further card changes the
// result. Reachable only from dealInitial and TakeInsurance, never from
// PLAYER_TURN.
func (e *Engine) resolveWithoutDealerPlay() {
	e.revealHole()
	e.setPhase(PhaseRoundOver)
	e.resolveAndPayout()
}

// revealHole flips the dealer's hole card face up and feeds it to the
// counters, exactly once per round. Idempotent on dealerHoleRevealed, which
// is what actually keeps the hole card from contributing twice — the set of
// call sites (TakeInsurance, resolveWithoutDealerPlay, playDealerTurn) is
// secondary to that guard.
func (e *Engine) revealHole() {
	if e.dealerHoleRevealed {
		return
	}
	e.dealerHoleRevealed = true
	if len(e.dealerCards) >= 2 {
		e.countCards(e.dealerCards[1])
	}
}

// activeHand returns the hand currently receiving player actions, or nil
// outside PLAYER_TURN.
func (e *Engine) activeHand() *hand.Hand {
	if e.activeHandIndex < 0 || e.activeHandIndex >= len(e.playerHands) {
		return nil
	}
	return e.playerHands[e.activeHandIndex]
}

// AvailableActions lists the legal actions for the active hand. Empty
// outside PLAYER_TURN.
func (e *Engine) AvailableActions() []action.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.availableActionsLocked()
}

func (e *Engine) availableActionsLocked() []action.Action {
	if e.phase != PhasePlayerTurn {
		return nil
	}
	h := e.activeHand()
	if h == nil {
		return nil
	}
	acts := []action.Action{action.Hit, action.Stand}
	if len(h.Cards) == 2 && e.bankroll >= h.Bet && (!h.IsSplitChild || e.cfg.DoubleAfterSplit) {
		acts = append(acts, action.Double)
	}
	if h.CanSplit(e.cfg.AllowSplitByValue) && e.splitCount < e.cfg.MaxSplits && e.bankroll >= h.Bet {
		acts = append(acts, action.Split)
	}
	if e.cfg.AllowSurrender && len(h.Cards) == 2 && !h.IsSplitChild && !h.HadAction {
		acts = append(acts, action.Surrender)
	}
	return acts
}

func legal(acts []action.Action, a action.Action) bool {
	for _, x := range acts {
		if x == a {
			return true
		}
	}
	return false
}

// Act applies one player decision to the active hand. It returns false (and
// sets the message field) if a is not currently legal.
func (e *Engine) Act(a action.Action) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	acts := e.availableActionsLocked()
	if !legal(acts, a) {
		e.message = InvalidActionError(a.String() + " is not legal now").Error()
		return false
	}
	if e.cfg.History != nil {
		e.cfg.History.Action(a.String())
	}

	h := e.activeHand()
	switch a {
	case action.Hit:
		e.dealTo(h)
		h.HadAction = true
		if h.IsBust() {
			h.Resolved = true
			h.Outcome = hand.OutcomeBust
		}
	case action.Stand:
		h.Resolved = true
		h.HadAction = true
	case action.Double:
		e.bankroll -= h.Bet
		h.Bet *= 2
		e.dealTo(h)
		h.IsDoubled = true
		h.Resolved = true
		h.HadAction = true
		if h.IsBust() {
			h.Outcome = hand.OutcomeBust
		}
	case action.Split:
		h.HadAction = true
		e.split(h)
	case action.Surrender:
		h.Resolved = true
		h.HadAction = true
		h.Outcome = hand.OutcomeSurrender
		e.bankroll += h.Bet - h.Bet/2
	}

	e.advance()
	return true
}

func (e *Engine) dealTo(h *hand.Hand) {
	c, err := e.shoe.Draw()
	if err != nil {
		e.message = err.Error()
		return
	}
	h.Add(c)
	e.countCards(c)
}

func (e *Engine) split(h *hand.Hand) {
	e.bankroll -= h.Bet
	e.splitCount++

	child := hand.New(h.Bet)
	child.IsSplitChild = true
	child.Add(h.Cards[1])
	h.Cards = h.Cards[:1]
	h.IsSplitChild = true

	e.dealTo(h)
	e.dealTo(child)

	if h.Cards[0].Rank == card.Ace && e.cfg.SplitAcesOneCard {
		h.Resolved = true
		child.Resolved = true
	}

	tail := append([]*hand.Hand{}, e.playerHands[e.activeHandIndex+1:]...)
	e.playerHands = append(e.playerHands[:e.activeHandIndex+1], child)
	e.playerHands = append(e.playerHands, tail...)

	e.stats.RecordSplit()
}

// advance selects the next unresolved hand in insertion order, or, if none
// remain, transitions to the dealer's turn.
func (e *Engine) advance() {
	for i, h := range e.playerHands {
		if !h.Resolved {
			e.activeHandIndex = i
			return
		}
	}
	e.playDealerTurn()
}

func (e *Engine) allHandsBustOrSurrendered() bool {
	for _, h := range e.playerHands {
		if h.Outcome != hand.OutcomeBust && h.Outcome != hand.OutcomeSurrender {
			return false
		}
	}
	return true
}

// playDealerTurn reveals the hole card (if not already revealed), draws
// according to house rules unless every player hand is already bust or
// surrendered, then resolves and pays out every hand and ends the round.
func (e *Engine) playDealerTurn() {
	if e.phase == PhaseRoundOver {
		return
	}
	e.setPhase(PhaseDealerTurn)
	e.revealHole()

	if !e.allHandsBustOrSurrendered() {
		for {
			total, soft := hand.BestTotalAndSoft(e.dealerCards)
			if total < 17 || (total == 17 && soft && e.cfg.DealerHitsSoft17) {
				c, err := e.shoe.Draw()
				if err != nil {
					e.message = err.Error()
					break
				}
				e.dealerCards = append(e.dealerCards, c)
				e.countCards(c)
			} else {
				break
			}
		}
	}

	e.setPhase(PhaseRoundOver)
	e.resolveAndPayout()
}

func (e *Engine) resolveAndPayout() {
	dealerTotal, _ := hand.BestTotalAndSoft(e.dealerCards)
	dealerBust := dealerTotal > 21

	for _, h := range e.playerHands {
		if h.Outcome == hand.OutcomeNone {
			switch {
			case dealerBust:
				h.Outcome = hand.OutcomeWin
			case h.Total() > dealerTotal:
				h.Outcome = hand.OutcomeWin
			case h.Total() == dealerTotal:
				h.Outcome = hand.OutcomePush
			default:
				h.Outcome = hand.OutcomeLose
			}
		}

		var profit int64
		switch h.Outcome {
		case hand.OutcomeBlackjack:
			profit = int64(math.Floor(float64(h.Bet) * e.cfg.BlackjackPayout))
			e.bankroll += h.Bet + profit
		case hand.OutcomeWin:
			profit = h.Bet
			e.bankroll += h.Bet + profit
		case hand.OutcomePush:
			e.bankroll += h.Bet
		case hand.OutcomeLose, hand.OutcomeBust:
			profit = -h.Bet
		}
		// Surrender already settled (stake refund applied) in Act, so its
		// profit is not computed above; it is recorded with a loss of
		// half the stake rather than the full wager.
		if h.Outcome != hand.OutcomeSurrender {
			e.stats.RecordHand(h.Outcome, h.Bet, h.IsDoubled, profit)
		} else {
			e.stats.RecordHand(h.Outcome, h.Bet, h.IsDoubled, -h.Bet/2)
		}
		if e.cfg.History != nil {
			e.cfg.History.Outcome(fmt.Sprintf("%s bet=%d profit=%d", h.Outcome, h.Bet, profit))
		}
	}
	e.stats.ObserveBankroll(e.bankroll)
	if e.cfg.History != nil {
		e.cfg.History.End()
	}
}

// NextRound resets round-scoped state and returns to PhaseBetting. It is a
// no-op (returning false) outside PhaseRoundOver.
func (e *Engine) NextRound() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseRoundOver {
		e.message = InvalidActionError("next_round is only legal from round_over").Error()
		return false
	}
	e.setPhase(PhaseBetting)
	e.playerHands = nil
	e.dealerCards = nil
	e.dealerHoleRevealed = false
	e.message = ""
	return true
}

// Bankroll returns the current bankroll.
func (e *Engine) Bankroll() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bankroll
}

// Stats returns a copy of the accumulated round statistics.
func (e *Engine) Stats() stats.RoundStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
