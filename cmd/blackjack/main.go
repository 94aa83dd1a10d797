// Command blackjack drives a single scripted round, or a batch of
// counting-trainer drill rounds, against the engine -- a smoke-testing CLI
// for collaborators, not part of the engine's contract. Grounded on
// lox-pokerforbots/cmd/simulate's kong.Parse + charmbracelet/log setup.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"blackjack-trainer/internal/action"
	"blackjack-trainer/internal/blackjack"
	"blackjack-trainer/internal/trainer"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// CLI is the flag surface kong parses into, following
// lox-pokerforbots/cmd/simulate's CLI-struct-with-tags shape.
type CLI struct {
	Mode string `enum:"round,trainer" default:"round" help:"round plays one scripted round; trainer runs a batch of counting drills"`

	Decks     int    `default:"6" help:"Number of decks in the shoe"`
	Bankroll  int64  `default:"1000" help:"Starting bankroll"`
	MinBet    int64  `default:"10"`
	MaxBet    int64  `default:"500"`
	Bet       int64  `default:"25" help:"Bet placed for round mode"`
	Verbose   bool   `short:"v" help:"Debug-level logging"`
	DrillType string `enum:"single_card,hand,round" default:"single_card" help:"Trainer drill type"`
	Rounds    int    `default:"5" help:"Number of trainer drill rounds to run"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	level := charmlog.WarnLevel
	if cli.Verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: level})

	switch cli.Mode {
	case "trainer":
		runTrainer(cli, logger)
	default:
		runRound(cli, logger)
	}
}

func runRound(cli CLI, logger *charmlog.Logger) {
	cfg := blackjack.GameConfig{
		NumDecks:         cli.Decks,
		StartingBankroll: cli.Bankroll,
		MinBet:           cli.MinBet,
		MaxBet:           cli.MaxBet,
		BlackjackPayout:  1.5,
		DealerHitsSoft17: true,
		InsurancePays:    2.0,
		Penetration:      0.75,
		Logger:           logger,
	}
	e, err := blackjack.NewEngine(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !e.StartRound(cli.Bet) {
		fmt.Println(e.Snapshot().Message)
		return
	}

	snap := e.Snapshot()
	if snap.Phase == "insurance_offer" {
		e.TakeInsurance(false)
		snap = e.Snapshot()
	}
	for snap.Phase == "player_turn" {
		e.Act(action.Stand)
		snap = e.Snapshot()
	}

	snap = e.Snapshot()
	fmt.Printf("outcome=%s bankroll=%s running_count=%d true_count=%.2f\n",
		snap.PlayerHands[0].Outcome, humanize.Comma(snap.Bankroll), snap.RunningCount, snap.TrueCount)
}

func runTrainer(cli CLI, logger *charmlog.Logger) {
	drillType, err := parseDrillType(cli.DrillType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tr, err := trainer.New(trainer.Config{
		NumDecks:  cli.Decks,
		DrillType: drillType,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < cli.Rounds; i++ {
		cards, err := tr.NextRound()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// A scripted CLI has no human to ask, so it guesses a random
		// running count in [-2, 2] -- enough to exercise both correct and
		// incorrect scoring paths when smoke-testing the drill loop.
		fb := tr.SubmitGuess(rand.Intn(5)-2, nil)
		fmt.Printf("round %d: dealt=%v expected_rc=%d correct=%v (%s)\n",
			i+1, cards, fb.ExpectedRC, fb.IsCorrectRC, fb.DeltaPerCard)
	}

	stats := tr.Stop()
	fmt.Printf("attempts=%d correct=%d best_streak=%d\n", stats.Attempts, stats.RCCorrect, stats.BestStreak)
}

func parseDrillType(s string) (trainer.DrillType, error) {
	switch s {
	case "single_card":
		return trainer.DrillSingleCard, nil
	case "hand":
		return trainer.DrillHand, nil
	case "round":
		return trainer.DrillRound, nil
	default:
		return 0, fmt.Errorf("unknown drill type %q", s)
	}
}
