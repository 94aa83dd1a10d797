package blackjack

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// gameConfigHCL is the HCL-decodable shape of GameConfig (SPEC_FULL §2/§6):
// an optional file-based construction path around the same Validate() gate
// a struct literal goes through. Grounded on
// lox-pokerforbots/internal/server/config.go's hclparse.NewParser +
// gohcl.DecodeBody pattern.
type gameConfigHCL struct {
	NumDecks          int     `hcl:"num_decks,optional"`
	StartingBankroll  int64   `hcl:"starting_bankroll,optional"`
	MinBet            int64   `hcl:"min_bet,optional"`
	MaxBet            int64   `hcl:"max_bet,optional"`
	BlackjackPayout   float64 `hcl:"blackjack_payout,optional"`
	DealerHitsSoft17  bool    `hcl:"dealer_hits_soft_17,optional"`
	DoubleAfterSplit  bool    `hcl:"double_after_split,optional"`
	SplitAcesOneCard  bool    `hcl:"split_aces_one_card_only,optional"`
	MaxSplits         int     `hcl:"max_splits,optional"`
	InsurancePays     float64 `hcl:"insurance_pays,optional"`
	Penetration       float64 `hcl:"penetration,optional"`
	AllowSplitByValue bool    `hcl:"allow_split_by_value,optional"`
	AllowSurrender    bool    `hcl:"allow_surrender,optional"`
}

// LoadGameConfigHCL parses an HCL file at path into a validated GameConfig.
// Logger, ExtraCounters, and History have no HCL representation; set them
// on the returned struct before calling NewEngine if a collaborator wants
// them.
func LoadGameConfigHCL(path string) (GameConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return GameConfig{}, fmt.Errorf("blackjack: parse %s: %s", path, diags.Error())
	}

	var raw gameConfigHCL
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return GameConfig{}, fmt.Errorf("blackjack: decode %s: %s", path, diags.Error())
	}

	cfg := GameConfig{
		NumDecks:          raw.NumDecks,
		StartingBankroll:  raw.StartingBankroll,
		MinBet:            raw.MinBet,
		MaxBet:            raw.MaxBet,
		BlackjackPayout:   raw.BlackjackPayout,
		DealerHitsSoft17:  raw.DealerHitsSoft17,
		DoubleAfterSplit:  raw.DoubleAfterSplit,
		SplitAcesOneCard:  raw.SplitAcesOneCard,
		MaxSplits:         raw.MaxSplits,
		InsurancePays:     raw.InsurancePays,
		Penetration:       raw.Penetration,
		AllowSplitByValue: raw.AllowSplitByValue,
		AllowSurrender:    raw.AllowSurrender,
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}
