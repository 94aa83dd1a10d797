package trainer

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// configHCL is the HCL-decodable shape of Config, mirroring
// internal/blackjack/config_hcl.go's pattern.
type configHCL struct {
	NumDecks         int    `hcl:"num_decks,optional"`
	DrillType        string `hcl:"drill_type,optional"`
	CardsPerRound    int    `hcl:"cards_per_round,optional"`
	AskTrueCount     bool   `hcl:"ask_true_count,optional"`
	TimeLimitSeconds int    `hcl:"time_limit_seconds,optional"`
	ShowHistory      bool   `hcl:"show_history,optional"`
}

func parseDrillType(s string) (DrillType, error) {
	switch s {
	case "", "single_card":
		return DrillSingleCard, nil
	case "hand":
		return DrillHand, nil
	case "round":
		return DrillRound, nil
	default:
		return 0, fmt.Errorf("%w: unknown drill_type %q", ErrInvalidConfig, s)
	}
}

// LoadCountingTrainerConfigHCL parses an HCL file at path into a validated
// Config. Logger and Clock have no HCL representation.
func LoadCountingTrainerConfigHCL(path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("trainer: parse %s: %s", path, diags.Error())
	}

	var raw configHCL
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("trainer: decode %s: %s", path, diags.Error())
	}

	drillType, err := parseDrillType(raw.DrillType)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		NumDecks:         raw.NumDecks,
		DrillType:        drillType,
		CardsPerRound:    raw.CardsPerRound,
		AskTrueCount:     raw.AskTrueCount,
		TimeLimitSeconds: raw.TimeLimitSeconds,
		ShowHistory:      raw.ShowHistory,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
