package modelsel

import (
	"sort"

	"github.com/anthropics/anthropic-sdk-go"
)

// Tier is a model cost/capability class.
type Tier string

// Supported tiers.
const (
	Opus   Tier = "opus"
	Sonnet Tier = "sonnet"
	Haiku  Tier = "haiku"
)

// DefaultTier is used for any category missing from the routing table.
const DefaultTier = Sonnet

// ModelConfig describes one tier.
type ModelConfig struct {
	Tier    Tier   `json:"tier"`
	ModelID string `json:"model_id"`
	// MaxOutput is the maximum number of output tokens per response.
	MaxOutput int `json:"max_output"`
	// CostTier is a coarse label: "high", "medium", or "low".
	CostTier string `json:"cost_tier"`
	// RelativeCost weights token counts against the sonnet baseline.
	RelativeCost float64 `json:"relative_cost"`
	// InputPerMTok and OutputPerMTok are list prices in USD per million tokens.
	InputPerMTok  float64 `json:"input_per_mtok"`
	OutputPerMTok float64 `json:"output_per_mtok"`
}

var configs = map[Tier]ModelConfig{
	Opus: {
		Tier:          Opus,
		ModelID:       string(anthropic.ModelClaude3OpusLatest),
		MaxOutput:     4096,
		CostTier:      "high",
		RelativeCost:  5,
		InputPerMTok:  15,
		OutputPerMTok: 75,
	},
	Sonnet: {
		Tier:          Sonnet,
		ModelID:       string(anthropic.ModelClaude3_7SonnetLatest),
		MaxOutput:     8192,
		CostTier:      "medium",
		RelativeCost:  1,
		InputPerMTok:  3,
		OutputPerMTok: 15,
	},
	Haiku: {
		Tier:          Haiku,
		ModelID:       string(anthropic.ModelClaude3_5HaikuLatest),
		MaxOutput:     8192,
		CostTier:      "low",
		RelativeCost:  0.25,
		InputPerMTok:  0.8,
		OutputPerMTok: 4,
	},
}

// categoryTiers is matched case-sensitively.
var categoryTiers = map[string]Tier{
	"architecture":   Opus,
	"security":       Opus,
	"implementation": Sonnet,
	"tdd":            Sonnet,
	"code-review":    Sonnet,
	"documentation":  Haiku,
	"formatting":     Haiku,
}

// SelectModel returns the tier for a task category, or DefaultTier when the
// category is not in the routing table.
func SelectModel(category string) Tier {
	if tier, ok := categoryTiers[category]; ok {
		return tier
	}
	return DefaultTier
}

// Config returns the configuration for tier. The boolean is false for tiers
// other than opus, sonnet, and haiku, in which case the zero value is returned.
func Config(tier Tier) (ModelConfig, bool) {
	cfg, ok := configs[tier]
	return cfg, ok
}

// Route returns the configuration of the tier selected for category.
func Route(category string) ModelConfig {
	return configs[SelectModel(category)]
}

// Categories returns the known task categories in sorted order.
func Categories() []string {
	names := make([]string, 0, len(categoryTiers))
	for name := range categoryTiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tiers returns the supported tiers from most to least capable.
func Tiers() []Tier {
	return []Tier{Opus, Sonnet, Haiku}
}
