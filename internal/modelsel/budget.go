package modelsel

import "math"

// charsPerToken is the heuristic ratio used by EstimateTokens.
const charsPerToken = 4

// EstimateTokens approximates the token count of text as ceil(len(text)/4),
// counting bytes.
// It is a heuristic, not a tokenizer. See CountTokens for an exact count.
func EstimateTokens(text string) int {
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// WeightedCost converts a token count into sonnet-equivalent tokens for tier.
// Tiers without cost data are weighted 1:1. Negative counts are treated as 0.
func WeightedCost(tier Tier, tokens int) int {
	if tokens <= 0 {
		return 0
	}
	factor := 1.0
	if cfg, ok := configs[tier]; ok && cfg.RelativeCost > 0 {
		factor = cfg.RelativeCost
	}
	return int(math.Ceil(float64(tokens) * factor))
}

// IsWithinBudget reports whether an operation estimated at tokens fits in
// budgetRemaining once weighted for tier. A budget of zero or less always
// fails. For fixed tier and tokens the result is monotonic in the budget.
func IsWithinBudget(tier Tier, tokens, budgetRemaining int) bool {
	if budgetRemaining <= 0 {
		return false
	}
	return WeightedCost(tier, tokens) <= budgetRemaining
}
