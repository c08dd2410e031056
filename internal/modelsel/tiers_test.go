package modelsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectModel(t *testing.T) {
	tests := []struct {
		category string
		want     Tier
	}{
		{"architecture", Opus},
		{"security", Opus},
		{"implementation", Sonnet},
		{"tdd", Sonnet},
		{"code-review", Sonnet},
		{"documentation", Haiku},
		{"formatting", Haiku},
		{"totally-unknown-xyz", Sonnet},
		{"", Sonnet},
		{"Architecture", Sonnet},
		{" documentation", Sonnet},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectModel(tt.category))
		})
	}
}

func TestConfig_KnownTiers(t *testing.T) {
	for _, tier := range Tiers() {
		cfg, ok := Config(tier)
		assert.True(t, ok, "tier %s", tier)
		assert.Equal(t, tier, cfg.Tier)
		assert.Positive(t, cfg.MaxOutput, "tier %s", tier)
		assert.Positive(t, cfg.RelativeCost, "tier %s", tier)
		assert.NotEmpty(t, cfg.ModelID, "tier %s", tier)
		assert.NotEmpty(t, cfg.CostTier, "tier %s", tier)
	}
}

func TestConfig_UnknownTier(t *testing.T) {
	cfg, ok := Config("gpt")
	assert.False(t, ok)
	assert.Equal(t, ModelConfig{}, cfg)
}

func TestConfig_CostOrdering(t *testing.T) {
	opus, _ := Config(Opus)
	sonnet, _ := Config(Sonnet)
	haiku, _ := Config(Haiku)
	assert.Greater(t, opus.RelativeCost, sonnet.RelativeCost)
	assert.Greater(t, sonnet.RelativeCost, haiku.RelativeCost)
}

func TestRoute(t *testing.T) {
	assert.Equal(t, Opus, Route("security").Tier)
	assert.Equal(t, Sonnet, Route("refactoring").Tier)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		"architecture", "code-review", "documentation", "formatting",
		"implementation", "security", "tdd",
	}, Categories())
}
