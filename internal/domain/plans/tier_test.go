package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanTierUsesStoredValue(t *testing.T) {
	assert.Equal(t, TierGrowth, PlanTier(&Plan{Tier: "growth", PriceEUR: 5}))
	assert.Equal(t, TierScale, PlanTier(&Plan{Tier: " Scale ", PriceEUR: 5}))
}

func TestPlanTierFallsBackToPrice(t *testing.T) {
	assert.Equal(t, TierNone, PlanTier(nil))
	assert.Equal(t, TierStarter, PlanTier(&Plan{PriceEUR: 9}))
	assert.Equal(t, TierGrowth, PlanTier(&Plan{PriceEUR: 39}))
	assert.Equal(t, TierScale, PlanTier(&Plan{PriceEUR: 99}))
	assert.Equal(t, TierScale, PlanTier(&Plan{Tier: "enterprise", PriceEUR: 120}))
}
