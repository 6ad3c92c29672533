package plans

import "strings"

const (
	TierNone    = "none"
	TierStarter = "starter"
	TierGrowth  = "growth"
	TierScale   = "scale"
)

// PlanTier returns the effective tier for a plan: the stored value when it is
// one of the known tiers, otherwise inferred from price as a legacy fallback.
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierStarter, TierGrowth, TierScale:
		return tier
	}

	return inferTierFromPrice(p.PriceEUR)
}

func inferTierFromPrice(priceEUR float64) string {
	switch {
	case priceEUR >= 99:
		return TierScale
	case priceEUR >= 39:
		return TierGrowth
	default:
		return TierStarter
	}
}
