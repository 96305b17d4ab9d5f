package engine

import "lendwise/internal/domain/loan"

// defaultRate applies to any tier outside the canonical table.
const defaultRate = 15

// AssignTier maps a risk score to a letter tier and its annual rate (%).
// Boundaries are inclusive: 85 is still an A, 70 a B, 50 a C.
func AssignTier(score int) (loan.Tier, float64) {
	var t loan.Tier
	switch {
	case score >= 85:
		t = loan.TierA
	case score >= 70:
		t = loan.TierB
	case score >= 50:
		t = loan.TierC
	default:
		t = loan.TierD
	}
	return t, RateForTier(t)
}

// RateForTier returns the annual rate for a tier, falling back to the
// default for anything unmapped.
func RateForTier(t loan.Tier) float64 {
	switch t {
	case loan.TierA:
		return 8
	case loan.TierB:
		return 12
	case loan.TierC:
		return 18
	case loan.TierD:
		return 24
	default:
		return defaultRate
	}
}
