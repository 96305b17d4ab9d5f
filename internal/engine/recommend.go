package engine

import (
	"sort"
	"strings"

	"lendwise/internal/domain/loan"
)

type Tolerance string

const (
	ToleranceLow    Tolerance = "Low"
	ToleranceMedium Tolerance = "Medium"
	ToleranceHigh   Tolerance = "High"
)

// ParseTolerance normalizes a tolerance string; anything unrecognized
// (including empty) defaults to Medium.
func ParseTolerance(s string) Tolerance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ToleranceLow
	case "high":
		return ToleranceHigh
	default:
		return ToleranceMedium
	}
}

var allowedTiers = map[Tolerance]map[loan.Tier]bool{
	ToleranceLow:    {loan.TierA: true, loan.TierB: true},
	ToleranceMedium: {loan.TierA: true, loan.TierB: true, loan.TierC: true},
	ToleranceHigh:   {loan.TierA: true, loan.TierB: true, loan.TierC: true, loan.TierD: true},
}

// Recommend filters open loans down to the tiers the lender's tolerance
// allows and orders them. High tolerance chases yield (rate descending);
// everyone else sees safest tiers first, higher rate breaking ties.
func Recommend(tol Tolerance, loans []loan.OpenLoanRow) []loan.OpenLoanRow {
	allowed, ok := allowedTiers[tol]
	if !ok {
		allowed = allowedTiers[ToleranceMedium]
	}

	out := make([]loan.OpenLoanRow, 0, len(loans))
	for _, l := range loans {
		if allowed[l.RiskTier] {
			out = append(out, l)
		}
	}

	if tol == ToleranceHigh {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].InterestRate > out[j].InterestRate
		})
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RiskTier != out[j].RiskTier {
			return out[i].RiskTier < out[j].RiskTier
		}
		return out[i].InterestRate > out[j].InterestRate
	})
	return out
}
