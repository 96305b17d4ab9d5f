// Package engine is the heuristic risk engine: a deterministic weighted
// score over a borrower's financial profile, a fixed tier/rate table, and a
// tolerance-based recommendation filter. Everything here is pure; callers
// persist the results.
package engine

import (
	"math"

	"lendwise/internal/domain/user"
)

const (
	baseScore = 50

	minScore = 0
	maxScore = 100
)

// Profile is the slice of a user's financial data the scorer looks at.
type Profile struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	EmploymentType  user.EmploymentType
}

var employmentAdjust = map[user.EmploymentType]float64{
	user.EmploymentFullTime:     25,
	user.EmploymentSelfEmployed: 15,
	user.EmploymentPartTime:     5,
	user.EmploymentUnemployed:   -30,
}

// Score maps a financial profile to an integer risk score in [0,100].
// Higher is safer. Ratio buckets use strict inequalities: an expense ratio
// of exactly 0.30 lands in the <0.50 bucket, not the <0.30 one.
func Score(p Profile) int {
	score := float64(baseScore)

	score += employmentAdjust[p.EmploymentType]

	if p.MonthlyIncome > 0 {
		ratio := p.MonthlyExpenses / p.MonthlyIncome
		switch {
		case ratio < 0.30:
			score += 25
		case ratio < 0.50:
			score += 15
		case ratio < 0.70:
			score += 5
		case ratio > 0.90:
			score -= 20
		}
	} else {
		// no verifiable income
		score -= 20
	}

	disposable := p.MonthlyIncome - p.MonthlyExpenses
	switch {
	case disposable > 2000:
		score += 10
	case disposable > 1000:
		score += 5
	case disposable < 0:
		score -= 20
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return int(math.Floor(score))
}
