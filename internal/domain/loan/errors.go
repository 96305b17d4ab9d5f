package loan

import "errors"

var (
	ErrNotFound = errors.New("loan request not found")
	// Funding attempted on a loan that is not Pending.
	ErrNotFundable = errors.New("loan is not available for funding")
	// Contribution would push FundedAmount past Amount; rejected whole.
	ErrExceedsRemaining = errors.New("investment exceeds requested amount")
	// Certificate submission on a loan that is neither Funded nor Active.
	ErrNotEligible = errors.New("loan is not eligible for certificate submission")
	ErrValidation  = errors.New("invalid loan request input")
)
