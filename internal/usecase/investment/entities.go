package investment

import "time"

type FundInput struct {
	LenderID      string  `json:"lender_id"`
	LoanRequestID string  `json:"loan_request_id"`
	Amount        float64 `json:"amount"`
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	LenderID     string    `json:"lender_id"`
	LoanID       string    `json:"loan_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	LoanStatus   string    `json:"loan_status"`
	FundedAmount float64   `json:"funded_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
