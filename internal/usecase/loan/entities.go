package loan

import "time"

type CreateLoanInput struct {
	BorrowerID     string  `json:"borrower_id"`
	Amount         float64 `json:"amount"`
	DurationMonths int     `json:"duration_months"`
	Purpose        string  `json:"purpose"`
}

type SubmitCertificateInput struct {
	LoanID    string  `json:"loan_id"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
	SignedBy  string  `json:"signed_by"`
}

type LoanDTO struct {
	LoanID               string     `json:"loan_id"`
	BorrowerID           string     `json:"borrower_id"`
	Amount               float64    `json:"amount"`
	FundedAmount         float64    `json:"funded_amount"`
	InterestRate         float64    `json:"interest_rate"`
	DurationMonths       int        `json:"duration_months"`
	Purpose              string     `json:"purpose"`
	Status               string     `json:"status"`
	RiskTier             string     `json:"risk_tier"`
	CertificateSubmitted bool       `json:"certificate_submitted"`
	CertificateDeadline  *time.Time `json:"certificate_deadline,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}
