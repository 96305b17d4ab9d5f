package investment

import (
	"errors"
	"time"

	"lendwise/internal/domain/loan"
)

var ErrNotFound = errors.New("investment not found")

type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusDefaulted Status = "Defaulted"
)

// Investment is an immutable record of one lender's contribution to one
// loan request. Created in the same transaction as the loan's funded-amount
// update and the ledger entry.
type Investment struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string    `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	LenderID     string    `gorm:"size:32;index:idx_investments_lender" json:"lender_id"`
	LoanID       uint64    `gorm:"column:loan_id;index:idx_investments_loan" json:"-"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Status       Status    `gorm:"type:enum('Active','Completed','Defaulted');default:'Active'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Investment) TableName() string { return "investments" }

// PortfolioRow is one investment joined with its loan and the borrower's
// display name, as shown in a lender's portfolio.
type PortfolioRow struct {
	InvestmentID string      `json:"investment_id"`
	Amount       float64     `json:"amount"`
	Status       Status      `json:"status"`
	LoanID       string      `json:"loan_id"`
	LoanAmount   float64     `json:"loan_amount"`
	FundedAmount float64     `json:"funded_amount"`
	LoanStatus   loan.Status `json:"loan_status"`
	InterestRate float64     `json:"interest_rate"`
	RiskTier     loan.Tier   `json:"risk_tier"`
	BorrowerName string      `json:"borrower_name"`
	CreatedAt    time.Time   `json:"created_at"`
}
