package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusFunded    Status = "Funded"
	StatusActive    Status = "Active"
	StatusRepaid    Status = "Repaid"
	StatusDefaulted Status = "Defaulted"
)

type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

type LoanRequest struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string `gorm:"size:32;uniqueIndex:ux_loan_requests_loan_id_active" json:"loan_id"`
	BorrowerID string `gorm:"size:32;index:idx_loan_requests_borrower" json:"borrower_id"`
	Amount     float64 `gorm:"type:decimal(18,2)" json:"amount"`
	// Running total of accepted investments. Never exceeds Amount.
	FundedAmount   float64 `gorm:"type:decimal(18,2);default:0" json:"funded_amount"`
	InterestRate   float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	DurationMonths int     `gorm:"column:duration_months" json:"duration_months"`
	Purpose        string  `gorm:"type:text" json:"purpose"`
	Status         Status  `gorm:"type:enum('Pending','Funded','Active','Repaid','Defaulted');default:'Pending'" json:"status"`
	RiskTier       Tier    `gorm:"type:enum('A','B','C','D');default:'C'" json:"risk_tier"`

	CertificateSubmitted bool       `gorm:"default:false" json:"certificate_submitted"`
	CertificateSignedBy  string     `gorm:"size:120" json:"certificate_signed_by,omitempty"`
	CertificatePrincipal float64    `gorm:"type:decimal(18,2)" json:"certificate_principal,omitempty"`
	CertificateInterest  float64    `gorm:"type:decimal(18,2)" json:"certificate_interest,omitempty"`
	CertificateTotal     float64    `gorm:"type:decimal(18,2)" json:"certificate_total,omitempty"`
	CertificateDeadline  *time.Time `json:"certificate_deadline,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// Remaining is the amount still open for funding.
func (l *LoanRequest) Remaining() float64 { return float64(l.RemainingCents()) / 100 }

// RemainingCents is the unfunded portion in cents.
func (l *LoanRequest) RemainingCents() int64 { return Cents(l.Amount) - Cents(l.FundedAmount) }

// OpenLoanRow is a listing row: a pending loan joined with the borrower's
// display name and current risk score.
type OpenLoanRow struct {
	LoanID            string    `json:"loan_id"`
	BorrowerID        string    `json:"borrower_id"`
	BorrowerName      string    `json:"borrower_name"`
	BorrowerRiskScore int       `json:"borrower_risk_score"`
	Amount            float64   `json:"amount"`
	FundedAmount      float64   `json:"funded_amount"`
	InterestRate      float64   `json:"interest_rate"`
	DurationMonths    int       `json:"duration_months"`
	Purpose           string    `json:"purpose"`
	RiskTier          Tier      `json:"risk_tier"`
	CreatedAt         time.Time `json:"created_at"`
}
