package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type userSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	UserID          string         `gorm:"size:32;column:user_id"`
	Name            string         `gorm:"column:name"`
	Email           string         `gorm:"column:email"`
	SimulatedAuthID string         `gorm:"column:simulated_auth_id"`
	Role            string         `gorm:"type:text;column:role"`
	MonthlyIncome   float64        `gorm:"column:monthly_income"`
	MonthlyExpenses float64        `gorm:"column:monthly_expenses"`
	EmploymentType  string         `gorm:"type:text;column:employment_type"`
	RiskScore       int            `gorm:"column:risk_score"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type loanRequestSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	LoanID               string         `gorm:"size:32;column:loan_id"`
	BorrowerID           string         `gorm:"size:32;column:borrower_id"`
	Amount               float64        `gorm:"column:amount"`
	FundedAmount         float64        `gorm:"column:funded_amount"`
	InterestRate         float64        `gorm:"column:interest_rate"`
	DurationMonths       int            `gorm:"column:duration_months"`
	Purpose              string         `gorm:"column:purpose"`
	Status               string         `gorm:"type:text;column:status"`
	RiskTier             string         `gorm:"type:text;column:risk_tier"`
	CertificateSubmitted bool           `gorm:"column:certificate_submitted"`
	CertificateSignedBy  string         `gorm:"column:certificate_signed_by"`
	CertificatePrincipal float64        `gorm:"column:certificate_principal"`
	CertificateInterest  float64        `gorm:"column:certificate_interest"`
	CertificateTotal     float64        `gorm:"column:certificate_total"`
	CertificateDeadline  *time.Time     `gorm:"column:certificate_deadline"`
	StatusUpdatedAt      time.Time      `gorm:"column:status_updated_at"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanRequestSQLite) TableName() string { return "loan_requests" }

type investmentSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	InvestmentID string    `gorm:"size:32;column:investment_id"`
	LenderID     string    `gorm:"size:32;column:lender_id"`
	LoanID       uint64    `gorm:"column:loan_id"`
	Amount       float64   `gorm:"column:amount"`
	Status       string    `gorm:"type:text;column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type transactionSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:32;column:transaction_id"`
	UserID        string    `gorm:"size:32;column:user_id"`
	Type          string    `gorm:"type:text;column:type"`
	Amount        float64   `gorm:"column:amount"`
	Description   string    `gorm:"column:description"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &loanRequestSQLite{}, &investmentSQLite{}, &transactionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
