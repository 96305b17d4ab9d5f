package mysql

import (
	"context"

	loanDomain "lendwise/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate locks the loan row until the surrounding transaction
// ends. SQLite (used by the tests) has no FOR UPDATE; its transactions are
// serialized anyway, so the clause is skipped there.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.LoanRequest, error) {
	tx := r.db.WithContext(ctx)
	if r.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.LoanRequest
	res := tx.Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListOpen(ctx context.Context) ([]loanDomain.OpenLoanRow, error) {
	var rows []loanDomain.OpenLoanRow
	err := r.db.WithContext(ctx).
		Table("loan_requests").
		Select(`loan_requests.loan_id,
			loan_requests.borrower_id,
			users.name AS borrower_name,
			users.risk_score AS borrower_risk_score,
			loan_requests.amount,
			loan_requests.funded_amount,
			loan_requests.interest_rate,
			loan_requests.duration_months,
			loan_requests.purpose,
			loan_requests.risk_tier,
			loan_requests.created_at`).
		Joins("JOIN users ON users.user_id = loan_requests.borrower_id AND users.deleted_at IS NULL").
		Where("loan_requests.status = ? AND loan_requests.deleted_at IS NULL", loanDomain.StatusPending).
		Order("loan_requests.created_at DESC, loan_requests.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *LoanRepository) ListByBorrowerID(ctx context.Context, borrowerID string) ([]loanDomain.LoanRequest, error) {
	var out []loanDomain.LoanRequest
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
