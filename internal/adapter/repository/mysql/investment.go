package mysql

import (
	"context"

	investmentDomain "lendwise/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) ListByLenderID(ctx context.Context, lenderID string) ([]investmentDomain.PortfolioRow, error) {
	var rows []investmentDomain.PortfolioRow
	err := r.db.WithContext(ctx).
		Table("investments").
		Select(`investments.investment_id,
			investments.amount,
			investments.status,
			loan_requests.loan_id,
			loan_requests.amount AS loan_amount,
			loan_requests.funded_amount,
			loan_requests.status AS loan_status,
			loan_requests.interest_rate,
			loan_requests.risk_tier,
			users.name AS borrower_name,
			investments.created_at`).
		Joins("JOIN loan_requests ON loan_requests.id = investments.loan_id AND loan_requests.deleted_at IS NULL").
		Joins("JOIN users ON users.user_id = loan_requests.borrower_id AND users.deleted_at IS NULL").
		Where("investments.lender_id = ?", lenderID).
		Order("investments.created_at DESC, investments.id DESC").
		Scan(&rows).Error
	return rows, err
}
