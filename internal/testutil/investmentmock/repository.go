package investmentmock

import (
	"context"

	domain "lendwise/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, inv *domain.Investment) error
	ListByLenderIDFn func(ctx context.Context, lenderID string) ([]domain.PortfolioRow, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) ListByLenderID(ctx context.Context, lenderID string) ([]domain.PortfolioRow, error) {
	if m.ListByLenderIDFn != nil {
		return m.ListByLenderIDFn(ctx, lenderID)
	}
	return nil, context.Canceled
}
