package loanmock

import (
	"context"

	domain "lendwise/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Only the
// methods a test fills in do anything useful.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.LoanRequest) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.LoanRequest, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.LoanRequest, error)
	ListOpenFn             func(ctx context.Context) ([]domain.OpenLoanRow, error)
	ListByBorrowerIDFn     func(ctx context.Context, borrowerID string) ([]domain.LoanRequest, error)
	SaveFn                 func(ctx context.Context, l *domain.LoanRequest) error
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanRequest, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.LoanRequest, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOpen(ctx context.Context) ([]domain.OpenLoanRow, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]domain.LoanRequest, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
