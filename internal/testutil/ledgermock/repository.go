package ledgermock

import (
	"context"

	domain "lendwise/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies ledger.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, tx *domain.Transaction) error
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
