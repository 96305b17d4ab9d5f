package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	// ListByLenderID returns a lender's investments newest-first, joined
	// with loan and borrower display data.
	ListByLenderID(ctx context.Context, lenderID string) ([]PortfolioRow, error)
}
