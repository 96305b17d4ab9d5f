package ledger

import "context"

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListByUserID(ctx context.Context, userID string) ([]Transaction, error)
}
