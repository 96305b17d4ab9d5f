package mysql

import (
	"context"

	ledgerDomain "lendwise/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Create(ctx context.Context, tx *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *LedgerRepository) ListByUserID(ctx context.Context, userID string) ([]ledgerDomain.Transaction, error) {
	var out []ledgerDomain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
