package ledger

import "time"

type Type string

const (
	TypeDeposit       Type = "Deposit"
	TypeWithdrawal    Type = "Withdrawal"
	TypeLoanDisbursal Type = "LoanDisbursal"
	TypeRepayment     Type = "Repayment"
	TypeInvestment    Type = "Investment"
)

// Transaction is an append-only side-effect log entry. Amounts are signed:
// money leaving the user's side is negative.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	UserID        string    `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	Type          Type      `gorm:"type:enum('Deposit','Withdrawal','LoanDisbursal','Repayment','Investment')" json:"type"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
