package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanRequest) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanRequest, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE). The funding flow
	// depends on this to serialize check-then-increment per loan.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*LoanRequest, error)
	// ListOpen returns Pending loans newest-first, joined with borrower
	// name and risk score.
	ListOpen(ctx context.Context) ([]OpenLoanRow, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]LoanRequest, error)
	Save(ctx context.Context, l *LoanRequest) error
}
