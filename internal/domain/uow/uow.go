package uow

import (
	"context"

	"lendwise/internal/domain/investment"
	"lendwise/internal/domain/ledger"
	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/user"
)

type Repos struct {
	Users       user.Repository
	Loans       loan.Repository
	Investments investment.Repository
	Ledger      ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Returns
	// loan.ErrNotFound if no such loan exists.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanRequest) error) error
}
