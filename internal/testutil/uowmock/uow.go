package uowmock

import (
	"context"
	"errors"

	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
//
// For most tests, set Repos (and Loan for WithinLoanTx) and the default
// implementations run fn directly against them, with no transaction
// semantics. Set the Fn fields to take full control.
type UoW struct {
	Repos uow.Repos
	// Loan is handed to WithinLoanTx callbacks; nil means loan.ErrNotFound.
	Loan *loan.LoanRequest

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error
}

func New() *UoW       { return &UoW{} }
func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinLoanTx(fn func(context.Context, string, func(uow.Repos, *loan.LoanRequest) error) error) *UoW {
	m.WithinLoanTxFn = fn
	return m
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	if m.Repos == (uow.Repos{}) {
		return errUnimplemented
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	if m.Loan == nil {
		return loan.ErrNotFound
	}
	return fn(m.Repos, m.Loan)
}
