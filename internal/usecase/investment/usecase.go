package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lendwise/internal/domain/investment"
	"lendwise/internal/domain/ledger"
	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/uow"
	"lendwise/internal/domain/user"
	"lendwise/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	investments investment.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(investments investment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{investments: investments, uow: tx}
}

// Fund applies one lender contribution to a Pending loan. The whole
// operation runs inside a single transaction with the loan row locked:
// status guard, overshoot check, funded-amount increment, the Funded
// transition, the investment row, and the ledger entry all commit or roll
// back together. A contribution that would push the total past the
// requested amount is rejected outright; there is no partial fill.
func (u *Usecase) Fund(ctx context.Context, in FundInput) (*InvestmentDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", loan.ErrValidation)
	}

	var dto *InvestmentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanRequestID, func(r uow.Repos, l *loan.LoanRequest) error {
		if _, err := r.Users.GetByUserID(ctx, in.LenderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		if l.Status != loan.StatusPending {
			return loan.ErrNotFundable
		}
		if loan.Cents(in.Amount) > l.RemainingCents() {
			return loan.ErrExceedsRemaining
		}

		inv := &investment.Investment{
			InvestmentID: id.NewID32(),
			LenderID:     in.LenderID,
			LoanID:       l.ID,
			Amount:       in.Amount,
			Status:       investment.StatusActive,
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		l.FundedAmount = loan.AddMoney(l.FundedAmount, in.Amount)
		if l.RemainingCents() <= 0 {
			l.Status = loan.StatusFunded
			l.StatusUpdatedAt = time.Now().UTC()
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		entry := &ledger.Transaction{
			TransactionID: id.NewID32(),
			UserID:        in.LenderID,
			Type:          ledger.TypeInvestment,
			Amount:        -in.Amount,
			Description:   fmt.Sprintf("Investment in loan %s", l.LoanID),
		}
		if err := r.Ledger.Create(ctx, entry); err != nil {
			return err
		}

		dto = &InvestmentDTO{
			InvestmentID: inv.InvestmentID,
			LenderID:     inv.LenderID,
			LoanID:       l.LoanID,
			Amount:       inv.Amount,
			Status:       string(inv.Status),
			LoanStatus:   string(l.Status),
			FundedAmount: l.FundedAmount,
			CreatedAt:    inv.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Portfolio lists a lender's investments joined with loan and borrower data.
func (u *Usecase) Portfolio(ctx context.Context, lenderID string) ([]investment.PortfolioRow, error) {
	return u.investments.ListByLenderID(ctx, lenderID)
}
