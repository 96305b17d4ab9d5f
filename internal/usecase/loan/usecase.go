package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/uow"
	"lendwise/internal/domain/user"
	"lendwise/internal/engine"
	"lendwise/pkg/id"

	"gorm.io/gorm"
)

// certificateWindow is how long the borrower has after submitting the
// signed certificate.
const certificateWindow = 30 * 24 * time.Hour

type Usecase struct {
	loans loan.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

// Create scores the borrower's current profile, persists the refreshed
// score, and opens a Pending loan priced off the resulting tier. Scoring
// and loan creation commit together.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", loan.ErrValidation)
	}
	if in.DurationMonths <= 0 {
		return nil, fmt.Errorf("%w: duration_months must be positive", loan.ErrValidation)
	}
	if in.Purpose == "" {
		return nil, fmt.Errorf("%w: purpose is required", loan.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		borrower, err := r.Users.GetByUserID(ctx, in.BorrowerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		score := engine.Score(engine.Profile{
			MonthlyIncome:   borrower.MonthlyIncome,
			MonthlyExpenses: borrower.MonthlyExpenses,
			EmploymentType:  borrower.EmploymentType,
		})
		borrower.RiskScore = score
		if err := r.Users.Save(ctx, borrower); err != nil {
			return err
		}

		tier, rate := engine.AssignTier(score)
		l := &loan.LoanRequest{
			LoanID:          id.NewID32(),
			BorrowerID:      borrower.UserID,
			Amount:          in.Amount,
			FundedAmount:    0,
			InterestRate:    rate,
			DurationMonths:  in.DurationMonths,
			Purpose:         in.Purpose,
			Status:          loan.StatusPending,
			RiskTier:        tier,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

// Explore lists open (Pending) loans newest-first with borrower display data.
func (u *Usecase) Explore(ctx context.Context) ([]loan.OpenLoanRow, error) {
	return u.loans.ListOpen(ctx)
}

// Recommended filters the open loans through the lender's risk tolerance.
// Unknown tolerance values fall back to Medium.
func (u *Usecase) Recommended(ctx context.Context, tolerance string) ([]loan.OpenLoanRow, error) {
	rows, err := u.loans.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Recommend(engine.ParseTolerance(tolerance), rows), nil
}

func (u *Usecase) MyLoans(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	list, err := u.loans.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

// SubmitCertificate records the borrower-signed certificate on a Funded or
// Active loan, stamps the 30-day deadline, and moves Funded loans to Active.
func (u *Usecase) SubmitCertificate(ctx context.Context, in SubmitCertificateInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.LoanRequest) error {
		if l.Status != loan.StatusFunded && l.Status != loan.StatusActive {
			return loan.ErrNotEligible
		}

		now := time.Now().UTC()
		deadline := now.Add(certificateWindow)
		l.CertificateSubmitted = true
		l.CertificateSignedBy = in.SignedBy
		l.CertificatePrincipal = in.Principal
		l.CertificateInterest = in.Interest
		l.CertificateTotal = in.Total
		l.CertificateDeadline = &deadline
		if l.Status == loan.StatusFunded {
			l.Status = loan.StatusActive
			l.StatusUpdatedAt = now
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(l *loan.LoanRequest) *LoanDTO {
	return &LoanDTO{
		LoanID:               l.LoanID,
		BorrowerID:           l.BorrowerID,
		Amount:               l.Amount,
		FundedAmount:         l.FundedAmount,
		InterestRate:         l.InterestRate,
		DurationMonths:       l.DurationMonths,
		Purpose:              l.Purpose,
		Status:               string(l.Status),
		RiskTier:             string(l.RiskTier),
		CertificateSubmitted: l.CertificateSubmitted,
		CertificateDeadline:  l.CertificateDeadline,
		CreatedAt:            l.CreatedAt,
	}
}
