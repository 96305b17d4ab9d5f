package mysql

import (
	"context"
	"testing"

	investmentDomain "lendwise/internal/domain/investment"
	loanDomain "lendwise/internal/domain/loan"
	"lendwise/pkg/id"
)

func TestInvestmentRepository_CreateAndListPortfolio(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	borrower := id.NewID32()
	seedUser(t, db, borrower, "Ada", 90)

	loanRepo := NewLoanRepository(db)
	l := makeLoan(id.NewID32(), borrower, 1000)
	l.Status = loanDomain.StatusFunded
	l.FundedAmount = 1000
	if err := loanRepo.Create(ctx, l); err != nil {
		t.Fatalf("create loan: %v", err)
	}

	repo := NewInvestmentRepository(db)
	lender := id.NewID32()
	inv := &investmentDomain.Investment{
		InvestmentID: id.NewID32(),
		LenderID:     lender,
		LoanID:       l.ID,
		Amount:       400,
		Status:       investmentDomain.StatusActive,
	}
	if err := repo.Create(ctx, inv); err != nil {
		t.Fatalf("create investment: %v", err)
	}

	rows, err := repo.ListByLenderID(ctx, lender)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.InvestmentID != inv.InvestmentID || row.Amount != 400 {
		t.Fatalf("investment columns: %+v", row)
	}
	if row.LoanID != l.LoanID || row.LoanAmount != 1000 || row.LoanStatus != loanDomain.StatusFunded {
		t.Fatalf("loan join: %+v", row)
	}
	if row.BorrowerName != "Ada" {
		t.Fatalf("borrower join: %+v", row)
	}
}

func TestInvestmentRepository_ListExcludesOtherLenders(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	borrower := id.NewID32()
	seedUser(t, db, borrower, "Ada", 90)

	loanRepo := NewLoanRepository(db)
	l := makeLoan(id.NewID32(), borrower, 1000)
	if err := loanRepo.Create(ctx, l); err != nil {
		t.Fatalf("create loan: %v", err)
	}

	repo := NewInvestmentRepository(db)
	mine, other := id.NewID32(), id.NewID32()
	for lender, amount := range map[string]float64{mine: 100, other: 200} {
		err := repo.Create(ctx, &investmentDomain.Investment{
			InvestmentID: id.NewID32(), LenderID: lender, LoanID: l.ID,
			Amount: amount, Status: investmentDomain.StatusActive,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := repo.ListByLenderID(ctx, mine)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Amount != 100 {
		t.Fatalf("rows = %+v", rows)
	}
}
