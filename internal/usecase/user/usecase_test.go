package user

import (
	"context"
	"errors"
	"testing"

	domain "lendwise/internal/domain/user"
	"lendwise/internal/testutil/usermock"

	"gorm.io/gorm"
)

func TestRegister_Success(t *testing.T) {
	var created *domain.User
	uc := NewUsecase(&usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *domain.User) error {
			created = u
			return nil
		},
	})

	dto, err := uc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", SimulatedAuthID: "auth-1", Role: "Lender",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(dto.UserID) != 32 {
		t.Fatalf("UserID length: %d", len(dto.UserID))
	}
	if dto.Role != string(domain.RoleLender) {
		t.Fatalf("role = %s, want lender", dto.Role)
	}
	if created.EmploymentType != domain.EmploymentFullTime {
		t.Fatalf("default employment = %s", created.EmploymentType)
	}
}

func TestRegister_NormalizesLegacyRoles(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	cases := map[string]string{
		"Student":     "borrower",
		"Non-student": "borrower",
		"borrower":    "borrower",
		"Lender":      "lender",
		"lender":      "lender",
		"Admin":       "admin",
		"":            "borrower",
	}
	for in, want := range cases {
		dto, err := uc.Register(context.Background(), RegisterInput{
			Name: "N", Email: in + "@example.com", SimulatedAuthID: "auth-" + in, Role: in,
		})
		if err != nil {
			t.Fatalf("Register(%q) err: %v", in, err)
		}
		if dto.Role != want {
			t.Fatalf("Register(%q) role = %s, want %s", in, dto.Role, want)
		}
	}
}

func TestRegister_MissingFieldsIsValidationError(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		CreateFn: func(context.Context, *domain.User) error {
			t.Fatal("Create must not be called for incomplete input")
			return nil
		},
	})

	for _, in := range []RegisterInput{
		{Email: "ada@example.com", SimulatedAuthID: "auth-1"},
		{Name: "Ada", SimulatedAuthID: "auth-1"},
		{Name: "Ada", Email: "ada@example.com"},
	} {
		if _, err := uc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Register(%+v) err = %v, want ErrValidation", in, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{Email: "ada@example.com"}, nil
		},
		CreateFn: func(context.Context, *domain.User) error {
			t.Fatal("Create must not be called for a duplicate email")
			return nil
		},
	})

	_, err := uc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", SimulatedAuthID: "auth-1",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestGet_MapsRecordNotFound(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := uc.Get(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateFinancialProfile_RescoresAndSaves(t *testing.T) {
	existing := &domain.User{
		UserID:          "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		MonthlyIncome:   1000,
		MonthlyExpenses: 900,
		EmploymentType:  domain.EmploymentPartTime,
		RiskScore:       55,
	}
	var saved *domain.User
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*domain.User, error) { return existing, nil },
		SaveFn: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	})

	income := 5000.0
	expenses := 1500.0
	empl := "Full-time"
	dto, err := uc.UpdateFinancialProfile(context.Background(), existing.UserID, UpdateProfileInput{
		MonthlyIncome:   &income,
		MonthlyExpenses: &expenses,
		EmploymentType:  &empl,
	})
	if err != nil {
		t.Fatalf("UpdateFinancialProfile err: %v", err)
	}
	if saved == nil {
		t.Fatal("profile was not saved")
	}
	if dto.RiskScore != 100 {
		t.Fatalf("risk score = %d, want 100", dto.RiskScore)
	}
}

func TestUpdateFinancialProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
	existing := &domain.User{
		UserID:          "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		MonthlyIncome:   5000,
		MonthlyExpenses: 1500,
		EmploymentType:  domain.EmploymentFullTime,
	}
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*domain.User, error) { return existing, nil },
	})

	expenses := 4000.0
	dto, err := uc.UpdateFinancialProfile(context.Background(), existing.UserID, UpdateProfileInput{
		MonthlyExpenses: &expenses,
	})
	if err != nil {
		t.Fatalf("UpdateFinancialProfile err: %v", err)
	}
	if dto.MonthlyIncome != 5000 || dto.EmploymentType != string(domain.EmploymentFullTime) {
		t.Fatalf("untouched fields changed: %+v", dto)
	}
	// 50 + 25; ratio 0.8 and disposable exactly 1000 add nothing
	if dto.RiskScore != 75 {
		t.Fatalf("risk score = %d, want 75", dto.RiskScore)
	}
}

func TestUpdateFinancialProfile_UserMissing(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := uc.UpdateFinancialProfile(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", UpdateProfileInput{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
