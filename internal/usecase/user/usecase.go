package user

import (
	"context"
	"errors"
	"fmt"

	"lendwise/internal/domain/user"
	"lendwise/internal/engine"
	"lendwise/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if in.Name == "" || in.Email == "" || in.SimulatedAuthID == "" {
		return nil, fmt.Errorf("%w: name, email and simulated_auth_id are required", user.ErrValidation)
	}

	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	nu := &user.User{
		UserID:          id.NewID32(),
		Name:            in.Name,
		Email:           in.Email,
		SimulatedAuthID: in.SimulatedAuthID,
		Role:            user.ParseRole(in.Role),
		EmploymentType:  user.EmploymentFullTime,
	}
	if err := u.repo.Create(ctx, nu); err != nil {
		return nil, err
	}
	return toDTO(nu), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	found, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return toDTO(found), nil
}

// UpdateFinancialProfile applies the provided fields and recomputes the
// risk score before persisting. The score is derived, never set directly.
func (u *Usecase) UpdateFinancialProfile(ctx context.Context, userID string, in UpdateProfileInput) (*UserDTO, error) {
	found, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	if in.MonthlyIncome != nil {
		found.MonthlyIncome = *in.MonthlyIncome
	}
	if in.MonthlyExpenses != nil {
		found.MonthlyExpenses = *in.MonthlyExpenses
	}
	if in.EmploymentType != nil {
		found.EmploymentType = user.EmploymentType(*in.EmploymentType)
	}

	found.RiskScore = engine.Score(engine.Profile{
		MonthlyIncome:   found.MonthlyIncome,
		MonthlyExpenses: found.MonthlyExpenses,
		EmploymentType:  found.EmploymentType,
	})

	if err := u.repo.Save(ctx, found); err != nil {
		return nil, err
	}
	return toDTO(found), nil
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		UserID:          u.UserID,
		Name:            u.Name,
		Email:           u.Email,
		SimulatedAuthID: u.SimulatedAuthID,
		Role:            string(u.Role),
		MonthlyIncome:   u.MonthlyIncome,
		MonthlyExpenses: u.MonthlyExpenses,
		EmploymentType:  string(u.EmploymentType),
		RiskScore:       u.RiskScore,
		CreatedAt:       u.CreatedAt,
	}
}
