package user

import "time"

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	SimulatedAuthID string `json:"simulated_auth_id"`
	Role            string `json:"role"`
}

// UpdateProfileInput carries a partial financial profile; nil fields are
// left untouched.
type UpdateProfileInput struct {
	MonthlyIncome   *float64 `json:"monthly_income"`
	MonthlyExpenses *float64 `json:"monthly_expenses"`
	EmploymentType  *string  `json:"employment_type"`
}

type UserDTO struct {
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	SimulatedAuthID string    `json:"simulated_auth_id"`
	Role            string    `json:"role"`
	MonthlyIncome   float64   `json:"monthly_income"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	EmploymentType  string    `json:"employment_type"`
	RiskScore       int       `json:"risk_score"`
	CreatedAt       time.Time `json:"created_at"`
}
