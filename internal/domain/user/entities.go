package user

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrValidation = errors.New("invalid user input")
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

// ParseRole maps the role strings accepted at the boundary (including the
// legacy mixed-case variants like "Student" and "Lender") onto the canonical
// enum. Anything unrecognized becomes a borrower.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lender":
		return RoleLender
	case "admin":
		return RoleAdmin
	default:
		// "borrower", "student", "non-student", ""
		return RoleBorrower
	}
}

type EmploymentType string

const (
	EmploymentFullTime     EmploymentType = "Full-time"
	EmploymentPartTime     EmploymentType = "Part-time"
	EmploymentSelfEmployed EmploymentType = "Self-employed"
	EmploymentUnemployed   EmploymentType = "Unemployed"
)

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Name   string `gorm:"size:120" json:"name"`
	Email  string `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	// Stand-in for a real auth subject; the platform has no authentication.
	SimulatedAuthID string         `gorm:"size:64;index" json:"simulated_auth_id"`
	Role            Role           `gorm:"type:enum('borrower','lender','admin');default:'borrower'" json:"role"`
	MonthlyIncome   float64        `gorm:"type:decimal(18,2)" json:"monthly_income"`
	MonthlyExpenses float64        `gorm:"type:decimal(18,2)" json:"monthly_expenses"`
	EmploymentType  EmploymentType `gorm:"size:20;default:'Full-time'" json:"employment_type"`
	// Derived via the risk engine; recomputed on profile update and loan creation.
	RiskScore int            `gorm:"default:0" json:"risk_score"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
