package http

import (
	"net/http"

	"lendwise/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	SimulatedAuthID string `json:"simulated_auth_id" validate:"required"`
	Role            string `json:"role"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), user.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		SimulatedAuthID: req.SimulatedAuthID,
		Role:            req.Role,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateFinancialsReq struct {
	MonthlyIncome   *float64 `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	MonthlyExpenses *float64 `json:"monthly_expenses" validate:"omitempty,gte=0,dec2"`
	EmploymentType  *string  `json:"employment_type" validate:"omitempty,oneof=Full-time Part-time Self-employed Unemployed"`
}

func (h *UserHandler) UpdateFinancials(c echo.Context) error {
	var req updateFinancialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateFinancialProfile(c.Request().Context(), c.Param("user_id"), user.UpdateProfileInput{
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		EmploymentType:  req.EmploymentType,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
