package http

import (
	"net/http"

	"lendwise/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type fundLoanReq struct {
	LenderID      string  `json:"lender_id" validate:"required,hex32"`
	LoanRequestID string  `json:"loan_request_id" validate:"required,hex32"`
	Amount        float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) Fund(c echo.Context) error {
	var req fundLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Fund(c.Request().Context(), investment.FundInput{
		LenderID:      req.LenderID,
		LoanRequestID: req.LoanRequestID,
		Amount:        req.Amount,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) Portfolio(c echo.Context) error {
	rows, err := h.uc.Portfolio(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
