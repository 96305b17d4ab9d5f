package http

import (
	"net/http"

	"lendwise/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID     string  `json:"borrower_id" validate:"required,hex32"`
	Amount         float64 `json:"amount" validate:"required,gt=0,dec2"`
	DurationMonths int     `json:"duration_months" validate:"required,gt=0"`
	Purpose        string  `json:"purpose" validate:"required"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:     req.BorrowerID,
		Amount:         req.Amount,
		DurationMonths: req.DurationMonths,
		Purpose:        req.Purpose,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Explore(c echo.Context) error {
	rows, err := h.uc.Explore(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LoanHandler) Recommended(c echo.Context) error {
	rows, err := h.uc.Recommended(c.Request().Context(), c.QueryParam("tolerance"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	list, err := h.uc.MyLoans(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type submitCertificateReq struct {
	Principal float64 `json:"principal" validate:"required,gt=0,dec2"`
	Interest  float64 `json:"interest" validate:"gte=0,dec2"`
	Total     float64 `json:"total" validate:"required,gt=0,dec2"`
	SignedBy  string  `json:"signed_by" validate:"required"`
}

func (h *LoanHandler) SubmitCertificate(c echo.Context) error {
	var req submitCertificateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SubmitCertificate(c.Request().Context(), loan.SubmitCertificateInput{
		LoanID:    c.Param("loan_id"),
		Principal: req.Principal,
		Interest:  req.Interest,
		Total:     req.Total,
		SignedBy:  req.SignedBy,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
