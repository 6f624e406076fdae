package http

import (
	"net/http"
	"strings"

	domain "agrifin-backend/internal/domain/loan"
	"agrifin-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	FarmerID     string         `json:"farmerId"     validate:"required,hex32"`
	LoanAmount   float64        `json:"loanAmount"   validate:"required"`
	InterestRate float64        `json:"interestRate" validate:"gte=0,lte=100"`
	Tenure       int            `json:"tenure"       validate:"required"`
	Purpose      domain.Purpose `json:"purpose"      validate:"required"`
}

type statusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domain.Filter{
		FarmerID: c.QueryParam("farmerId"),
		Status:   domain.Status(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return respondList(c, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", l)
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := bind(c, &req); err != nil {
		return err
	}
	l, err := h.uc.Create(c.Request().Context(), loan.CreateInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Loan application submitted successfully", l)
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := bind(c, &req); err != nil {
		return err
	}
	l, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Loan "+strings.ToLower(req.Status)+" successfully", l)
}
