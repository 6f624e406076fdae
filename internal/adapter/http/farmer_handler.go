package http

import (
	"net/http"

	domain "agrifin-backend/internal/domain/farmer"
	"agrifin-backend/internal/usecase/farmer"

	"github.com/labstack/echo/v4"
)

type FarmerHandler struct{ uc *farmer.Usecase }

func NewFarmerHandler(uc *farmer.Usecase) *FarmerHandler { return &FarmerHandler{uc: uc} }

type createFarmerReq struct {
	Name        string          `json:"name"        validate:"required"`
	Email       string          `json:"email"       validate:"required,email"`
	Phone       string          `json:"phone"       validate:"required,phone10"`
	Address     domain.Address  `json:"address"`
	LandSize    *float64        `json:"landSize"    validate:"required,gte=0"`
	CropType    domain.CropType `json:"cropType"`
	CreditScore int             `json:"creditScore" validate:"omitempty,gte=300,lte=900"`
}

// loanStatus is not accepted here; only the loan workflow writes it.
type updateFarmerReq struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1"`
	Email       *string          `json:"email"       validate:"omitempty,email"`
	Phone       *string          `json:"phone"       validate:"omitempty,phone10"`
	Address     *domain.Address  `json:"address"`
	LandSize    *float64         `json:"landSize"    validate:"omitempty,gte=0"`
	CropType    *domain.CropType `json:"cropType"`
	CreditScore *int             `json:"creditScore" validate:"omitempty,gte=300,lte=900"`
}

type recommendationReq struct {
	Text string `json:"text" validate:"required"`
}

func (h *FarmerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, out)
}

func (h *FarmerHandler) Get(c echo.Context) error {
	f, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", f)
}

func (h *FarmerHandler) Create(c echo.Context) error {
	var req createFarmerReq
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.uc.Create(c.Request().Context(), farmer.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		LandSize:    *req.LandSize,
		CropType:    req.CropType,
		CreditScore: req.CreditScore,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Farmer registered successfully", f)
}

func (h *FarmerHandler) Update(c echo.Context) error {
	var req updateFarmerReq
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.uc.Update(c.Request().Context(), c.Param("id"), farmer.UpdateInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Farmer updated successfully", f)
}

func (h *FarmerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Farmer deleted successfully", nil)
}

func (h *FarmerHandler) AddRecommendation(c echo.Context) error {
	var req recommendationReq
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.uc.AddRecommendation(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Recommendation added", f)
}
