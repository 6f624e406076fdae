package http

import (
	"net/http"
	"strconv"

	"agrifin-backend/internal/domain/apperror"
	domain "agrifin-backend/internal/domain/product"
	"agrifin-backend/internal/usecase/product"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct{ uc *product.Usecase }

func NewProductHandler(uc *product.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

// productReq serves both create and update; the store enforces the
// required fields on create.
type productReq struct {
	ProductName      *string                 `json:"productName"`
	Category         *domain.Category        `json:"category"`
	Quantity         *float64                `json:"quantity"         validate:"omitempty,gte=0"`
	Unit             *domain.Unit            `json:"unit"`
	Price            *float64                `json:"price"            validate:"omitempty,gte=0"`
	Description      *string                 `json:"description"`
	Location         *string                 `json:"location"`
	District         *string                 `json:"district"`
	State            *string                 `json:"state"`
	Pincode          *string                 `json:"pincode"          validate:"omitempty,pincode"`
	ContactName      *string                 `json:"contactName"`
	ContactPhone     *string                 `json:"contactPhone"`
	ContactEmail     *string                 `json:"contactEmail"     validate:"omitempty,email"`
	DeliveryOptions  []domain.DeliveryOption `json:"deliveryOptions"`
	OrganicCertified *bool                   `json:"organicCertified"`
	Images           []string                `json:"images"           validate:"omitempty,dive,required"`
	SellerID         *string                 `json:"sellerId"         validate:"omitempty,hex32"`
}

func (h *ProductHandler) List(c echo.Context) error {
	f := domain.Filter{
		Category: domain.Category(c.QueryParam("category")),
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Status:   domain.Status(c.QueryParam("status")),
	}
	var err error
	if f.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return err
	}
	if f.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", p)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.uc.Create(c.Request().Context(), product.Input(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Product listed successfully", p)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req productReq
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), product.Input(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product updated successfully", p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product "+req.Status+" successfully", p)
}

func (h *ProductHandler) RecordInquiry(c echo.Context) error {
	p, err := h.uc.RecordInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Inquiry recorded", p)
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.Invalid(name, "must be a number")
	}
	return &v, nil
}
