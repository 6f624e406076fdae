package http

import (
	"net/http"

	"agrifin-backend/internal/adapter/middleware"
	domain "agrifin-backend/internal/domain/user"
	"agrifin-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	Name     string      `json:"name"     validate:"required"`
	Email    string      `json:"email"    validate:"required,email"`
	Phone    string      `json:"phone"    validate:"omitempty,phone10"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role"     validate:"omitempty,oneof=farmer buyer admin"`
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileReq struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Phone *string `json:"phone" validate:"omitempty,phone10"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bind(c, &req); err != nil {
		return err
	}
	s, err := h.uc.Register(c.Request().Context(), auth.RegisterInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "User registered successfully", s)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return err
	}
	s, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Login successful", s)
}

func (h *AuthHandler) Profile(c echo.Context) error {
	u, err := h.uc.Profile(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", u)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CurrentUser(c).ID, auth.ProfileInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile updated successfully", u)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.uc.ChangePassword(c.Request().Context(), middleware.CurrentUser(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, out)
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *AuthHandler) ToggleUserStatus(c echo.Context) error {
	u, err := h.uc.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	msg := "User deactivated successfully"
	if u.IsActive {
		msg = "User activated successfully"
	}
	return respond(c, http.StatusOK, msg, u)
}
