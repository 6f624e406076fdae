package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "AgriFin API"
	serviceVersion = "1.0.0"
)

type Handler struct{ started time.Time }

func NewHandler() *Handler { return &Handler{started: time.Now()} }

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
		"uptime": time.Since(h.started).Seconds(),
	})
}
