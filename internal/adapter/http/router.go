package http

import (
	"agrifin-backend/internal/adapter/middleware"
	"agrifin-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes bundles what Register mounts.
type Routes struct {
	Health   *Handler
	Farmers  *FarmerHandler
	Loans    *LoanHandler
	Products *ProductHandler
	Auth     *AuthHandler

	// Authenticator guards the account routes.
	Authenticator middleware.Authenticator
	// Gatherer, when set, is exposed on GET /metrics.
	Gatherer prometheus.Gatherer
}

// Register mounts the public API on e.
func Register(e *echo.Echo, r Routes) {
	e.GET("/", r.Health.Root)
	e.GET("/health", r.Health.Health)
	if r.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api")

	f := api.Group("/farmers")
	f.GET("", r.Farmers.List)
	f.POST("", r.Farmers.Create)
	f.GET("/:id", r.Farmers.Get)
	f.PUT("/:id", r.Farmers.Update)
	f.DELETE("/:id", r.Farmers.Delete)
	f.POST("/:id/recommendations", r.Farmers.AddRecommendation)

	l := api.Group("/loans")
	l.GET("", r.Loans.List)
	l.POST("", r.Loans.Create)
	l.GET("/:id", r.Loans.Get)
	l.PATCH("/:id/status", r.Loans.UpdateStatus)

	p := api.Group("/products")
	p.GET("", r.Products.List)
	p.POST("", r.Products.Create)
	p.GET("/:id", r.Products.Get)
	p.PUT("/:id", r.Products.Update)
	p.DELETE("/:id", r.Products.Delete)
	p.PATCH("/:id/status", r.Products.UpdateStatus)
	p.POST("/:id/inquiry", r.Products.RecordInquiry)

	a := api.Group("/auth")
	a.POST("/register", r.Auth.Register)
	a.POST("/login", r.Auth.Login)

	signedIn := middleware.Auth(r.Authenticator)
	a.GET("/profile", r.Auth.Profile, signedIn)
	a.PUT("/profile", r.Auth.UpdateProfile, signedIn)
	a.PUT("/change-password", r.Auth.ChangePassword, signedIn)

	admin := a.Group("/users", signedIn, middleware.RequireRole(user.RoleAdmin))
	admin.GET("", r.Auth.ListUsers)
	admin.DELETE("/:id", r.Auth.DeleteUser)
	admin.PATCH("/:id/status", r.Auth.ToggleUserStatus)
}
