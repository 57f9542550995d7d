package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/constants"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/logger"
	"github.com/yukikurage/erp-api/internal/middleware"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/services"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Identity  *services.IdentityService
	Auth      *services.AuthService
	Settings  *services.SettingsService
	Inventory *services.InventoryService
	HR        *services.HRService
	Finance   *services.FinanceService
	Reports   *services.ReportService
}

// RouterConfig carries the transport pieces chosen at startup.
type RouterConfig struct {
	Log          zerolog.Logger
	SessionStore sessions.Store
	Provider     identity.Provider
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(rc RouterConfig, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.RequestLogger(rc.Log))
	r.Use(sessions.Sessions(constants.SessionCookieName, rc.SessionStore))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ERP API is running",
		})
	})

	authHandler := NewAuthHandler(svc.Auth)
	settingsHandler := NewSettingsHandler(svc.Settings)
	inventoryHandler := NewInventoryHandler(svc.Inventory)
	hrHandler := NewHRHandler(svc.HR)
	financeHandler := NewFinanceHandler(svc.Finance)
	reportHandler := NewReportHandler(svc.Reports)

	resolveTenant := middleware.ResolveTenant(rc.Provider, svc.Identity)

	api := r.Group("/api")
	api.Use(middleware.NoStore())
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", resolveTenant, authHandler.GetCurrentUser)
		}

		// Tenant routes: reads answer empty without a session, writes need one
		tenant := api.Group("")
		tenant.Use(resolveTenant)
		{
			tenant.GET("/settings", settingsHandler.GetSettings)
			tenant.PUT("/settings", middleware.RequireTenant(), settingsHandler.UpdateSettings)

			tenant.GET("/products", inventoryHandler.ListProducts)
			tenant.POST("/products", middleware.RequireTenant(), inventoryHandler.CreateProduct)
			tenant.DELETE("/products/:id", middleware.RequireTenant(), inventoryHandler.DeleteProduct)

			tenant.GET("/employees", hrHandler.ListEmployees)
			tenant.POST("/employees", middleware.RequireRole(models.RoleOwner, models.RoleManager), hrHandler.CreateEmployee)

			tenant.GET("/transactions", financeHandler.ListTransactions)
			tenant.GET("/transactions/summary", financeHandler.GetSummary)
			tenant.POST("/transactions", middleware.RequireTenant(), financeHandler.CreateTransaction)

			tenant.GET("/dashboard", reportHandler.GetDashboard)
			tenant.GET("/reports", reportHandler.GetReports)
		}
	}

	return r
}
