package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/config"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/handler"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Health    *handler.HealthHandler
	Catalog   *handler.CatalogHandler
	Order     *handler.OrderHandler
	Ledger    *handler.LedgerHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	// RateLimiter is optional; nil disables rate limiting
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoints
	router.GET("/health", h.Health.Health)
	router.GET("/health/backend", h.Health.Backend)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerServiceRoutes(v1, h)
	registerOrderRoutes(v1, h, deps)
	registerLedgerRoutes(v1, h)
	registerReportRoutes(v1, h)

	// Settings
	v1.GET("/settings", h.Settings.GetSettings)
	v1.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	v1.GET("/dashboard", h.Dashboard.GetStats)

	// Printer
	v1.GET("/printer/status", h.Printer.GetStatus)
	v1.GET("/printed-invoices", h.Printer.ListPrinted)

	return router
}

func registerServiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	services := v1.Group("/services")
	{
		services.GET("", h.Catalog.List)
		services.POST("", h.Catalog.Create)
		services.GET("/:id", h.Catalog.Get)
		services.PUT("/:id", h.Catalog.Update)
		services.DELETE("/:id", h.Catalog.Delete)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order intake uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/advance", h.Order.Advance)
		orders.POST("/:id/deliver", h.Order.Deliver)
		orders.PUT("/:id/delivery-date", h.Order.SetDeliveryDate)
		orders.POST("/:id/print", h.Order.Print)
	}
}

func registerLedgerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	incomes := v1.Group("/incomes")
	{
		incomes.GET("", h.Ledger.ListIncomes)
		incomes.POST("", h.Ledger.CreateIncome)
		incomes.GET("/:id", h.Ledger.GetIncome)
		incomes.PUT("/:id", h.Ledger.UpdateIncome)
		incomes.DELETE("/:id", h.Ledger.DeleteIncome)
	}

	expenses := v1.Group("/expenses")
	{
		expenses.GET("", h.Ledger.ListExpenses)
		expenses.POST("", h.Ledger.CreateExpense)
		expenses.GET("/:id", h.Ledger.GetExpense)
		expenses.PUT("/:id", h.Ledger.UpdateExpense)
		expenses.DELETE("/:id", h.Ledger.DeleteExpense)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/daily", h.Dashboard.Daily)
		reports.GET("/range", h.Dashboard.Range)
		reports.GET("/monthly", h.Dashboard.Monthly)
	}
}
