package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/infrastructure/auth"
	"github.com/salon/backend/internal/infrastructure/config"
	"github.com/salon/backend/internal/infrastructure/logger"
	"github.com/salon/backend/internal/interfaces/http/handler"
	"github.com/salon/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the router wires up
type Handlers struct {
	System      *handler.SystemHandler
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Category    *handler.CategoryHandler
	Client      *handler.ClientHandler
	Staff       *handler.StaffHandler
	Sale        *handler.SaleHandler
	Credit      *handler.CreditHandler
	Expense     *handler.ExpenseHandler
	PettyCash   *handler.PettyCashHandler
	Report      *handler.ReportHandler
	Appointment *handler.AppointmentHandler
}

// New builds the gin engine with middleware and all API routes.
// Everything under /api/v1 except login requires a valid token.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.RegisterCustomValidators()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtService))

	protected.GET("/system/info", h.System.Info)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.ListLowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.PATCH("/:id/stock", h.Product.AdjustStock)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.POST("", h.Category.Create)
		categories.GET("", h.Category.List)
		categories.PUT("/:id", h.Category.Rename)
		categories.DELETE("/:id", h.Category.Delete)
	}

	clients := protected.Group("/clients")
	{
		clients.POST("", h.Client.Create)
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	staff := protected.Group("/staff")
	{
		staff.POST("", h.Staff.Create)
		staff.GET("", h.Staff.List)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}

	sales := protected.Group("/sales")
	{
		sales.POST("", h.Sale.Create)
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/cancel", h.Sale.Cancel)
		sales.POST("/commission-discounts", h.Sale.AddCommissionDiscount)
		sales.DELETE("/commission-discounts/:staffId", h.Sale.ClearStaffCommissions)
		sales.GET("/commission-summary/:staffId", h.Sale.GetStaffCommissionSummary)
	}

	credits := protected.Group("/credits")
	{
		credits.POST("", h.Credit.Issue)
		credits.GET("", h.Credit.List)
		credits.GET("/:id", h.Credit.Get)
		credits.POST("/:id/payments", h.Credit.AddPayment)
		credits.DELETE("/:id", h.Credit.Delete)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	pettyCash := protected.Group("/petty-cash")
	{
		pettyCash.POST("/movements", h.PettyCash.AddMovement)
		pettyCash.GET("", h.PettyCash.Status)
		pettyCash.DELETE("/movements/:id", h.PettyCash.DeleteMovement)
		pettyCash.DELETE("", middleware.RequireRole("ADMIN"), h.PettyCash.Clear)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/income-statement", h.Report.IncomeStatement)
		reports.GET("/credits", h.Report.CreditProfitability)
		reports.GET("/inventory", h.Report.InventoryValuation)
	}

	appointments := protected.Group("/appointments")
	{
		appointments.POST("", h.Appointment.Create)
		appointments.GET("", h.Appointment.List)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PUT("/:id/reschedule", h.Appointment.Reschedule)
		appointments.POST("/:id/complete", h.Appointment.Complete)
		appointments.POST("/:id/cancel", h.Appointment.Cancel)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}

	return engine
}
