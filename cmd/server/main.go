package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/salon/backend/internal/application/catalog"
	creditapp "github.com/salon/backend/internal/application/credit"
	financeapp "github.com/salon/backend/internal/application/finance"
	identityapp "github.com/salon/backend/internal/application/identity"
	partnerapp "github.com/salon/backend/internal/application/partner"
	reportapp "github.com/salon/backend/internal/application/report"
	salesapp "github.com/salon/backend/internal/application/sales"
	schedulingapp "github.com/salon/backend/internal/application/scheduling"
	"github.com/salon/backend/internal/infrastructure/auth"
	"github.com/salon/backend/internal/infrastructure/config"
	"github.com/salon/backend/internal/infrastructure/logger"
	"github.com/salon/backend/internal/infrastructure/persistence"
	"github.com/salon/backend/internal/interfaces/http/handler"
	"github.com/salon/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting salon backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, gormlogger.Warn)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	adminUser := os.Getenv("SALON_ADMIN_USERNAME")
	adminPass := os.Getenv("SALON_ADMIN_PASSWORD")
	if adminUser == "" {
		adminUser = "admin"
	}
	if adminPass == "" {
		adminPass = "admin123"
	}
	if err := persistence.SeedAdminUser(db.DB, adminUser, adminPass); err != nil {
		log.Fatal("Failed to seed admin user", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	creditRepo := persistence.NewGormCreditRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	pettyCashRepo := persistence.NewGormPettyCashRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	appointmentRepo := persistence.NewGormAppointmentRepository(db.DB)

	// Transaction scopes
	salesScope := persistence.NewGormSalesTransactionScope(db.DB)
	creditScope := persistence.NewGormCreditTransactionScope(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	clientService := partnerapp.NewClientService(clientRepo)
	staffService := partnerapp.NewStaffService(staffRepo)
	salesService := salesapp.NewSalesService(saleRepo, staffRepo, salesScope)
	creditService := creditapp.NewCreditService(creditRepo, productRepo, creditScope)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	pettyCashService := financeapp.NewPettyCashService(pettyCashRepo)
	financialReportService := reportapp.NewFinancialReportService(saleRepo, expenseRepo)
	creditReportService := reportapp.NewCreditReportService(creditRepo)
	inventoryReportService := reportapp.NewInventoryReportService(productRepo)
	appointmentService := schedulingapp.NewAppointmentService(appointmentRepo, staffRepo)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		System:      handler.NewSystemHandler(),
		Auth:        handler.NewAuthHandler(authService),
		Product:     handler.NewProductHandler(productService),
		Category:    handler.NewCategoryHandler(categoryService),
		Client:      handler.NewClientHandler(clientService),
		Staff:       handler.NewStaffHandler(staffService),
		Sale:        handler.NewSaleHandler(salesService),
		Credit:      handler.NewCreditHandler(creditService),
		Expense:     handler.NewExpenseHandler(expenseService),
		PettyCash:   handler.NewPettyCashHandler(pettyCashService),
		Report:      handler.NewReportHandler(financialReportService, creditReportService, inventoryReportService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
