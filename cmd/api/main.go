package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/bootstrap"
	"github.com/sangkips/laundrypro-api/internal/config"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/handler"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/middleware"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/routes"
	"github.com/sangkips/laundrypro-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open remote backend and local fallback store
	stack, err := bootstrap.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open persistence: %v", err)
	}
	defer stack.Close()

	calendar := stack.Calendar

	// Initialize services
	catalogService := service.NewCatalogService(stack.Store)
	orderService := service.NewOrderService(stack.Store, calendar)
	ledgerService := service.NewLedgerService(stack.Store, calendar)
	dashboardService := service.NewDashboardService(stack.Store, orderService, calendar)
	settingsService := service.NewSettingsService(stack.Store)

	// Initialize thermal printer
	ticketPrinter, err := printer.Open(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
		Width:   cfg.Printer.Width,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		ticketPrinter = printer.None()
	}
	printerService := service.NewPrinterService(ticketPrinter, stack.Store, orderService, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Health:    handler.NewHealthHandler(cfg.App.Name, stack.Store),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Order:     handler.NewOrderHandler(orderService, printerService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService, orderService),
	}

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.NewRateLimiterConfig(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: stack.Local.IdempotencyKeys(),
		RateLimiter:     rateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, stack)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// purgeIdempotencyKeys drops expired keys once an hour
func purgeIdempotencyKeys(ctx context.Context, stack *bootstrap.Stack) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := stack.Local.IdempotencyKeys().DeleteExpired(ctx); err != nil {
				log.Printf("[idempotency] cleanup failed: %v", err)
			}
		}
	}
}
