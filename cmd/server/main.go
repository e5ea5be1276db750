// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/sellerstock/backend-go/internal/api"
	"github.com/andresuchdata/sellerstock/backend-go/internal/cache"
	"github.com/andresuchdata/sellerstock/backend-go/internal/config"
	"github.com/andresuchdata/sellerstock/backend-go/internal/forecast"
	"github.com/andresuchdata/sellerstock/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/andresuchdata/sellerstock/backend-go/internal/shipping"
	"github.com/andresuchdata/sellerstock/backend-go/internal/storage"
	"github.com/andresuchdata/sellerstock/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Report cache; falls back to a noop when redis is unreachable
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Report cache unavailable, running without cache")
		reportCache = cache.NewNoopReportCache()
	}

	// Label archive
	archive, err := storage.NewArchiveClient(storage.ArchiveConfig{
		Backend:   cfg.Storage.Backend,
		Directory: cfg.Storage.Directory,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize label archive")
	}

	// Repositories
	itemRepo := postgres.NewItemRepository(db)
	inventoryRepo := postgres.NewInventoryRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	saleRepo := postgres.NewSaleRepository(db)

	// Forecaster
	period := cfg.Forecast.SeasonalPeriod
	if period <= 0 {
		period = 52
	}
	forecaster := forecast.NewHoltWinters(period)

	// Carrier
	carrier := shipping.NewClient(shipping.Config{
		BaseURL:       cfg.Shipping.BaseURL,
		APIKey:        cfg.Shipping.APIKey,
		SecretKey:     cfg.Shipping.SecretKey,
		AccountNumber: cfg.Shipping.AccountNumber,
	})

	// Services
	services := &api.Services{
		Ledger:   service.NewLedgerService(itemRepo, inventoryRepo, listingRepo, reportCache),
		Sales:    service.NewSalesService(saleRepo, reportCache),
		Reports:  service.NewReportService(saleRepo, inventoryRepo, reportCache, forecaster, cfg.Forecast),
		Shipping: service.NewShippingService(carrier, archive),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
