// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/api/handlers"
	"github.com/andresuchdata/sellerstock/backend-go/internal/api/middleware"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Ledger   *service.LedgerService
	Sales    *service.SalesService
	Reports  *service.ReportService
	Shipping *service.ShippingService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Ledger != nil {
			itemHandler := handlers.NewItemHandler(services.Ledger)
			itemGroup := apiGroup.Group("/items")
			{
				itemGroup.POST("", itemHandler.CreateItem)
				itemGroup.GET("", itemHandler.ListItems)
				itemGroup.GET("/:id", itemHandler.GetItem)
				itemGroup.PUT("/:id", itemHandler.UpdateItem)
				itemGroup.DELETE("/:id", itemHandler.DeleteItem)
			}

			inventoryHandler := handlers.NewInventoryHandler(services.Ledger)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.POST("", inventoryHandler.AddLot)
				inventoryGroup.GET("", inventoryHandler.ListLots)
				inventoryGroup.GET("/export", inventoryHandler.ExportCSV)
				inventoryGroup.GET("/transactions", inventoryHandler.ListTransactions)
				inventoryGroup.GET("/:id", inventoryHandler.GetLot)
				inventoryGroup.PUT("/:id", inventoryHandler.UpdateLot)
				inventoryGroup.DELETE("/:id", inventoryHandler.DeleteLot)
			}

			listingHandler := handlers.NewListingHandler(services.Ledger)
			listingGroup := apiGroup.Group("/listings")
			{
				listingGroup.POST("", listingHandler.CreateListing)
				listingGroup.GET("", listingHandler.ListListings)
				listingGroup.GET("/:id", listingHandler.GetListing)
				listingGroup.PUT("/:id", listingHandler.UpdateListing)
				listingGroup.DELETE("/:id", listingHandler.DeleteListing)
			}
		}

		if services.Sales != nil {
			saleHandler := handlers.NewSaleHandler(services.Sales)
			apiGroup.POST("/listings/:id/sales", saleHandler.RecordSale)
			apiGroup.GET("/sales", saleHandler.ListSales)
		}

		if services.Reports != nil {
			reportHandler := handlers.NewReportHandler(services.Reports)
			reportGroup := apiGroup.Group("/reports")
			{
				reportGroup.GET("/profit", reportHandler.MonthlyProfit)
				reportGroup.GET("/inventory", reportHandler.InventoryHistory)
				reportGroup.GET("/forecast", reportHandler.SalesForecast)
			}
		}

		if services.Shipping != nil {
			shippingHandler := handlers.NewShippingHandler(services.Shipping)
			shippingGroup := apiGroup.Group("/shipping")
			{
				shippingGroup.POST("/rates", shippingHandler.GetRates)
				shippingGroup.POST("/labels", shippingHandler.CreateLabel)
				shippingGroup.GET("/labels", shippingHandler.ListLabels)
				shippingGroup.GET("/labels/*key", shippingHandler.GetLabel)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
