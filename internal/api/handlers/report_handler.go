// backend-go/internal/api/handlers/report_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) MonthlyProfit(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := h.service.MonthlyProfit(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) InventoryHistory(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := h.service.InventoryHistory(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) SalesForecast(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	horizon := 0
	if raw := c.Query("horizon"); raw != "" {
		horizon, err = strconv.Atoi(raw)
		if err != nil || horizon <= 0 {
			respondError(c, domain.NewValidationError("horizon", "must be a positive integer"))
			return
		}
	}

	report, err := h.service.SalesForecast(c.Request.Context(), itemID, horizon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
