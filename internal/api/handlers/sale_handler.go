// backend-go/internal/api/handlers/sale_handler.go
package handlers

import (
	"net/http"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	service *service.SalesService
}

func NewSaleHandler(service *service.SalesService) *SaleHandler {
	return &SaleHandler{service: service}
}

type saleRequest struct {
	Quantity int `json:"quantity"`
}

// RecordSale sells quantity units off the listing in the path.
func (h *SaleHandler) RecordSale(c *gin.Context) {
	listingID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	sale, err := h.service.RecordSale(c.Request.Context(), listingID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	sales, err := h.service.ListSales(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
