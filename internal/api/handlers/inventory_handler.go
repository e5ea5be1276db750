// backend-go/internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	service *service.LedgerService
}

func NewInventoryHandler(service *service.LedgerService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type lotRequest struct {
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Location string          `json:"location"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// AddLot nets the posted entry into an existing lot at the same location, or
// creates a new one. The response carries the resulting lot either way.
func (h *InventoryHandler) AddLot(c *gin.Context) {
	var req lotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	lot := &domain.InventoryLot{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Location: req.Location,
		UnitCost: req.UnitCost,
	}
	if err := h.service.AddLot(c.Request.Context(), lot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lot)
}

func (h *InventoryHandler) GetLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	lot, err := h.service.GetLot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *InventoryHandler) ListLots(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	lots, err := h.service.ListLots(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *InventoryHandler) UpdateLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req lotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	lot := &domain.InventoryLot{
		ID:       id,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Location: req.Location,
		UnitCost: req.UnitCost,
	}
	if err := h.service.UpdateLot(c.Request.Context(), lot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *InventoryHandler) DeleteLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.DeleteLot(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (h *InventoryHandler) ExportCSV(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := h.service.ExportInventoryCSV(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
