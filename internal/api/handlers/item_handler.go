// backend-go/internal/api/handlers/item_handler.go
package handlers

import (
	"net/http"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	service *service.LedgerService
}

func NewItemHandler(service *service.LedgerService) *ItemHandler {
	return &ItemHandler{service: service}
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	item := &domain.Item{Name: req.Name, Description: req.Description}
	if err := h.service.CreateItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	item := &domain.Item{ID: id, Name: req.Name, Description: req.Description}
	if err := h.service.UpdateItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
