// backend-go/internal/api/handlers/listing_handler.go
package handlers

import (
	"net/http"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ListingHandler struct {
	service *service.LedgerService
}

func NewListingHandler(service *service.LedgerService) *ListingHandler {
	return &ListingHandler{service: service}
}

type listingRequest struct {
	ItemID    int64           `json:"item_id"`
	Quantity  int             `json:"quantity"`
	Website   string          `json:"website"`
	URL       string          `json:"url"`
	Status    string          `json:"status"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (r *listingRequest) toDomain(id int64) *domain.Listing {
	return &domain.Listing{
		ID:        id,
		ItemID:    r.ItemID,
		Quantity:  r.Quantity,
		Website:   r.Website,
		URL:       r.URL,
		Status:    r.Status,
		UnitPrice: r.UnitPrice,
	}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	listing := req.toDomain(0)
	if err := h.service.CreateListing(c.Request.Context(), listing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	listing, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	itemID, err := queryItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	listings, err := h.service.ListListings(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	listing := req.toDomain(id)
	if err := h.service.UpdateListing(c.Request.Context(), listing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
