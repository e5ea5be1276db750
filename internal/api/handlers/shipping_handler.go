// backend-go/internal/api/handlers/shipping_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/service"
	"github.com/andresuchdata/sellerstock/backend-go/internal/shipping"
	"github.com/gin-gonic/gin"
)

type ShippingHandler struct {
	service *service.ShippingService
}

func NewShippingHandler(service *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{service: service}
}

func (h *ShippingHandler) GetRates(c *gin.Context) {
	var query shipping.RateQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	options, err := h.service.GetRates(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

type labelRequest struct {
	ServiceType string           `json:"service_type"`
	Shipper     shipping.Party   `json:"shipper"`
	Recipient   shipping.Party   `json:"recipient"`
	Package     shipping.Package `json:"package"`
}

// CreateLabel books the shipment and streams back the label PDF. The archive
// key is exposed in a header so clients can re-fetch the label later.
func (h *ShippingHandler) CreateLabel(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("body", "invalid json"))
		return
	}

	label, err := h.service.CreateLabel(c.Request.Context(), req.ServiceType, req.Shipper, req.Recipient, req.Package)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Label-Key", label.Key)
	c.Header("Content-Disposition", `attachment; filename="label.pdf"`)
	c.Data(http.StatusCreated, "application/pdf", label.PDF)
}

func (h *ShippingHandler) ListLabels(c *gin.Context) {
	labels, err := h.service.ListLabels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

func (h *ShippingHandler) GetLabel(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respondError(c, domain.NewValidationError("key", "must be provided"))
		return
	}
	if !strings.HasPrefix(key, "labels/") {
		key = "labels/" + key
	}

	pdf, err := h.service.GetLabel(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}
