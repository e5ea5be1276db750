// backend-go/internal/service/shipping_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/shipping"
	"github.com/andresuchdata/sellerstock/backend-go/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Carrier is the slice of the shipping client this service depends on.
type Carrier interface {
	GetRates(ctx context.Context, query shipping.RateQuery) ([]shipping.RateOption, error)
	CreateLabel(ctx context.Context, serviceType string, shipper, recipient shipping.Party, pkg shipping.Package) ([]byte, error)
}

// ShippingService quotes rates and books labels, archiving every generated
// label PDF to the object store.
type ShippingService struct {
	carrier Carrier
	archive storage.ObjectStorage
}

func NewShippingService(carrier Carrier, archive storage.ObjectStorage) *ShippingService {
	return &ShippingService{carrier: carrier, archive: archive}
}

func (s *ShippingService) GetRates(ctx context.Context, query shipping.RateQuery) ([]shipping.RateOption, error) {
	if strings.TrimSpace(query.SenderZip) == "" {
		return nil, domain.NewValidationError("sender_zip", "must be provided")
	}
	if strings.TrimSpace(query.RecipientZip) == "" {
		return nil, domain.NewValidationError("recipient_zip", "must be provided")
	}
	if query.WeightLb <= 0 {
		return nil, domain.NewValidationError("weight_lb", "must be positive")
	}
	return s.carrier.GetRates(ctx, query)
}

// Label is a booked shipping label with its archive location.
type Label struct {
	Key string `json:"key"`
	PDF []byte `json:"-"`
}

func (s *ShippingService) CreateLabel(ctx context.Context, serviceType string, shipper, recipient shipping.Party, pkg shipping.Package) (*Label, error) {
	if strings.TrimSpace(serviceType) == "" {
		return nil, domain.NewValidationError("service_type", "must be provided")
	}
	if pkg.WeightLb <= 0 {
		return nil, domain.NewValidationError("weight_lb", "must be positive")
	}

	pdf, err := s.carrier.CreateLabel(ctx, serviceType, shipper, recipient, pkg)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("labels/%s-%s.pdf", time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	if err := s.archive.PutObject(ctx, key, pdf); err != nil {
		// The customer still gets their label; the archive copy is lost.
		log.Error().Err(err).Str("key", key).Msg("failed to archive shipping label")
	}

	return &Label{Key: key, PDF: pdf}, nil
}

// ListLabels returns the archived label objects.
func (s *ShippingService) ListLabels(ctx context.Context) ([]storage.ObjectInfo, error) {
	return s.archive.ListObjects(ctx, "labels/")
}

// GetLabel fetches one archived label PDF by key.
func (s *ShippingService) GetLabel(ctx context.Context, key string) ([]byte, error) {
	return s.archive.GetObject(ctx, key)
}
