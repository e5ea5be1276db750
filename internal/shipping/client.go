// backend-go/internal/shipping/client.go

// Package shipping talks to the FedEx REST API for rate quotes and
// shipping labels. Authentication uses the OAuth2 client-credentials
// flow; tokens are cached and refreshed by the oauth2 transport.
package shipping

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	ratePath = "/rate/v1/rates/quotes"
	shipPath = "/ship/v1/shipments"

	commitDateLayout = "2006-01-02T15:04:05"
)

// Config holds the carrier credentials and endpoint.
type Config struct {
	BaseURL       string
	APIKey        string
	SecretKey     string
	AccountNumber string
}

// Client is a FedEx REST client.
type Client struct {
	baseURL string
	account string
	http    *http.Client
}

// NewClient builds a client whose transport injects bearer tokens from
// the carrier's client-credentials endpoint.
func NewClient(cfg Config) *Client {
	cc := &clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.SecretKey,
		TokenURL:     strings.TrimRight(cfg.BaseURL, "/") + "/oauth/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		account: cfg.AccountNumber,
		http:    cc.Client(context.Background()),
	}
}

// GetRates quotes all available services for the given parcel.
func (c *Client) GetRates(ctx context.Context, query RateQuery) ([]RateOption, error) {
	payload := map[string]interface{}{
		"accountNumber": wireAccount{Value: c.account},
		"requestedShipment": map[string]interface{}{
			"shipper":         wireParty{Address: wireAddress{PostalCode: query.SenderZip, CountryCode: "US"}},
			"recipient":       wireParty{Address: wireAddress{PostalCode: query.RecipientZip, CountryCode: "US"}},
			"pickupType":      "DROPOFF_AT_FEDEX_LOCATION",
			"rateRequestType": []string{"ACCOUNT", "LIST"},
			"requestedPackageLineItems": []wireLineItem{
				{
					Weight: wireWeight{Units: "LB", Value: formatWeight(query.WeightLb)},
					Dimensions: &wireDimensions{
						Length: strconv.Itoa(query.LengthIn),
						Width:  strconv.Itoa(query.WidthIn),
						Height: strconv.Itoa(query.HeightIn),
						Units:  "IN",
					},
				},
			},
		},
	}

	body, err := c.post(ctx, ratePath, payload)
	if err != nil {
		return nil, err
	}

	var resp rateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	return parseRateResponse(&resp), nil
}

// CreateLabel books the shipment with the chosen service and returns
// the decoded PDF label bytes.
func (c *Client) CreateLabel(ctx context.Context, serviceType string, shipper, recipient Party, pkg Package) ([]byte, error) {
	payload := map[string]interface{}{
		"labelResponseOptions": "LABEL",
		"accountNumber":        wireAccount{Value: c.account},
		"requestedShipment": map[string]interface{}{
			"shipper":       partyToWire(shipper),
			"recipients":    []wireParty{partyToWire(recipient)},
			"serviceType":   serviceType,
			"packagingType": "YOUR_PACKAGING",
			"pickupType":    "DROPOFF_AT_FEDEX_LOCATION",
			"shippingChargesPayment": map[string]interface{}{
				"paymentType": "SENDER",
			},
			"labelSpecification": map[string]interface{}{
				"imageType":                "PDF",
				"labelStockType":           "PAPER_85X11_TOP_HALF_LABEL",
				"labelFormatType":          "COMMON2D",
				"labelPrintingOrientation": "TOP_EDGE_OF_TEXT_FIRST",
			},
			"requestedPackageLineItems": []wireLineItem{
				{
					Weight: wireWeight{Units: "LB", Value: formatWeight(pkg.WeightLb)},
					Dimensions: &wireDimensions{
						Length: strconv.Itoa(pkg.LengthIn),
						Width:  strconv.Itoa(pkg.WidthIn),
						Height: strconv.Itoa(pkg.HeightIn),
						Units:  "IN",
					},
				},
			},
		},
	}

	body, err := c.post(ctx, shipPath, payload)
	if err != nil {
		return nil, err
	}

	var resp shipResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode ship response: %w", err)
	}

	shipments := resp.Output.TransactionShipments
	if len(shipments) == 0 || len(shipments[0].PieceResponses) == 0 || len(shipments[0].PieceResponses[0].PackageDocuments) == 0 {
		return nil, fmt.Errorf("ship response contained no label document")
	}

	encoded := shipments[0].PieceResponses[0].PackageDocuments[0].EncodedLabel
	label, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode label document: %w", err)
	}
	return label, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-customer-transaction-id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("carrier request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read carrier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("Carrier returned non-OK status")
		return nil, fmt.Errorf("carrier returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// parseRateResponse flattens the carrier reply into rate options, with
// trademark glyphs stripped from service names.
func parseRateResponse(resp *rateResponse) []RateOption {
	options := make([]RateOption, 0, len(resp.Output.RateReplyDetails))
	for _, detail := range resp.Output.RateReplyDetails {
		if len(detail.RatedShipmentDetails) == 0 {
			continue
		}
		option := RateOption{
			ServiceType:      detail.ServiceType,
			ServiceName:      strings.ReplaceAll(detail.ServiceName, "®", ""),
			TotalCharge:      detail.RatedShipmentDetails[0].TotalNetCharge,
			SaturdayDelivery: detail.Commit.SaturdayDelivery,
		}
		if raw := detail.Commit.DateDetail.DayFormat; raw != "" {
			if ts, err := time.Parse(commitDateLayout, raw); err == nil {
				option.EstimatedDelivery = &ts
			}
		}
		options = append(options, option)
	}
	return options
}

func partyToWire(p Party) wireParty {
	return wireParty{
		Address: wireAddress{
			StreetLines:         []string{p.StreetAddress},
			City:                p.City,
			StateOrProvinceCode: p.State,
			PostalCode:          p.PostalCode,
			CountryCode:         "US",
			Residential:         p.Residential,
		},
		Contact: &wireContact{
			PersonName:  p.Name,
			PhoneNumber: p.Phone,
		},
	}
}

func formatWeight(lb float64) string {
	return strconv.FormatFloat(lb, 'f', -1, 64)
}
