package shipping

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carrierStub serves the token endpoint plus canned rate/ship replies.
func carrierStub(t *testing.T, rateBody, shipBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc(ratePath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("x-customer-transaction-id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rateBody))
	})
	mux.HandleFunc(shipPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(shipBody))
	})
	return httptest.NewServer(mux)
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:       srv.URL,
		APIKey:        "key",
		SecretKey:     "secret",
		AccountNumber: "123456789",
	})
}

const sampleRateBody = `{
  "output": {
    "rateReplyDetails": [
      {
        "serviceType": "FEDEX_GROUND",
        "serviceName": "FedEx Ground®",
        "ratedShipmentDetails": [{"totalNetCharge": 12.45}],
        "commit": {
          "saturdayDelivery": false,
          "dateDetail": {"dayFormat": "2024-06-14T17:00:00"}
        }
      },
      {
        "serviceType": "PRIORITY_OVERNIGHT",
        "serviceName": "FedEx Priority Overnight®",
        "ratedShipmentDetails": [{"totalNetCharge": 54.30}],
        "commit": {"saturdayDelivery": true, "dateDetail": {"dayFormat": ""}}
      },
      {
        "serviceType": "NO_RATE",
        "serviceName": "Unrated Service",
        "ratedShipmentDetails": []
      }
    ]
  }
}`

func TestGetRates(t *testing.T) {
	srv := carrierStub(t, sampleRateBody, "{}")
	defer srv.Close()

	options, err := testClient(srv).GetRates(context.Background(), RateQuery{
		SenderZip:    "55401",
		RecipientZip: "10001",
		WeightLb:     2.5,
		LengthIn:     10,
		WidthIn:      8,
		HeightIn:     4,
	})
	require.NoError(t, err)
	require.Len(t, options, 2, "detail without rated amounts is skipped")

	assert.Equal(t, "FEDEX_GROUND", options[0].ServiceType)
	assert.Equal(t, "FedEx Ground", options[0].ServiceName, "trademark glyph stripped")
	assert.Equal(t, 12.45, options[0].TotalCharge)
	assert.False(t, options[0].SaturdayDelivery)
	require.NotNil(t, options[0].EstimatedDelivery)
	assert.Equal(t, time.Date(2024, time.June, 14, 17, 0, 0, 0, time.UTC), *options[0].EstimatedDelivery)

	assert.Equal(t, "PRIORITY_OVERNIGHT", options[1].ServiceType)
	assert.True(t, options[1].SaturdayDelivery)
	assert.Nil(t, options[1].EstimatedDelivery)
}

func TestCreateLabel(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake label")
	shipBody, _ := json.Marshal(map[string]interface{}{
		"output": map[string]interface{}{
			"transactionShipments": []map[string]interface{}{
				{
					"pieceResponses": []map[string]interface{}{
						{
							"packageDocuments": []map[string]interface{}{
								{"encodedLabel": base64.StdEncoding.EncodeToString(pdf)},
							},
						},
					},
				},
			},
		},
	})

	srv := carrierStub(t, "{}", string(shipBody))
	defer srv.Close()

	shipper := Party{Name: "Warehouse", Phone: "5551230000", StreetAddress: "1 Dock St", City: "Minneapolis", State: "MN", PostalCode: "55401"}
	recipient := Party{Name: "Buyer", Phone: "5559870000", StreetAddress: "2 Home Ave", City: "New York", State: "NY", PostalCode: "10001", Residential: true}

	label, err := testClient(srv).CreateLabel(context.Background(), "FEDEX_GROUND", shipper, recipient, Package{WeightLb: 2.5, LengthIn: 10, WidthIn: 8, HeightIn: 4})
	require.NoError(t, err)
	assert.Equal(t, pdf, label)
}

func TestCreateLabelNoDocument(t *testing.T) {
	srv := carrierStub(t, "{}", `{"output":{"transactionShipments":[]}}`)
	defer srv.Close()

	_, err := testClient(srv).CreateLabel(context.Background(), "FEDEX_GROUND", Party{}, Party{}, Package{})
	assert.ErrorContains(t, err, "no label document")
}

func TestGetRatesCarrierError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc(ratePath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"RATE.ERROR"}]}`, http.StatusBadRequest)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv).GetRates(context.Background(), RateQuery{SenderZip: "55401", RecipientZip: "10001", WeightLb: 1})
	assert.ErrorContains(t, err, "status 400")
}
