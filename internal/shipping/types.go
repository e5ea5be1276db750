// backend-go/internal/shipping/types.go
package shipping

import "time"

// RateQuery carries the minimum the carrier needs to quote a shipment.
type RateQuery struct {
	SenderZip    string  `json:"sender_zip"`
	RecipientZip string  `json:"recipient_zip"`
	WeightLb     float64 `json:"weight_lb"`
	LengthIn     int     `json:"length_in"`
	WidthIn      int     `json:"width_in"`
	HeightIn     int     `json:"height_in"`
}

// RateOption is one quoted service.
type RateOption struct {
	ServiceType       string     `json:"service_type"`
	ServiceName       string     `json:"service_name"`
	TotalCharge       float64    `json:"total_cost"`
	SaturdayDelivery  bool       `json:"saturday_delivery"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// Party is a sender or recipient address block.
type Party struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Residential   bool   `json:"residential"`
}

// Package describes the parcel being labeled.
type Package struct {
	WeightLb float64 `json:"weight_lb"`
	LengthIn int     `json:"length_in"`
	WidthIn  int     `json:"width_in"`
	HeightIn int     `json:"height_in"`
}

// Carrier wire format below. Only the fields the app reads are modeled.

type rateResponse struct {
	Output struct {
		RateReplyDetails []rateReplyDetail `json:"rateReplyDetails"`
	} `json:"output"`
}

type rateReplyDetail struct {
	ServiceType          string `json:"serviceType"`
	ServiceName          string `json:"serviceName"`
	RatedShipmentDetails []struct {
		TotalNetCharge float64 `json:"totalNetCharge"`
	} `json:"ratedShipmentDetails"`
	Commit struct {
		SaturdayDelivery bool `json:"saturdayDelivery"`
		DateDetail       struct {
			DayFormat string `json:"dayFormat"`
		} `json:"dateDetail"`
	} `json:"commit"`
}

type shipResponse struct {
	Output struct {
		TransactionShipments []struct {
			PieceResponses []struct {
				PackageDocuments []struct {
					EncodedLabel string `json:"encodedLabel"`
				} `json:"packageDocuments"`
			} `json:"pieceResponses"`
		} `json:"transactionShipments"`
	} `json:"output"`
}

type wireAddress struct {
	PostalCode          string   `json:"postalCode"`
	CountryCode         string   `json:"countryCode"`
	StateOrProvinceCode string   `json:"stateOrProvinceCode,omitempty"`
	City                string   `json:"city,omitempty"`
	StreetLines         []string `json:"streetLines,omitempty"`
	Residential         bool     `json:"residential"`
}

type wireContact struct {
	PersonName  string `json:"personName"`
	PhoneNumber string `json:"phoneNumber"`
}

type wireParty struct {
	Address wireAddress  `json:"address"`
	Contact *wireContact `json:"contact,omitempty"`
}

type wireWeight struct {
	Units string `json:"units"`
	Value string `json:"value"`
}

type wireDimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Units  string `json:"units"`
}

type wireLineItem struct {
	Weight     wireWeight      `json:"weight"`
	Dimensions *wireDimensions `json:"dimensions,omitempty"`
}

type wireAccount struct {
	Value string `json:"value"`
}
