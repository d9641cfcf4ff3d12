package fedex

import (
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/ports"
)

// Wire payloads for the Fedex web-services endpoint. Absent participant
// fields marshal as empty strings; the carrier treats them as not provided.

type authPayload struct {
	Key           string `json:"key"`
	Password      string `json:"password"`
	AccountNumber string `json:"accountNumber"`
	MeterNumber   string `json:"meterNumber"`
}

type contactPayload struct {
	PersonName  string   `json:"personName,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Emails      []string `json:"emailAddresses,omitempty"`
}

type addressPayload struct {
	StreetLines         []string `json:"streetLines,omitempty"`
	City                string   `json:"city,omitempty"`
	StateOrProvinceCode string   `json:"stateOrProvinceCode,omitempty"`
	PostalCode          string   `json:"postalCode,omitempty"`
	CountryCode         string   `json:"countryCode,omitempty"`
}

type participantPayload struct {
	Contact contactPayload `json:"contact"`
	Address addressPayload `json:"address"`
}

type itemPayload struct {
	ItemCode string  `json:"itemCode"`
	ItemName string  `json:"itemName"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type createShipmentRequest struct {
	Auth              authPayload        `json:"auth"`
	CustomerReference string             `json:"customerReference"`
	Shipper           participantPayload `json:"shipper"`
	Recipient         participantPayload `json:"recipient"`
	Items             []itemPayload      `json:"items"`
}

type createShipmentResponse struct {
	TrackingNumber string `json:"trackingNumber"`
}

type cancelShipmentRequest struct {
	Auth              authPayload `json:"auth"`
	CustomerReference string      `json:"customerReference"`
}

type cancelShipmentResponse struct {
	Cancelled bool `json:"cancelledShipment"`
}

type trackShipmentRequest struct {
	Auth           authPayload `json:"auth"`
	TrackingNumber string      `json:"trackingNumber"`
}

type trackShipmentResponse struct {
	StatusCode string `json:"statusCode"`
}

func participantToPayload(p participant.Participant) participantPayload {
	return participantPayload{
		Contact: contactPayload{
			PersonName:  stringOrEmpty(p.Contact.PersonName),
			CompanyName: stringOrEmpty(p.Contact.CompanyName),
			PhoneNumber: stringOrEmpty(p.Contact.PhoneNumber),
			Emails:      p.Contact.Emails,
		},
		Address: addressPayload{
			StreetLines:         p.Address.StreetLines,
			City:                stringOrEmpty(p.Address.City),
			StateOrProvinceCode: stringOrEmpty(p.Address.StateOrProvinceCode),
			PostalCode:          stringOrEmpty(p.Address.PostalCode),
			CountryCode:         stringOrEmpty(p.Address.CountryCode),
		},
	}
}

func itemsToPayload(items []ports.DeliveryItemRow) []itemPayload {
	payload := make([]itemPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, itemPayload{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			Quantity: item.Qty,
			Unit:     stringOrEmpty(item.UOM),
		})
	}

	return payload
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
