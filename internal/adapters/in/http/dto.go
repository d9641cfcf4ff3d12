package http

import (
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/ports"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentNoteRequest is the payload for creating a shipment note.
type CreateShipmentNoteRequest struct {
	DeliveryNoteID string `json:"deliveryNoteId"`
	Carrier        string `json:"carrier"`
}

// CreatedResponse reports the identifier assigned to a newly created record.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ContactResponse mirrors the contact half of an assembled participant.
// Absent fields are omitted rather than serialized as empty strings.
type ContactResponse struct {
	PersonName  *string  `json:"personName,omitempty"`
	CompanyName *string  `json:"companyName,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Emails      []string `json:"emails,omitempty"`
}

// AddressResponse mirrors the address half of an assembled participant.
type AddressResponse struct {
	StreetLines         []string `json:"streetLines,omitempty"`
	City                *string  `json:"city,omitempty"`
	StateOrProvinceCode *string  `json:"stateOrProvinceCode,omitempty"`
	PostalCode          *string  `json:"postalCode,omitempty"`
	Country             *string  `json:"country,omitempty"`
	CountryCode         *string  `json:"countryCode,omitempty"`
}

// ParticipantResponse is the read model of an assembled shipper or recipient.
type ParticipantResponse struct {
	Contact ContactResponse `json:"contact"`
	Address AddressResponse `json:"address"`
}

// DeliveryItemResponse is the read model of one delivery note line item.
type DeliveryItemResponse struct {
	ItemCode string  `json:"itemCode"`
	ItemName string  `json:"itemName"`
	Qty      float64 `json:"qty"`
	UOM      *string `json:"uom,omitempty"`
}

func participantToResponse(p participant.Participant) ParticipantResponse {
	return ParticipantResponse{
		Contact: ContactResponse{
			PersonName:  p.Contact.PersonName,
			CompanyName: p.Contact.CompanyName,
			PhoneNumber: p.Contact.PhoneNumber,
			Emails:      p.Contact.Emails,
		},
		Address: AddressResponse{
			StreetLines:         p.Address.StreetLines,
			City:                p.Address.City,
			StateOrProvinceCode: p.Address.StateOrProvinceCode,
			PostalCode:          p.Address.PostalCode,
			Country:             p.Address.Country,
			CountryCode:         p.Address.CountryCode,
		},
	}
}

func itemsToResponse(items []ports.DeliveryItemRow) []DeliveryItemResponse {
	response := make([]DeliveryItemResponse, len(items))
	for i, item := range items {
		response[i] = DeliveryItemResponse{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			Qty:      item.Qty,
			UOM:      item.UOM,
		}
	}

	return response
}
