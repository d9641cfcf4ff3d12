// Package carriershipmentrepo provides data transfer objects and mapping
// functions for carrier shipment persistence.
package carriershipmentrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierShipmentDTO represents the database structure for persisting carrier
// shipments. The participant snapshot captured at booking is stored as text
// array columns, so the submitted street lines and emails survive later edits
// to the source rows.
type CarrierShipmentDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ShipmentNoteID       uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	Carrier              string         `gorm:"type:varchar(32)"`
	TrackingNumber       *string        `gorm:"type:varchar(64)"`
	ShipperStreetLines   pq.StringArray `gorm:"type:text[]"`
	RecipientStreetLines pq.StringArray `gorm:"type:text[]"`
	RecipientEmails      pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for carrier shipment entities.
func (CarrierShipmentDTO) TableName() string {
	return "carrier_shipments"
}

// fromDomain converts a carrier shipment aggregate to its database representation.
func fromDomain(cs *shipment.CarrierShipment) CarrierShipmentDTO {
	return CarrierShipmentDTO{
		ID:                   cs.ID().Bytes(),
		ShipmentNoteID:       cs.ShipmentNoteID().Bytes(),
		Carrier:              cs.Carrier().String(),
		TrackingNumber:       cs.TrackingNumber(),
		ShipperStreetLines:   pq.StringArray(cs.ShipperStreetLines()),
		RecipientStreetLines: pq.StringArray(cs.RecipientStreetLines()),
		RecipientEmails:      pq.StringArray(cs.RecipientEmails()),
	}
}

// toDomain converts a database DTO to a carrier shipment aggregate.
// Reconstructs the complete record using RestoreCarrierShipment.
func toDomain(dto CarrierShipmentDTO) (*shipment.CarrierShipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentNoteID, err := kernel.UUIDFromBytes(dto.ShipmentNoteID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreCarrierShipment(
		id,
		shipmentNoteID,
		shipment.Carrier(dto.Carrier),
		dto.TrackingNumber,
		[]string(dto.ShipperStreetLines),
		[]string(dto.RecipientStreetLines),
		[]string(dto.RecipientEmails),
	)
}
