// Package shipmentnoterepo provides data transfer objects and mapping functions
// for shipment note persistence. This package implements the repository pattern
// for the shipment note aggregate, handling the conversion between domain
// entities and database representations.
package shipmentnoterepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentNoteDTO represents the database structure for persisting shipment
// note aggregates. Indexed by status for the tracking job's polling query
// and by delivery note for back-reference lookups.
type ShipmentNoteDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryNoteID uuid.UUID `gorm:"type:uuid;index"`
	Carrier        string    `gorm:"type:varchar(32)"`
	Status         int       `gorm:"index"`
}

// TableName specifies the database table name for shipment note entities.
// Overrides GORM's default naming convention to use "shipment_notes".
func (ShipmentNoteDTO) TableName() string {
	return "shipment_notes"
}

// fromDomain converts a shipment note aggregate to its database representation.
func fromDomain(note *shipment.ShipmentNote) ShipmentNoteDTO {
	return ShipmentNoteDTO{
		ID:             note.ID().Bytes(),
		DeliveryNoteID: note.DeliveryNoteID().Bytes(),
		Carrier:        note.Carrier().String(),
		Status:         int(note.Status()),
	}
}

// toDomain converts a database DTO to a shipment note aggregate.
// Reconstructs the complete aggregate using RestoreShipmentNote.
func toDomain(dto ShipmentNoteDTO) (*shipment.ShipmentNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryNoteID, err := kernel.UUIDFromBytes(dto.DeliveryNoteID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipmentNote(
		id,
		deliveryNoteID,
		shipment.Carrier(dto.Carrier),
		shipment.Status(dto.Status),
	)
}
