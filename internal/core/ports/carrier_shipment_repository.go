package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// CarrierShipmentRepository defines the persistence contract for
// carrier-shipment records.
type CarrierShipmentRepository interface {
	// Add persists a new carrier shipment to storage.
	Add(ctx context.Context, aggregate *shipment.CarrierShipment) error

	// Update persists changes to an existing carrier shipment,
	// typically after booking assigns the tracking number.
	Update(ctx context.Context, aggregate *shipment.CarrierShipment) error

	// Get retrieves a carrier shipment by its unique identifier.
	// Returns an ObjectNotFoundError when no record exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.CarrierShipment, error)

	// GetByShipmentNote retrieves the carrier shipment created from the
	// given shipment note. Returns an ObjectNotFoundError when the note
	// has no carrier shipment yet.
	GetByShipmentNote(ctx context.Context, shipmentNoteID kernel.UUID) (*shipment.CarrierShipment, error)
}
