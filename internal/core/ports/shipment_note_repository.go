// Package ports defines repository and collaborator interfaces for the
// shipping domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentNoteRepository defines the persistence contract for shipment-note
// aggregates. Provides methods for storing, retrieving, and querying notes
// by their lifecycle status.
type ShipmentNoteRepository interface {
	// Add persists a new shipment note aggregate to storage.
	// The note must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.ShipmentNote) error

	// Update persists changes to an existing shipment note aggregate.
	// The note must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.ShipmentNote) error

	// Get retrieves a shipment note aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no note exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentNote, error)

	// GetAllInStatus retrieves all shipment notes currently in the given
	// lifecycle status. Used by the tracking job to find in-progress
	// shipments worth polling the carrier for.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.ShipmentNote, error)
}
