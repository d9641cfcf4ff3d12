package queries

import (
	"context"

	"shipping/internal/core/ports"
)

// GetDeliveryItemsQueryHandler lists the line items of a delivery note.
// The handler verifies the note exists before listing, so an unknown note
// yields an ObjectNotFoundError rather than an empty list.
type GetDeliveryItemsQueryHandler struct {
	directory ports.Directory
}

// NewGetDeliveryItemsQueryHandler creates a handler for delivery item queries.
func NewGetDeliveryItemsQueryHandler(directory ports.Directory) GetDeliveryItemsQueryHandler {
	return GetDeliveryItemsQueryHandler{directory: directory}
}

// Handle executes the query and returns the note's items in stored order.
// An existing note with no items returns an empty slice.
func (h GetDeliveryItemsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryItemsQuery,
) ([]ports.DeliveryItemRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.directory.GetDeliveryNote(ctx, query.DeliveryNoteID()); err != nil {
		return nil, err
	}

	return h.directory.GetDeliveryItems(ctx, query.DeliveryNoteID())
}
