package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetDeliveryItemsQueryIsNotConstructed = errors.New(
		"GetDeliveryItemsQuery must be created via NewGetDeliveryItemsQuery constructor",
	)
)

// GetDeliveryItemsQuery retrieves the line items of a delivery note in
// stored order, for display and for carrier package declarations.
type GetDeliveryItemsQuery struct { //nolint:recvcheck //using for validation
	deliveryNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryItemsQuery creates a query for the items of the given
// delivery note. Validates the identifier.
func NewGetDeliveryItemsQuery(deliveryNoteID kernel.UUID) (GetDeliveryItemsQuery, error) {
	itemsQuery := GetDeliveryItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemsQuery.setDeliveryNoteID(deliveryNoteID); err != nil {
		return GetDeliveryItemsQuery{}, err
	}

	return itemsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryItemsQueryIsNotConstructed if validation fails.
func (q GetDeliveryItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryItemsQueryIsNotConstructed)
}

// DeliveryNoteID returns the delivery note whose items should be listed.
func (q GetDeliveryItemsQuery) DeliveryNoteID() kernel.UUID {
	return q.deliveryNoteID
}

func (q *GetDeliveryItemsQuery) setDeliveryNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.deliveryNoteID = id
	return nil
}
