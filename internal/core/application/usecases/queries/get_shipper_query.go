// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipperQueryIsNotConstructed = errors.New(
		"GetShipperQuery must be created via NewGetShipperQuery constructor",
	)
)

// GetShipperQuery retrieves the shipper participant assembled from a
// delivery note's company records.
//
// Example:
//
//	query, err := NewGetShipperQuery(deliveryNoteID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery note id: %w", err)
//	}
//
//	shipper, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to assemble shipper: %w", err)
//	}
type GetShipperQuery struct { //nolint:recvcheck //using for validation
	deliveryNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperQuery creates a query for the shipper of the given delivery
// note. Validates the identifier.
func NewGetShipperQuery(deliveryNoteID kernel.UUID) (GetShipperQuery, error) {
	shipperQuery := GetShipperQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipperQuery.setDeliveryNoteID(deliveryNoteID); err != nil {
		return GetShipperQuery{}, err
	}

	return shipperQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipperQueryIsNotConstructed if validation fails.
func (q GetShipperQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperQueryIsNotConstructed)
}

// DeliveryNoteID returns the delivery note whose shipper should be assembled.
func (q GetShipperQuery) DeliveryNoteID() kernel.UUID {
	return q.deliveryNoteID
}

func (q *GetShipperQuery) setDeliveryNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.deliveryNoteID = id
	return nil
}
