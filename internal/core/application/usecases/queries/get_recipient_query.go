package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetRecipientQueryIsNotConstructed = errors.New(
		"GetRecipientQuery must be created via NewGetRecipientQuery constructor",
	)
)

// GetRecipientQuery retrieves the recipient participant assembled from a
// delivery note's customer records.
type GetRecipientQuery struct { //nolint:recvcheck //using for validation
	deliveryNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRecipientQuery creates a query for the recipient of the given
// delivery note. Validates the identifier.
func NewGetRecipientQuery(deliveryNoteID kernel.UUID) (GetRecipientQuery, error) {
	recipientQuery := GetRecipientQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := recipientQuery.setDeliveryNoteID(deliveryNoteID); err != nil {
		return GetRecipientQuery{}, err
	}

	return recipientQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecipientQueryIsNotConstructed if validation fails.
func (q GetRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
}

// DeliveryNoteID returns the delivery note whose recipient should be assembled.
func (q GetRecipientQuery) DeliveryNoteID() kernel.UUID {
	return q.deliveryNoteID
}

func (q *GetRecipientQuery) setDeliveryNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.deliveryNoteID = id
	return nil
}
