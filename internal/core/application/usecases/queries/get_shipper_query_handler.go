package queries

import (
	"context"

	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/services"
)

// GetShipperQueryHandler assembles the shipper participant for a delivery
// note. Delegates the field-population rules to the domain assembler, so the
// read model matches exactly what a carrier booking would submit.
type GetShipperQueryHandler struct {
	assembler services.ParticipantAssembler
}

// NewGetShipperQueryHandler creates a handler for shipper queries.
func NewGetShipperQueryHandler(assembler services.ParticipantAssembler) GetShipperQueryHandler {
	return GetShipperQueryHandler{assembler: assembler}
}

// Handle executes the query and returns the assembled shipper.
// Returns an ObjectNotFoundError when the delivery note does not exist.
func (h GetShipperQueryHandler) Handle(
	ctx context.Context,
	query GetShipperQuery,
) (participant.Participant, error) {
	if err := query.Validate(); err != nil {
		return participant.Participant{}, err
	}

	return h.assembler.AssembleShipper(ctx, query.DeliveryNoteID())
}
