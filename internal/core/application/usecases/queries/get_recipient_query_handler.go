package queries

import (
	"context"

	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/services"
)

// GetRecipientQueryHandler assembles the recipient participant for a
// delivery note.
type GetRecipientQueryHandler struct {
	assembler services.ParticipantAssembler
}

// NewGetRecipientQueryHandler creates a handler for recipient queries.
func NewGetRecipientQueryHandler(assembler services.ParticipantAssembler) GetRecipientQueryHandler {
	return GetRecipientQueryHandler{assembler: assembler}
}

// Handle executes the query and returns the assembled recipient.
// Returns an ObjectNotFoundError when the delivery note or its customer
// does not exist.
func (h GetRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetRecipientQuery,
) (participant.Participant, error) {
	if err := query.Validate(); err != nil {
		return participant.Participant{}, err
	}

	return h.assembler.AssembleRecipient(ctx, query.DeliveryNoteID())
}
