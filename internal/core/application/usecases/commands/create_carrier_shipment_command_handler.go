package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// CreateCarrierShipmentCommandHandler handles the business logic for
// creating draft carrier shipments. Loads the shipment note inside the
// transaction so the draft can only ever reference an existing note and
// inherits its carrier.
type CreateCarrierShipmentCommandHandler struct {
	uowFactory CarrierShipmentUoWFactory
}

// NewCreateCarrierShipmentCommandHandler creates a handler for carrier
// shipment creation operations.
func NewCreateCarrierShipmentCommandHandler(
	uowFactory CarrierShipmentUoWFactory,
) CreateCarrierShipmentCommandHandler {
	return CreateCarrierShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier shipment creation command.
// Fails with an ObjectNotFoundError when the shipment note does not exist.
func (h *CreateCarrierShipmentCommandHandler) Handle(ctx context.Context, cmd CreateCarrierShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	note, err := uow.ShipmentNoteRepository().Get(ctx, cmd.ShipmentNoteID())
	if err != nil {
		return err
	}

	carrierShipment, err := shipment.NewCarrierShipment(cmd.CarrierShipmentID(), note.ID(), note.Carrier())
	if err != nil {
		return err
	}

	if err = uow.CarrierShipmentRepository().Add(ctx, carrierShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
