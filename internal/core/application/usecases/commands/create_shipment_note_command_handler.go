package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// CreateShipmentNoteCommandHandler handles the business logic for creating
// draft shipment notes. Verifies the referenced delivery note exists before
// persisting the draft, so a dangling back-reference can never be stored.
//
// Example:
//
//	handler := NewCreateShipmentNoteCommandHandler(uowFactory, directory)
//	cmd, _ := NewCreateShipmentNoteCommand(kernel.NewUUID(), deliveryNoteID, shipment.CarrierFedex)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment note creation failed: %w", err)
//	}
type CreateShipmentNoteCommandHandler struct {
	uowFactory ShipmentNoteUoWFactory
	directory  ports.Directory
}

// NewCreateShipmentNoteCommandHandler creates a handler for shipment note
// creation. Requires a ShipmentNoteUoWFactory for transactional persistence
// and a Directory to verify the delivery note reference.
func NewCreateShipmentNoteCommandHandler(
	uowFactory ShipmentNoteUoWFactory,
	directory ports.Directory,
) CreateShipmentNoteCommandHandler {
	return CreateShipmentNoteCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the shipment note creation command.
// Fails with an ObjectNotFoundError when the delivery note does not exist.
// Uses a transaction to ensure the draft is properly persisted or rolled
// back on error.
func (h *CreateShipmentNoteCommandHandler) Handle(ctx context.Context, cmd CreateShipmentNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.directory.GetDeliveryNote(ctx, cmd.DeliveryNoteID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.ShipmentNoteRepository()
	note, err := shipment.NewShipmentNote(cmd.ShipmentNoteID(), cmd.DeliveryNoteID(), cmd.Carrier())
	if err != nil {
		return err
	}

	if err = noteRepo.Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
