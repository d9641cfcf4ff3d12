package commands

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// ErrNoCarrierGateway is returned when a booking targets a carrier that has
// no registered integration.
var ErrNoCarrierGateway = errors.New("no integration registered for carrier")

// BookCarrierShipmentCommandHandler handles the business logic for booking
// a draft carrier shipment with its carrier.
//
// The handler assembles the shipper and recipient participants from the
// originating delivery note, submits them together with the delivery items
// to the carrier gateway, and stores the assigned tracking number plus a
// participant snapshot on the carrier shipment.
type BookCarrierShipmentCommandHandler struct {
	uowFactory CarrierShipmentUoWFactory
	assembler  services.ParticipantAssembler
	directory  ports.Directory
	registry   ports.CarrierRegistry
}

// NewBookCarrierShipmentCommandHandler creates a handler for booking
// operations.
func NewBookCarrierShipmentCommandHandler(
	uowFactory CarrierShipmentUoWFactory,
	assembler services.ParticipantAssembler,
	directory ports.Directory,
	registry ports.CarrierRegistry,
) BookCarrierShipmentCommandHandler {
	return BookCarrierShipmentCommandHandler{
		uowFactory: uowFactory,
		assembler:  assembler,
		directory:  directory,
		registry:   registry,
	}
}

// Handle processes the booking command.
//
// Fails with ErrNoCarrierGateway when the note's carrier has no registered
// integration, and with the carrier's error when the submission fails.
// The tracking-number write is transactional: a failed commit leaves the
// draft unbooked.
func (h *BookCarrierShipmentCommandHandler) Handle(ctx context.Context, cmd BookCarrierShipmentCommand) error {
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

	gateway, ok := h.registry.Gateway(note.Carrier())
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCarrierGateway, note.Carrier())
	}

	shipmentRepo := uow.CarrierShipmentRepository()
	carrierShipment, err := shipmentRepo.GetByShipmentNote(ctx, note.ID())
	if err != nil {
		return err
	}

	shipper, err := h.assembler.AssembleShipper(ctx, note.DeliveryNoteID())
	if err != nil {
		return err
	}

	recipient, err := h.assembler.AssembleRecipient(ctx, note.DeliveryNoteID())
	if err != nil {
		return err
	}

	items, err := h.directory.GetDeliveryItems(ctx, note.DeliveryNoteID())
	if err != nil {
		return err
	}

	trackingNumber, err := gateway.CreateShipment(ctx, note.ID(), shipper, recipient, items)
	if err != nil {
		return err
	}

	if err = carrierShipment.Book(trackingNumber, shipper, recipient); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, carrierShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
