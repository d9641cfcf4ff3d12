package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrBookCarrierShipmentCommandIsNotConstructed = errors.New(
		"BookCarrierShipmentCommand must be created via NewBookCarrierShipmentCommand constructor",
	)
)

// BookCarrierShipmentCommand represents a request to hand a draft carrier
// shipment to its carrier: assemble the shipper and recipient participants,
// submit the shipment, and record the assigned tracking number.
type BookCarrierShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBookCarrierShipmentCommand creates a command to book the carrier
// shipment created from the given shipment note.
func NewBookCarrierShipmentCommand(shipmentNoteID kernel.UUID) (BookCarrierShipmentCommand, error) {
	bookCommand := BookCarrierShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := bookCommand.setShipmentNoteID(shipmentNoteID); err != nil {
		return BookCarrierShipmentCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookCarrierShipmentCommandIsNotConstructed if validation fails.
func (c BookCarrierShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookCarrierShipmentCommandIsNotConstructed)
}

// ShipmentNoteID returns the identifier of the note whose carrier shipment
// should be booked.
func (c BookCarrierShipmentCommand) ShipmentNoteID() kernel.UUID {
	return c.shipmentNoteID
}

func (c *BookCarrierShipmentCommand) setShipmentNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentNoteID = id
	return nil
}
