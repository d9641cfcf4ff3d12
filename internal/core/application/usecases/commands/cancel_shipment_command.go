package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
)

// CancelShipmentCommand represents a request to cancel a shipment note and,
// when an integration exists for its carrier, the carrier-side shipment.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment note.
func NewCancelShipmentCommand(shipmentNoteID kernel.UUID) (CancelShipmentCommand, error) {
	cancelCommand := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setShipmentNoteID(shipmentNoteID); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentNoteID returns the identifier of the note to cancel.
func (c CancelShipmentCommand) ShipmentNoteID() kernel.UUID {
	return c.shipmentNoteID
}

func (c *CancelShipmentCommand) setShipmentNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentNoteID = id
	return nil
}
