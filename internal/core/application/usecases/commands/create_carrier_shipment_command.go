package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateCarrierShipmentCommandIsNotConstructed = errors.New(
		"CreateCarrierShipmentCommand must be created via NewCreateCarrierShipmentCommand constructor",
	)
)

// CreateCarrierShipmentCommand represents a request to create a draft
// carrier shipment from a shipment note. The carrier is taken from the
// note itself, so the draft always matches the note's provider.
type CreateCarrierShipmentCommand struct { //nolint:recvcheck //using for validation
	carrierShipmentID kernel.UUID
	shipmentNoteID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCarrierShipmentCommand creates a command to register a draft
// carrier shipment. Validates both identifiers.
func NewCreateCarrierShipmentCommand(
	carrierShipmentID kernel.UUID,
	shipmentNoteID kernel.UUID,
) (CreateCarrierShipmentCommand, error) {
	shipmentCommand := CreateCarrierShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setCarrierShipmentID(carrierShipmentID),
		shipmentCommand.setShipmentNoteID(shipmentNoteID),
	); err != nil {
		return CreateCarrierShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCarrierShipmentCommandIsNotConstructed if validation fails.
func (c CreateCarrierShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierShipmentCommandIsNotConstructed)
}

// CarrierShipmentID returns the identifier for the new carrier shipment.
func (c CreateCarrierShipmentCommand) CarrierShipmentID() kernel.UUID {
	return c.carrierShipmentID
}

// ShipmentNoteID returns the originating shipment note's identifier.
func (c CreateCarrierShipmentCommand) ShipmentNoteID() kernel.UUID {
	return c.shipmentNoteID
}

func (c *CreateCarrierShipmentCommand) setCarrierShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierShipmentID = id
	return nil
}

func (c *CreateCarrierShipmentCommand) setShipmentNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentNoteID = id
	return nil
}
