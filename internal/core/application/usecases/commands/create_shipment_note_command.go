package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentNoteCommandIsNotConstructed = errors.New(
		"CreateShipmentNoteCommand must be created via NewCreateShipmentNoteCommand constructor",
	)
)

// CreateShipmentNoteCommand represents a request to create a draft shipment
// note from a delivery note. The new note carries only the delivery note
// back-reference; all other shipment data is filled in later in the flow.
//
// Example:
//
//	noteID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentNoteCommand(noteID, deliveryNoteID, shipment.CarrierFedex)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment note data: %w", err)
//	}
//
//	handler := NewCreateShipmentNoteCommandHandler(uowFactory, directory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment note: %w", err)
//	}
type CreateShipmentNoteCommand struct { //nolint:recvcheck //using for validation
	shipmentNoteID kernel.UUID
	deliveryNoteID kernel.UUID
	carrier        shipment.Carrier

	guard guard.ConstructorGuard
}

// NewCreateShipmentNoteCommand creates a command to register a draft shipment
// note. Validates both identifiers and the carrier.
func NewCreateShipmentNoteCommand(
	shipmentNoteID kernel.UUID,
	deliveryNoteID kernel.UUID,
	carrier shipment.Carrier,
) (CreateShipmentNoteCommand, error) {
	noteCommand := CreateShipmentNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		noteCommand.setShipmentNoteID(shipmentNoteID),
		noteCommand.setDeliveryNoteID(deliveryNoteID),
		noteCommand.setCarrier(carrier),
	); err != nil {
		return CreateShipmentNoteCommand{}, err
	}

	return noteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentNoteCommandIsNotConstructed if validation fails.
func (c CreateShipmentNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentNoteCommandIsNotConstructed)
}

// ShipmentNoteID returns the identifier for the new shipment note.
func (c CreateShipmentNoteCommand) ShipmentNoteID() kernel.UUID {
	return c.shipmentNoteID
}

// DeliveryNoteID returns the originating delivery note's identifier.
func (c CreateShipmentNoteCommand) DeliveryNoteID() kernel.UUID {
	return c.deliveryNoteID
}

// Carrier returns the provider the shipment will be booked with.
func (c CreateShipmentNoteCommand) Carrier() shipment.Carrier {
	return c.carrier
}

func (c *CreateShipmentNoteCommand) setShipmentNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentNoteID = id
	return nil
}

func (c *CreateShipmentNoteCommand) setDeliveryNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryNoteID = id
	return nil
}

func (c *CreateShipmentNoteCommand) setCarrier(carrier shipment.Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}
