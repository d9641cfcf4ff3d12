package shipment

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
)

var (
	// ErrShipmentNoteIsNotConstructed is returned when a ShipmentNote instance
	// was not created through NewShipmentNote or RestoreShipmentNote.
	ErrShipmentNoteIsNotConstructed = errors.New("ShipmentNote must be created via NewShipmentNote constructor")
)

// ShipmentNote is the aggregate root recording an intent to ship a delivery
// note through an external carrier.
//
// ShipmentNote follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference the delivery note it originates from
//   - Must name a supported carrier
//   - Status transitions follow the Status state machine
//   - Can only be created through NewShipmentNote or RestoreShipmentNote
//
// Private fields keep the aggregate encapsulated; all state changes go
// through validated methods.
type ShipmentNote struct {
	// id is the unique identifier of the shipment note
	id kernel.UUID

	// deliveryNoteID is the back-reference to the originating delivery note
	deliveryNoteID kernel.UUID

	// carrier is the provider this shipment is booked with
	carrier Carrier

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the note was created via a constructor
	isConstructed bool
}

// NewShipmentNote creates a draft shipment note referencing a delivery note.
// The draft starts in StatusInProgress status. All inputs are validated; the only
// mapping performed is copying the delivery note identity into the new
// note's back-reference field.
func NewShipmentNote(id kernel.UUID, deliveryNoteID kernel.UUID, carrier Carrier) (*ShipmentNote, error) {
	note := &ShipmentNote{
		status:        StatusInProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		note.setID(id),
		note.setDeliveryNoteID(deliveryNoteID),
		note.setCarrier(carrier),
	); err != nil {
		return nil, err
	}

	return note, nil
}

// RestoreShipmentNote rehydrates a shipment note from persistence.
// Unlike NewShipmentNote it accepts any valid status, since stored notes may
// be anywhere in their lifecycle.
func RestoreShipmentNote(
	id kernel.UUID,
	deliveryNoteID kernel.UUID,
	carrier Carrier,
	status Status,
) (*ShipmentNote, error) {
	note := &ShipmentNote{isConstructed: true}

	if err := errors.Join(
		note.setID(id),
		note.setDeliveryNoteID(deliveryNoteID),
		note.setCarrier(carrier),
		note.setStatus(status),
	); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate ensures the note was properly constructed through a constructor.
// Called when reconstructing notes from persistence to ensure integrity.
func (n *ShipmentNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrShipmentNoteIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipment notes by their unique identifiers.
func (n *ShipmentNote) IsEqual(other *ShipmentNote) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the shipment note's unique identifier.
func (n *ShipmentNote) ID() kernel.UUID {
	return n.id
}

// DeliveryNoteID returns the originating delivery note's identifier.
func (n *ShipmentNote) DeliveryNoteID() kernel.UUID {
	return n.deliveryNoteID
}

// Carrier returns the provider this note is booked with.
func (n *ShipmentNote) Carrier() Carrier {
	return n.carrier
}

// Status returns the current lifecycle state of the note.
func (n *ShipmentNote) Status() Status {
	return n.status
}

// Cancel marks the shipment note as cancelled.
//
// The transition is enforced by the Status state machine: only StatusInProgress
// or StatusFailed notes can be cancelled, so a second cancellation of the same
// note fails instead of silently rewriting the status.
func (n *ShipmentNote) Cancel() error {
	newStatus, err := n.status.Cancel()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// Complete marks the shipment note as delivered by the carrier.
func (n *ShipmentNote) Complete() error {
	newStatus, err := n.status.Complete()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// Fail marks the shipment note as failed at the carrier.
func (n *ShipmentNote) Fail() error {
	newStatus, err := n.status.Fail()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// Return marks a delivered shipment as returned to the shipper.
func (n *ShipmentNote) Return() error {
	newStatus, err := n.status.Return()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// setID validates and sets the note's unique identifier.
// This is a private method used only during construction.
func (n *ShipmentNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

// setDeliveryNoteID validates and sets the delivery note back-reference.
// This is a private method used only during construction.
func (n *ShipmentNote) setDeliveryNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.deliveryNoteID = id
	return nil
}

// setCarrier validates and sets the carrier.
// This is a private method used only during construction.
func (n *ShipmentNote) setCarrier(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	n.carrier = carrier
	return nil
}

// setStatus validates and sets the status during rehydration.
// This is a private method used only during construction.
func (n *ShipmentNote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	n.status = status
	return nil
}
