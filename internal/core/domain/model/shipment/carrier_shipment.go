package shipment

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/pkg/errs"
)

var (
	// ErrCarrierShipmentIsNotConstructed is returned when a CarrierShipment
	// instance was not created through one of its constructors.
	ErrCarrierShipmentIsNotConstructed = errors.New(
		"CarrierShipment must be created via NewCarrierShipment constructor",
	)

	// ErrCarrierShipmentAlreadyBooked is returned when Book is called on a
	// shipment that already holds a tracking number.
	ErrCarrierShipmentAlreadyBooked = errors.New("carrier shipment is already booked")
)

// CarrierShipment is the carrier-specific record representing the actual
// booked shipment. A draft is created from a shipment note with only the
// back-reference set; booking fills in the tracking number and snapshots
// the participant details the carrier accepted, so later edits to the
// underlying rows cannot change what was booked.
type CarrierShipment struct {
	// id is the unique identifier of the carrier shipment
	id kernel.UUID

	// shipmentNoteID is the back-reference to the shipment note
	shipmentNoteID kernel.UUID

	// carrier is the provider the shipment is booked with
	carrier Carrier

	// trackingNumber is assigned by the carrier at booking (nil for drafts)
	trackingNumber *string

	// shipperStreetLines, recipientStreetLines, and recipientEmails are
	// the address/contact snapshot captured at booking
	shipperStreetLines   []string
	recipientStreetLines []string
	recipientEmails      []string

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewCarrierShipment creates a draft carrier shipment referencing a shipment
// note. The only mapping performed is copying the shipment note identity into
// the new record's back-reference field; the tracking number and participant
// snapshot stay empty until booking.
func NewCarrierShipment(id kernel.UUID, shipmentNoteID kernel.UUID, carrier Carrier) (*CarrierShipment, error) {
	cs := &CarrierShipment{isConstructed: true}

	if err := errors.Join(
		cs.setID(id),
		cs.setShipmentNoteID(shipmentNoteID),
		cs.setCarrier(carrier),
	); err != nil {
		return nil, err
	}

	return cs, nil
}

// RestoreCarrierShipment rehydrates a carrier shipment from persistence.
func RestoreCarrierShipment(
	id kernel.UUID,
	shipmentNoteID kernel.UUID,
	carrier Carrier,
	trackingNumber *string,
	shipperStreetLines []string,
	recipientStreetLines []string,
	recipientEmails []string,
) (*CarrierShipment, error) {
	cs := &CarrierShipment{isConstructed: true}

	if err := errors.Join(
		cs.setID(id),
		cs.setShipmentNoteID(shipmentNoteID),
		cs.setCarrier(carrier),
	); err != nil {
		return nil, err
	}

	cs.trackingNumber = trackingNumber
	cs.shipperStreetLines = shipperStreetLines
	cs.recipientStreetLines = recipientStreetLines
	cs.recipientEmails = recipientEmails
	return cs, nil
}

// Validate ensures the shipment was properly constructed through a constructor.
func (c *CarrierShipment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierShipmentIsNotConstructed
	}

	return nil
}

// ID returns the carrier shipment's unique identifier.
func (c *CarrierShipment) ID() kernel.UUID {
	return c.id
}

// ShipmentNoteID returns the shipment note back-reference.
func (c *CarrierShipment) ShipmentNoteID() kernel.UUID {
	return c.shipmentNoteID
}

// Carrier returns the provider the shipment is booked with.
func (c *CarrierShipment) Carrier() Carrier {
	return c.carrier
}

// TrackingNumber returns the carrier-assigned tracking number.
// Returns nil for drafts that have not been booked yet.
func (c *CarrierShipment) TrackingNumber() *string {
	return c.trackingNumber
}

// IsBooked reports whether the carrier has accepted the shipment.
func (c *CarrierShipment) IsBooked() bool {
	return c.trackingNumber != nil
}

// ShipperStreetLines returns the shipper address snapshot captured at booking.
func (c *CarrierShipment) ShipperStreetLines() []string {
	return c.shipperStreetLines
}

// RecipientStreetLines returns the recipient address snapshot captured at booking.
func (c *CarrierShipment) RecipientStreetLines() []string {
	return c.recipientStreetLines
}

// RecipientEmails returns the recipient email snapshot captured at booking.
func (c *CarrierShipment) RecipientEmails() []string {
	return c.recipientEmails
}

// Book records the carrier's acceptance of the shipment: the assigned
// tracking number plus a snapshot of the participants handed to the carrier.
// A shipment can be booked at most once.
func (c *CarrierShipment) Book(trackingNumber string, shipper, recipient participant.Participant) error {
	if c.IsBooked() {
		return ErrCarrierShipmentAlreadyBooked
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = &trackingNumber
	c.shipperStreetLines = append([]string{}, shipper.Address.StreetLines...)
	c.recipientStreetLines = append([]string{}, recipient.Address.StreetLines...)
	c.recipientEmails = append([]string{}, recipient.Contact.Emails...)
	return nil
}

// setID validates and sets the shipment's unique identifier.
// This is a private method used only during construction.
func (c *CarrierShipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setShipmentNoteID validates and sets the shipment note back-reference.
// This is a private method used only during construction.
func (c *CarrierShipment) setShipmentNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentNoteID = id
	return nil
}

// setCarrier validates and sets the carrier.
// This is a private method used only during construction.
func (c *CarrierShipment) setCarrier(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	c.carrier = carrier
	return nil
}
