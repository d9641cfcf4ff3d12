package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/model/shipment"
)

// CarrierGateway is the integration contract with one external shipping
// provider. Failed carrier calls return a CarrierError; the caller
// propagates it unmodified, without retry or backoff.
type CarrierGateway interface {
	// CreateShipment books a shipment with the carrier and returns the
	// carrier-assigned tracking number.
	CreateShipment(
		ctx context.Context,
		shipmentNoteID kernel.UUID,
		shipper participant.Participant,
		recipient participant.Participant,
		items []DeliveryItemRow,
	) (trackingNumber string, err error)

	// CancelShipment cancels the carrier-side shipment created from the
	// given shipment note.
	CancelShipment(ctx context.Context, shipmentNoteID kernel.UUID) error

	// TrackShipment reports the carrier's view of the shipment's lifecycle
	// state, mapped onto the domain Status values.
	TrackShipment(ctx context.Context, trackingNumber string) (shipment.Status, error)
}

// CarrierRegistry resolves the gateway for a carrier identifier.
// Lifecycle use cases consult the registry instead of branching on carrier
// names, so adding a carrier means registering one more gateway.
type CarrierRegistry interface {
	// Gateway returns the gateway registered for the carrier, or
	// (nil, false) when no integration exists for it.
	Gateway(carrier shipment.Carrier) (CarrierGateway, bool)

	// Carriers returns the ordered set of carrier identifiers with a
	// registered gateway.
	Carriers() []shipment.Carrier
}
