// Package carriers wires carrier gateway implementations into a registry
// the lifecycle use cases resolve providers from. Adding a carrier means
// registering one more gateway at composition time; no use case branches
// on carrier names.
package carriers

import (
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// Registry is a map-backed implementation of ports.CarrierRegistry.
type Registry struct {
	gateways map[shipment.Carrier]ports.CarrierGateway
	order    []shipment.Carrier
}

// NewRegistry creates an empty carrier registry.
func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[shipment.Carrier]ports.CarrierGateway),
		order:    make([]shipment.Carrier, 0),
	}
}

// Register binds a gateway to a carrier identifier. Registering the same
// carrier again replaces its gateway and keeps its original position.
func (r *Registry) Register(carrier shipment.Carrier, gateway ports.CarrierGateway) {
	if _, exists := r.gateways[carrier]; !exists {
		r.order = append(r.order, carrier)
	}
	r.gateways[carrier] = gateway
}

// Gateway returns the gateway registered for the carrier, or (nil, false)
// when no integration exists for it.
func (r *Registry) Gateway(carrier shipment.Carrier) (ports.CarrierGateway, bool) {
	gateway, ok := r.gateways[carrier]
	return gateway, ok
}

// Carriers returns the registered carrier identifiers in registration order.
func (r *Registry) Carriers() []shipment.Carrier {
	carriers := make([]shipment.Carrier, len(r.order))
	copy(carriers, r.order)
	return carriers
}
