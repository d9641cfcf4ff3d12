package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// GetCarriersQueryHandler lists the carriers with a registered integration.
// The list is exactly what the carrier registry was composed with, so a
// newly registered gateway surfaces here without further wiring.
type GetCarriersQueryHandler struct {
	registry ports.CarrierRegistry
}

// NewGetCarriersQueryHandler creates a handler for carrier listing queries.
func NewGetCarriersQueryHandler(registry ports.CarrierRegistry) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{registry: registry}
}

// Handle executes the query and returns the registered carriers in
// registration order.
func (h GetCarriersQueryHandler) Handle(
	_ context.Context,
	query GetCarriersQuery,
) ([]shipment.Carrier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.Carriers(), nil
}
