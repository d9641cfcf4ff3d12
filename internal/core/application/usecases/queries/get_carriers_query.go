package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var (
	ErrGetCarriersQueryIsNotConstructed = errors.New(
		"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
	)
)

// GetCarriersQuery retrieves the carriers available for booking.
// This is a parameterless query that lists every carrier with a registered
// integration.
type GetCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query to retrieve the available carriers.
func NewGetCarriersQuery() GetCarriersQuery {
	return GetCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCarriersQueryIsNotConstructed if validation fails.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}
