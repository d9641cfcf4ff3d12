package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var (
	ErrSyncShipmentStatusesCommandIsNotConstructed = errors.New(
		"SyncShipmentStatusesCommand must be created via NewSyncShipmentStatusesCommand constructor",
	)
)

// SyncShipmentStatusesCommand requests a reconciliation of all in-progress
// shipment notes against their carriers' tracking state.
type SyncShipmentStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncShipmentStatusesCommand creates a command to reconcile shipment
// statuses. This is a parameterless command covering every in-progress note.
func NewSyncShipmentStatusesCommand() SyncShipmentStatusesCommand {
	return SyncShipmentStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncShipmentStatusesCommandIsNotConstructed if validation fails.
func (c SyncShipmentStatusesCommand) Validate() error {
	return c.guard.Validate(ErrSyncShipmentStatusesCommandIsNotConstructed)
}
