// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentNoteRepoFactory provides access to the shipment note repository
	// within a transaction.
	ShipmentNoteRepoFactory interface {
		ShipmentNoteRepository() ports.ShipmentNoteRepository
	}

	// CarrierShipmentRepoFactory provides access to the carrier shipment
	// repository within a transaction.
	CarrierShipmentRepoFactory interface {
		CarrierShipmentRepository() ports.CarrierShipmentRepository
	}

	// CommentRecorderFactory provides access to the audit comment recorder
	// within a transaction.
	CommentRecorderFactory interface {
		CommentRecorder() ports.CommentRecorder
	}

	// ShipmentNoteUoW manages transactions for note-only operations.
	// Used when commands only modify shipment note aggregates.
	ShipmentNoteUoW interface {
		TxManager
		ShipmentNoteRepoFactory
	}

	// ShipmentNoteUoWFactory creates new shipment-note unit of work instances.
	ShipmentNoteUoWFactory interface {
		Create() ShipmentNoteUoW
	}

	// CarrierShipmentUoW manages transactions spanning shipment notes and
	// their carrier shipments.
	CarrierShipmentUoW interface {
		TxManager
		ShipmentNoteRepoFactory
		CarrierShipmentRepoFactory
	}

	// CarrierShipmentUoWFactory creates new carrier-shipment unit of work instances.
	CarrierShipmentUoWFactory interface {
		Create() CarrierShipmentUoW
	}

	// UoW manages transactions across all shipment aggregates plus the audit
	// trail. Used for commands whose status writes and audit comments must
	// commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   noteRepo := uow.ShipmentNoteRepository()
	//   recorder := uow.CommentRecorder()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentNoteRepoFactory
		CarrierShipmentRepoFactory
		CommentRecorderFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
