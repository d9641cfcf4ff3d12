package commands

import (
	"context"
	"log/slog"

	"shipping/internal/core/ports"
)

// cancellationComment is the audit trail entry recorded for every
// carrier-side cancellation.
const cancellationComment = "Shipment has been cancelled."

// CancelShipmentCommandHandler handles the business logic for shipment
// cancellation.
//
// The whole operation runs in one transaction: the status transition, the
// audit comment, and the carrier call either all take effect or none do.
// A carrier failure rolls the status write back, so a note is never marked
// Cancelled while the carrier still considers it active.
//
// For carriers without a registered gateway no carrier-side cancellation
// happens; the note is cancelled locally and a warning is logged.
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.CarrierRegistry
	logger     *slog.Logger
}

// NewCancelShipmentCommandHandler creates a handler for shipment
// cancellation operations.
func NewCancelShipmentCommandHandler(
	uowFactory UoWFactory,
	registry ports.CarrierRegistry,
	logger *slog.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		logger:     logger.With("component", "cancel_shipment"),
	}
}

// Handle processes the cancellation command.
//
// The status transition rejects notes that are already Cancelled or
// Completed, so concurrent cancellations of the same note resolve to one
// effective cancellation. Carrier errors propagate unmodified to the
// caller; no retry is attempted.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.ShipmentNoteRepository()
	note, err := noteRepo.Get(ctx, cmd.ShipmentNoteID())
	if err != nil {
		return err
	}

	if err = note.Cancel(); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	if gateway, ok := h.registry.Gateway(note.Carrier()); ok {
		if err = gateway.CancelShipment(ctx, note.ID()); err != nil {
			return err
		}

		recorder := uow.CommentRecorder()
		if err = recorder.RecordComment(ctx, ports.DocTypeShipmentNote, note.ID(), cancellationComment); err != nil {
			return err
		}
	} else {
		// Known gap: carriers without an integration are only cancelled
		// locally; nothing is cancelled upstream.
		h.logger.WarnContext(ctx, "no carrier integration registered, skipping carrier-side cancellation",
			"carrier", note.Carrier().String(),
			"shipment_note", note.ID().String(),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
