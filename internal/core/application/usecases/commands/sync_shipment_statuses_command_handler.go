package commands

import (
	"context"
	"errors"
	"log/slog"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// SyncShipmentStatusesCommandHandler reconciles in-progress shipment notes
// against carrier tracking state.
//
// Notes without a registered gateway, without a booked carrier shipment, or
// without a tracking number are skipped. A carrier failure on one note does
// not stop reconciliation of the others; the error is logged and the note is
// retried on the next run.
type SyncShipmentStatusesCommandHandler struct {
	uowFactory CarrierShipmentUoWFactory
	registry   ports.CarrierRegistry
	logger     *slog.Logger
}

// NewSyncShipmentStatusesCommandHandler creates a handler for shipment
// status reconciliation.
func NewSyncShipmentStatusesCommandHandler(
	uowFactory CarrierShipmentUoWFactory,
	registry ports.CarrierRegistry,
	logger *slog.Logger,
) SyncShipmentStatusesCommandHandler {
	return SyncShipmentStatusesCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		logger:     logger.With("component", "sync_shipment_statuses"),
	}
}

// Handle processes the reconciliation command.
//
// All status writes of one run share a single transaction. Only terminal
// carrier statuses are applied: Completed marks the note completed, Failed
// marks it failed, anything else leaves the note in progress.
func (h *SyncShipmentStatusesCommandHandler) Handle(ctx context.Context, cmd SyncShipmentStatusesCommand) error {
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
	notes, err := noteRepo.GetAllInStatus(ctx, shipment.StatusInProgress)
	if err != nil {
		return err
	}

	carrierShipmentRepo := uow.CarrierShipmentRepository()
	for _, note := range notes {
		if err = h.syncNote(ctx, noteRepo, carrierShipmentRepo, note); err != nil {
			h.logger.ErrorContext(ctx, "failed to sync shipment status",
				"shipment_note", note.ID().String(),
				"carrier", note.Carrier().String(),
				"error", err,
			)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *SyncShipmentStatusesCommandHandler) syncNote(
	ctx context.Context,
	noteRepo ports.ShipmentNoteRepository,
	carrierShipmentRepo ports.CarrierShipmentRepository,
	note *shipment.ShipmentNote,
) error {
	gateway, ok := h.registry.Gateway(note.Carrier())
	if !ok {
		return nil
	}

	carrierShipment, err := carrierShipmentRepo.GetByShipmentNote(ctx, note.ID())
	if err != nil {
		// Not booked yet, nothing to track.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}

		return err
	}

	trackingNumber := carrierShipment.TrackingNumber()
	if trackingNumber == nil {
		return nil
	}

	status, err := gateway.TrackShipment(ctx, *trackingNumber)
	if err != nil {
		return err
	}

	switch status {
	case shipment.StatusCompleted:
		if err = note.Complete(); err != nil {
			return err
		}
	case shipment.StatusFailed:
		if err = note.Fail(); err != nil {
			return err
		}
	default:
		return nil
	}

	return noteRepo.Update(ctx, note)
}
