package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookedCarrierShipment(t *testing.T, shipmentNoteID kernel.UUID, trackingNumber string) *shipment.CarrierShipment {
	t.Helper()
	cs, err := shipment.NewCarrierShipment(kernel.NewUUID(), shipmentNoteID, shipment.CarrierFedex)
	require.NoError(t, err)
	require.NoError(t, cs.Book(trackingNumber, participant.NewParticipant(), participant.NewParticipant()))
	return cs
}

func TestSyncShipmentStatusesCommandHandler_Handle_CompletesDeliveredNote(t *testing.T) {
	ctx := t.Context()
	shipmentNoteID := kernel.NewUUID()
	note, err := shipment.NewShipmentNote(shipmentNoteID, kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)
	booked := newBookedCarrierShipment(t, shipmentNoteID, "794843185271")

	gateway := new(MockCarrierGateway)
	gateway.On("TrackShipment", mock.Anything, "794843185271").Return(shipment.StatusCompleted, nil).Once()

	registry := new(MockCarrierRegistry)
	registry.On("Gateway", shipment.CarrierFedex).Return(gateway, true).Once()

	noteRepo := new(MockShipmentNoteRepository)
	shipmentRepo := new(MockCarrierShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentNoteRepository").Return(noteRepo).Once(),
		noteRepo.On("GetAllInStatus", mock.Anything, shipment.StatusInProgress).
			Return([]*shipment.ShipmentNote{note}, nil).Once(),
		uow.On("CarrierShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByShipmentNote", mock.Anything, shipmentNoteID).Return(booked, nil).Once(),
		noteRepo.On("Update", mock.Anything, note).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncShipmentStatusesCommandHandler(factory, registry, newTestLogger())
	err = h.Handle(ctx, commands.NewSyncShipmentStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusCompleted, note.Status())

	gateway.AssertExpectations(t)
	noteRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSyncShipmentStatusesCommandHandler_Handle_FailsUndeliverableNote(t *testing.T) {
	ctx := t.Context()
	shipmentNoteID := kernel.NewUUID()
	note, err := shipment.NewShipmentNote(shipmentNoteID, kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)
	booked := newBookedCarrierShipment(t, shipmentNoteID, "794843185272")

	gateway := new(MockCarrierGateway)
	gateway.On("TrackShipment", mock.Anything, "794843185272").Return(shipment.StatusFailed, nil).Once()

	registry := new(MockCarrierRegistry)
	registry.On("Gateway", shipment.CarrierFedex).Return(gateway, true).Once()

	noteRepo := new(MockShipmentNoteRepository)
	shipmentRepo := new(MockCarrierShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentNoteRepository").Return(noteRepo).Once()
	uow.On("CarrierShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	noteRepo.On("GetAllInStatus", mock.Anything, shipment.StatusInProgress).
		Return([]*shipment.ShipmentNote{note}, nil).Once()
	noteRepo.On("Update", mock.Anything, note).Return(nil).Once()
	shipmentRepo.On("GetByShipmentNote", mock.Anything, shipmentNoteID).Return(booked, nil).Once()

	factory := new(MockCarrierShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncShipmentStatusesCommandHandler(factory, registry, newTestLogger())
	err = h.Handle(ctx, commands.NewSyncShipmentStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusFailed, note.Status())
}

func TestSyncShipmentStatusesCommandHandler_Handle_SkipsUnbookedNote(t *testing.T) {
	ctx := t.Context()
	shipmentNoteID := kernel.NewUUID()
	note, err := shipment.NewShipmentNote(shipmentNoteID, kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)

	registry := new(MockCarrierRegistry)
	registry.On("Gateway", shipment.CarrierFedex).Return(new(MockCarrierGateway), true).Once()

	noteRepo := new(MockShipmentNoteRepository)
	shipmentRepo := new(MockCarrierShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentNoteRepository").Return(noteRepo).Once()
	uow.On("CarrierShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	noteRepo.On("GetAllInStatus", mock.Anything, shipment.StatusInProgress).
		Return([]*shipment.ShipmentNote{note}, nil).Once()
	shipmentRepo.On("GetByShipmentNote", mock.Anything, shipmentNoteID).
		Return(nil, errs.NewObjectNotFoundError("shipmentNoteID", shipmentNoteID)).Once()

	factory := new(MockCarrierShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncShipmentStatusesCommandHandler(factory, registry, newTestLogger())
	err = h.Handle(ctx, commands.NewSyncShipmentStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInProgress, note.Status())
	noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSyncShipmentStatusesCommandHandler_Handle_SkipsNoteWithoutGateway(t *testing.T) {
	ctx := t.Context()
	note, err := shipment.NewShipmentNote(kernel.NewUUID(), kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)

	registry := new(MockCarrierRegistry)
	registry.On("Gateway", shipment.CarrierFedex).Return(nil, false).Once()

	noteRepo := new(MockShipmentNoteRepository)
	shipmentRepo := new(MockCarrierShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentNoteRepository").Return(noteRepo).Once()
	uow.On("CarrierShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	noteRepo.On("GetAllInStatus", mock.Anything, shipment.StatusInProgress).
		Return([]*shipment.ShipmentNote{note}, nil).Once()

	factory := new(MockCarrierShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncShipmentStatusesCommandHandler(factory, registry, newTestLogger())
	err = h.Handle(ctx, commands.NewSyncShipmentStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInProgress, note.Status())
	shipmentRepo.AssertNotCalled(t, "GetByShipmentNote", mock.Anything, mock.Anything)
}

func TestSyncShipmentStatusesCommandHandler_Handle_CarrierErrorDoesNotStopRun(t *testing.T) {
	ctx := t.Context()
	failingNoteID := kernel.NewUUID()
	failingNote, err := shipment.NewShipmentNote(failingNoteID, kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)
	healthyNoteID := kernel.NewUUID()
	healthyNote, err := shipment.NewShipmentNote(healthyNoteID, kernel.NewUUID(), shipment.CarrierFedex)
	require.NoError(t, err)

	failingBooked := newBookedCarrierShipment(t, failingNoteID, "794800000001")
	healthyBooked := newBookedCarrierShipment(t, healthyNoteID, "794800000002")

	gateway := new(MockCarrierGateway)
	gateway.On("TrackShipment", mock.Anything, "794800000001").
		Return(shipment.StatusUnknown, errs.NewCarrierError("FEDEX", errors.New("timeout"))).Once()
	gateway.On("TrackShipment", mock.Anything, "794800000002").Return(shipment.StatusCompleted, nil).Once()

	registry := new(MockCarrierRegistry)
	registry.On("Gateway", shipment.CarrierFedex).Return(gateway, true).Twice()

	noteRepo := new(MockShipmentNoteRepository)
	shipmentRepo := new(MockCarrierShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentNoteRepository").Return(noteRepo).Once()
	uow.On("CarrierShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	noteRepo.On("GetAllInStatus", mock.Anything, shipment.StatusInProgress).
		Return([]*shipment.ShipmentNote{failingNote, healthyNote}, nil).Once()
	noteRepo.On("Update", mock.Anything, healthyNote).Return(nil).Once()
	shipmentRepo.On("GetByShipmentNote", mock.Anything, failingNoteID).Return(failingBooked, nil).Once()
	shipmentRepo.On("GetByShipmentNote", mock.Anything, healthyNoteID).Return(healthyBooked, nil).Once()

	factory := new(MockCarrierShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncShipmentStatusesCommandHandler(factory, registry, newTestLogger())
	err = h.Handle(ctx, commands.NewSyncShipmentStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInProgress, failingNote.Status())
	assert.Equal(t, shipment.StatusCompleted, healthyNote.Status())
	uow.AssertExpectations(t)
}

func TestSyncShipmentStatusesCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.SyncShipmentStatusesCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrSyncShipmentStatusesCommandIsNotConstructed)
}
