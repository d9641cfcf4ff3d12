package commands_test

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentNoteRepository struct{ mock.Mock }

func (m *MockShipmentNoteRepository) Add(ctx context.Context, note *shipment.ShipmentNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockShipmentNoteRepository) Update(ctx context.Context, note *shipment.ShipmentNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockShipmentNoteRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentNote, error) {
	args := m.Called(ctx, id)
	note, _ := args.Get(0).(*shipment.ShipmentNote)
	return note, args.Error(1)
}

func (m *MockShipmentNoteRepository) GetAllInStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.ShipmentNote, error) {
	args := m.Called(ctx, status)
	notes, _ := args.Get(0).([]*shipment.ShipmentNote)
	return notes, args.Error(1)
}

type MockCarrierShipmentRepository struct{ mock.Mock }

func (m *MockCarrierShipmentRepository) Add(ctx context.Context, cs *shipment.CarrierShipment) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockCarrierShipmentRepository) Update(ctx context.Context, cs *shipment.CarrierShipment) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockCarrierShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.CarrierShipment, error) {
	args := m.Called(ctx, id)
	cs, _ := args.Get(0).(*shipment.CarrierShipment)
	return cs, args.Error(1)
}

func (m *MockCarrierShipmentRepository) GetByShipmentNote(
	ctx context.Context,
	shipmentNoteID kernel.UUID,
) (*shipment.CarrierShipment, error) {
	args := m.Called(ctx, shipmentNoteID)
	cs, _ := args.Get(0).(*shipment.CarrierShipment)
	return cs, args.Error(1)
}

type MockCommentRecorder struct{ mock.Mock }

func (m *MockCommentRecorder) RecordComment(ctx context.Context, docType string, docID kernel.UUID, text string) error {
	args := m.Called(ctx, docType, docID, text)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work interface the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentNoteRepository() ports.ShipmentNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentNoteRepository)
}

func (m *MockUoW) CarrierShipmentRepository() ports.CarrierShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierShipmentRepository)
}

func (m *MockUoW) CommentRecorder() ports.CommentRecorder {
	args := m.Called()
	return args.Get(0).(ports.CommentRecorder)
}

type MockShipmentNoteUoWFactory struct{ mock.Mock }

func (m *MockShipmentNoteUoWFactory) Create() commands.ShipmentNoteUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentNoteUoW)
}

type MockCarrierShipmentUoWFactory struct{ mock.Mock }

func (m *MockCarrierShipmentUoWFactory) Create() commands.CarrierShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierShipmentUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) CreateShipment(
	ctx context.Context,
	shipmentNoteID kernel.UUID,
	shipper participant.Participant,
	recipient participant.Participant,
	items []ports.DeliveryItemRow,
) (string, error) {
	args := m.Called(ctx, shipmentNoteID, shipper, recipient, items)
	return args.String(0), args.Error(1)
}

func (m *MockCarrierGateway) CancelShipment(ctx context.Context, shipmentNoteID kernel.UUID) error {
	args := m.Called(ctx, shipmentNoteID)
	return args.Error(0)
}

func (m *MockCarrierGateway) TrackShipment(ctx context.Context, trackingNumber string) (shipment.Status, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(shipment.Status), args.Error(1)
}

type MockCarrierRegistry struct{ mock.Mock }

func (m *MockCarrierRegistry) Gateway(carrier shipment.Carrier) (ports.CarrierGateway, bool) {
	args := m.Called(carrier)
	gateway, _ := args.Get(0).(ports.CarrierGateway)
	return gateway, args.Bool(1)
}

func (m *MockCarrierRegistry) Carriers() []shipment.Carrier {
	args := m.Called()
	return args.Get(0).([]shipment.Carrier)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) GetDeliveryNote(ctx context.Context, id kernel.UUID) (ports.DeliveryNoteRow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.DeliveryNoteRow), args.Error(1)
}

func (m *MockDirectory) GetCompany(ctx context.Context, name string) (*ports.CompanyRow, error) {
	args := m.Called(ctx, name)
	row, _ := args.Get(0).(*ports.CompanyRow)
	return row, args.Error(1)
}

func (m *MockDirectory) GetCompanyOwnAddress(ctx context.Context, companyName string) (*ports.AddressRow, error) {
	args := m.Called(ctx, companyName)
	row, _ := args.Get(0).(*ports.AddressRow)
	return row, args.Error(1)
}

func (m *MockDirectory) GetCustomer(ctx context.Context, name string) (ports.CustomerRow, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(ports.CustomerRow), args.Error(1)
}

func (m *MockDirectory) GetShippingAddress(ctx context.Context, customerName string) (*ports.AddressRow, error) {
	args := m.Called(ctx, customerName)
	row, _ := args.Get(0).(*ports.AddressRow)
	return row, args.Error(1)
}

func (m *MockDirectory) GetPrimaryContact(ctx context.Context, customerName string) (*ports.ContactRow, error) {
	args := m.Called(ctx, customerName)
	row, _ := args.Get(0).(*ports.ContactRow)
	return row, args.Error(1)
}

func (m *MockDirectory) GetDeliveryItems(ctx context.Context, deliveryNoteID kernel.UUID) ([]ports.DeliveryItemRow, error) {
	args := m.Called(ctx, deliveryNoteID)
	items, _ := args.Get(0).([]ports.DeliveryItemRow)
	return items, args.Error(1)
}

type MockCountryCodeResolver struct{ mock.Mock }

func (m *MockCountryCodeResolver) CountryCode(countryName string) (string, bool) {
	args := m.Called(countryName)
	return args.String(0), args.Bool(1)
}

type MockStateCodeResolver struct{ mock.Mock }

func (m *MockStateCodeResolver) StateCode(country string, stateName string) (string, bool) {
	args := m.Called(country, stateName)
	return args.String(0), args.Bool(1)
}
