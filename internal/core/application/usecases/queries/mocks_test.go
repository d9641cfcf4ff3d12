package queries_test

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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
