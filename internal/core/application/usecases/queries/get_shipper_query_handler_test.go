package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestAssembler(
	directory ports.Directory,
	countryCodes ports.CountryCodeResolver,
	stateCodes ports.StateCodeResolver,
) services.ParticipantAssembler {
	return services.NewParticipantAssembler(directory, countryCodes, stateCodes)
}

func TestGetShipperQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryNoteID := kernel.NewUUID()

	directory := new(MockDirectory)
	directory.On("GetDeliveryNote", mock.Anything, deliveryNoteID).
		Return(ports.DeliveryNoteRow{
			ID:           deliveryNoteID,
			CompanyName:  strPtr("ACME Corp"),
			CustomerName: "Globex",
		}, nil).Once()
	directory.On("GetCompany", mock.Anything, "ACME Corp").
		Return(&ports.CompanyRow{
			Name:    "ACME Corp",
			PhoneNo: strPtr("+1 555 0100"),
			Country: strPtr("United States"),
		}, nil).Once()
	directory.On("GetCompanyOwnAddress", mock.Anything, "ACME Corp").Return(nil, nil).Once()

	countryCodes := new(MockCountryCodeResolver)
	countryCodes.On("CountryCode", "United States").Return("US", true).Once()

	h := queries.NewGetShipperQueryHandler(newTestAssembler(directory, countryCodes, new(MockStateCodeResolver)))
	query, _ := queries.NewGetShipperQuery(deliveryNoteID)

	shipper, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.NotNil(t, shipper.Contact.PersonName)
	assert.Equal(t, "ACME Corp", *shipper.Contact.PersonName)
	require.NotNil(t, shipper.Contact.CompanyName)
	assert.Equal(t, "ACME Corp", *shipper.Contact.CompanyName)
	require.NotNil(t, shipper.Contact.PhoneNumber)
	assert.Equal(t, "+1 555 0100", *shipper.Contact.PhoneNumber)
	require.NotNil(t, shipper.Address.CountryCode)
	assert.Equal(t, "US", *shipper.Address.CountryCode)
	directory.AssertExpectations(t)
}

func TestGetShipperQueryHandler_Handle_NoteNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryNoteID := kernel.NewUUID()

	directory := new(MockDirectory)
	directory.On("GetDeliveryNote", mock.Anything, deliveryNoteID).
		Return(ports.DeliveryNoteRow{}, errs.NewObjectNotFoundError("deliveryNoteID", deliveryNoteID)).Once()

	h := queries.NewGetShipperQueryHandler(
		newTestAssembler(directory, new(MockCountryCodeResolver), new(MockStateCodeResolver)),
	)
	query, _ := queries.NewGetShipperQuery(deliveryNoteID)

	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetShipperQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetShipperQueryHandler(
		newTestAssembler(new(MockDirectory), new(MockCountryCodeResolver), new(MockStateCodeResolver)),
	)

	_, err := h.Handle(ctx, queries.GetShipperQuery{})
	require.Error(t, err)
}
