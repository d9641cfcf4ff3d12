package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedCarriers(t *testing.T) {
	t.Run("currently exactly Fedex", func(t *testing.T) {
		assert.Equal(t, []shipment.Carrier{shipment.CarrierFedex}, shipment.SupportedCarriers())
	})
}

func TestCarrier_Validate(t *testing.T) {
	t.Run("should validate Fedex", func(t *testing.T) {
		require.NoError(t, shipment.CarrierFedex.Validate())
	})

	t.Run("should reject unsupported carriers", func(t *testing.T) {
		for _, c := range []shipment.Carrier{"", "DHL", "fedex", "UPS"} {
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a supported carrier")
		}
	})
}

func TestCarrier_String(t *testing.T) {
	assert.Equal(t, "FEDEX", shipment.CarrierFedex.String())
}
