package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Carrier identifies an external shipping provider.
// Carrier-specific behavior lives behind the CarrierGateway port and is
// selected through a registry keyed by this value, so adding a carrier does
// not require branching changes in the lifecycle use cases.
type Carrier string

const (
	// CarrierFedex is the Fedex provider identifier.
	CarrierFedex Carrier = "FEDEX"
)

// SupportedCarriers returns the ordered set of carrier identifiers the
// application can book shipments with. Currently a single element; designed
// to grow.
func SupportedCarriers() []Carrier {
	return []Carrier{CarrierFedex}
}

// Validate checks that the carrier is one of the supported providers.
func (c Carrier) Validate() error {
	for _, supported := range SupportedCarriers() {
		if c == supported {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"carrier is invalid",
		fmt.Errorf("%q is not a supported carrier", string(c)),
	)
}

// String returns the carrier identifier.
func (c Carrier) String() string {
	return string(c)
}
