// Package shipment provides the shipment-note aggregate and its supporting
// value objects.
//
// A shipment note records the intent to ship a delivery note through an
// external carrier. Its lifecycle is modeled by the Status value object,
// which enforces allowed transitions instead of permitting raw field writes.
// A CarrierShipment is the carrier-specific booking record created from a
// shipment note once the carrier accepts it.
//
// The package follows Domain-Driven Design practices: aggregates are created
// through validated constructors, state changes go through transition methods,
// and persistence rehydration uses dedicated Restore functions.
package shipment
