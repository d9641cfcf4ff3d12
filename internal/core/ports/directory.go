package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// DeliveryNoteRow is the read model of a delivery note header.
type DeliveryNoteRow struct {
	ID kernel.UUID

	// CompanyName links the note to the shipping company; nil when the
	// note carries no company reference.
	CompanyName *string

	// CustomerName identifies the receiving customer.
	CustomerName string
}

// CompanyRow is the read model of a company record.
type CompanyRow struct {
	Name    string
	PhoneNo *string
	Country *string
}

// CustomerRow is the read model of a customer record.
// Name is the customer's canonical identifier.
type CustomerRow struct {
	Name string
}

// AddressRow is the read model of an address record. All columns are
// nullable in the source schema, so every field is optional.
type AddressRow struct {
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
	Phone        *string
	EmailID      *string
}

// ContactRow is the read model of a person contact record.
type ContactRow struct {
	FirstName *string
	LastName  *string
	Phone     *string
	EmailID   *string
}

// DeliveryItemRow is the read model of one delivery note line item.
type DeliveryItemRow struct {
	ItemCode string
	ItemName string
	Qty      float64
	UOM      *string
}

// Directory provides read-side lookups against the relational store the
// shipping module assembles participants from. Required single-row lookups
// return an ObjectNotFoundError when the row is absent; optional lookups
// for flagged rows return a nil row instead of an error, since their
// absence is an expected state.
type Directory interface {
	// GetDeliveryNote retrieves the delivery note header by id.
	// Required: returns an ObjectNotFoundError when no note exists.
	GetDeliveryNote(ctx context.Context, id kernel.UUID) (DeliveryNoteRow, error)

	// GetCompany retrieves a company by name.
	// Optional: returns (nil, nil) when no such company exists.
	GetCompany(ctx context.Context, name string) (*CompanyRow, error)

	// GetCompanyOwnAddress retrieves the address flagged as the company's
	// own address. Optional: returns (nil, nil) when none is flagged.
	GetCompanyOwnAddress(ctx context.Context, companyName string) (*AddressRow, error)

	// GetCustomer retrieves a customer by name.
	// Required: returns an ObjectNotFoundError when no customer exists.
	GetCustomer(ctx context.Context, name string) (CustomerRow, error)

	// GetShippingAddress retrieves the customer's address flagged as the
	// shipping address. Optional: returns (nil, nil) when none is flagged.
	GetShippingAddress(ctx context.Context, customerName string) (*AddressRow, error)

	// GetPrimaryContact retrieves the customer's contact flagged as primary.
	// Optional: returns (nil, nil) when none is flagged.
	GetPrimaryContact(ctx context.Context, customerName string) (*ContactRow, error)

	// GetDeliveryItems retrieves the line items of a delivery note in
	// stored order. An empty slice means the note has no items.
	GetDeliveryItems(ctx context.Context, deliveryNoteID kernel.UUID) ([]DeliveryItemRow, error)
}
