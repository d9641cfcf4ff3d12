// Package directory implements the read-side lookups the shipping module
// performs against the relational store of delivery notes, companies,
// customers, addresses, and contacts. Uses direct SQL queries for optimal
// read performance, in line with the read side of the CQRS split.
package directory

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDirectory implements ports.Directory over a GORM connection.
//
// Required single-row lookups translate sql.ErrNoRows into an
// ObjectNotFoundError; optional lookups for flagged rows return a nil row
// instead, since a company without a registered own address or a customer
// without a primary contact are expected states.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a directory reader over the given connection.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// GetDeliveryNote retrieves the delivery note header by id.
func (d *GormDirectory) GetDeliveryNote(ctx context.Context, id kernel.UUID) (ports.DeliveryNoteRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			id,
			company,
			customer
		FROM delivery_notes
		WHERE id = ?
	`, id.Bytes()).Row()

	var (
		rawID   uuid.UUID
		company sql.NullString
		note    ports.DeliveryNoteRow
	)
	if err := row.Scan(&rawID, &company, &note.CustomerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.DeliveryNoteRow{}, errs.NewObjectNotFoundError("delivery note", id.String())
		}
		return ports.DeliveryNoteRow{}, err
	}

	noteID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return ports.DeliveryNoteRow{}, err
	}
	note.ID = noteID
	note.CompanyName = fromNullString(company)

	return note, nil
}

// GetCompany retrieves a company by name. Missing companies are an expected
// state for notes created without a company reference, so absence yields
// (nil, nil) rather than an error.
func (d *GormDirectory) GetCompany(ctx context.Context, name string) (*ports.CompanyRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			name,
			phone_no,
			country
		FROM companies
		WHERE name = ?
	`, name).Row()

	var (
		company ports.CompanyRow
		phoneNo sql.NullString
		country sql.NullString
	)
	if err := row.Scan(&company.Name, &phoneNo, &country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	company.PhoneNo = fromNullString(phoneNo)
	company.Country = fromNullString(country)
	return &company, nil
}

// GetCompanyOwnAddress retrieves the address flagged as the company's own
// address. Returns (nil, nil) when none is flagged.
func (d *GormDirectory) GetCompanyOwnAddress(ctx context.Context, companyName string) (*ports.AddressRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			address_line1,
			address_line2,
			city,
			state,
			pincode,
			country,
			phone,
			email_id
		FROM addresses
		WHERE entity_type = 'Company'
		  AND entity_name = ?
		  AND is_your_company_address
		ORDER BY id
		LIMIT 1
	`, companyName).Row()

	return scanAddressRow(row)
}

// GetCustomer retrieves a customer by name.
func (d *GormDirectory) GetCustomer(ctx context.Context, name string) (ports.CustomerRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT name
		FROM customers
		WHERE name = ?
	`, name).Row()

	var customer ports.CustomerRow
	if err := row.Scan(&customer.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.CustomerRow{}, errs.NewObjectNotFoundError("customer", name)
		}
		return ports.CustomerRow{}, err
	}

	return customer, nil
}

// GetShippingAddress retrieves the customer's address flagged as the
// preferred shipping address. Returns (nil, nil) when none is flagged.
func (d *GormDirectory) GetShippingAddress(ctx context.Context, customerName string) (*ports.AddressRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			address_line1,
			address_line2,
			city,
			state,
			pincode,
			country,
			phone,
			email_id
		FROM addresses
		WHERE entity_type = 'Customer'
		  AND entity_name = ?
		  AND is_shipping_address
		ORDER BY id
		LIMIT 1
	`, customerName).Row()

	return scanAddressRow(row)
}

// GetPrimaryContact retrieves the customer's contact flagged as primary.
// Returns (nil, nil) when none is flagged.
func (d *GormDirectory) GetPrimaryContact(ctx context.Context, customerName string) (*ports.ContactRow, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			first_name,
			last_name,
			phone,
			email_id
		FROM contacts
		WHERE customer_name = ?
		  AND is_primary_contact
		ORDER BY id
		LIMIT 1
	`, customerName).Row()

	var (
		contact   ports.ContactRow
		firstName sql.NullString
		lastName  sql.NullString
		phone     sql.NullString
		emailID   sql.NullString
	)
	if err := row.Scan(&firstName, &lastName, &phone, &emailID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	contact.FirstName = fromNullString(firstName)
	contact.LastName = fromNullString(lastName)
	contact.Phone = fromNullString(phone)
	contact.EmailID = fromNullString(emailID)
	return &contact, nil
}

// GetDeliveryItems retrieves the line items of a delivery note in stored order.
func (d *GormDirectory) GetDeliveryItems(
	ctx context.Context,
	deliveryNoteID kernel.UUID,
) ([]ports.DeliveryItemRow, error) {
	rows, err := d.db.WithContext(ctx).Raw(`
		SELECT
			item_code,
			item_name,
			qty,
			uom
		FROM delivery_note_items
		WHERE delivery_note_id = ?
		ORDER BY idx
	`, deliveryNoteID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ports.DeliveryItemRow, 0)
	for rows.Next() {
		var (
			item ports.DeliveryItemRow
			uom  sql.NullString
		)
		if err = rows.Scan(&item.ItemCode, &item.ItemName, &item.Qty, &uom); err != nil {
			return nil, err
		}

		item.UOM = fromNullString(uom)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanAddressRow(row *sql.Row) (*ports.AddressRow, error) {
	var (
		addressLine1 sql.NullString
		addressLine2 sql.NullString
		city         sql.NullString
		state        sql.NullString
		pincode      sql.NullString
		country      sql.NullString
		phone        sql.NullString
		emailID      sql.NullString
	)
	err := row.Scan(&addressLine1, &addressLine2, &city, &state, &pincode, &country, &phone, &emailID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ports.AddressRow{
		AddressLine1: fromNullString(addressLine1),
		AddressLine2: fromNullString(addressLine2),
		City:         fromNullString(city),
		State:        fromNullString(state),
		PostalCode:   fromNullString(pincode),
		Country:      fromNullString(country),
		Phone:        fromNullString(phone),
		EmailID:      fromNullString(emailID),
	}, nil
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
