package services

import (
	"context"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/ports"
)

// ParticipantAssembler is a domain service that builds the shipper and
// recipient participant records a carrier booking requires, from the
// relational rows linked to a delivery note.
//
// Key responsibilities:
//   - Resolving the delivery note and its linked company/customer rows
//   - Best-effort field population: absent source data leaves the target
//     field absent, never set to an empty string
//   - Deriving country and state/province codes via the resolver ports;
//     an unresolvable code stays absent rather than failing the assembly
//
// Both assembly operations are pure reads: each call produces an
// independent Participant, mutates no shared state, and is idempotent
// for unchanged underlying rows.
type ParticipantAssembler struct {
	directory    ports.Directory
	countryCodes ports.CountryCodeResolver
	stateCodes   ports.StateCodeResolver
}

// NewParticipantAssembler creates an assembler over the given directory and
// code resolvers.
func NewParticipantAssembler(
	directory ports.Directory,
	countryCodes ports.CountryCodeResolver,
	stateCodes ports.StateCodeResolver,
) ParticipantAssembler {
	return ParticipantAssembler{
		directory:    directory,
		countryCodes: countryCodes,
		stateCodes:   stateCodes,
	}
}

// AssembleShipper builds the shipper participant for a delivery note from
// the note's company, the company row, and the company's own address.
//
// Field rules:
//   - The company display name fills both PersonName and CompanyName.
//   - The company phone fills PhoneNumber when non-empty.
//   - The company country fills Country; CountryCode is derived from it.
//   - From the company's own address: address lines 1 and 2 are appended
//     to StreetLines in that order, skipping empty lines; city and postal
//     code are copied when non-empty; the state/province code is derived
//     from the address row's own state together with the company country.
//
// Returns an ObjectNotFoundError when the delivery note does not exist.
func (a ParticipantAssembler) AssembleShipper(
	ctx context.Context,
	deliveryNoteID kernel.UUID,
) (participant.Participant, error) {
	shipper := participant.NewParticipant()

	note, err := a.directory.GetDeliveryNote(ctx, deliveryNoteID)
	if err != nil {
		return participant.Participant{}, err
	}

	if note.CompanyName == nil || *note.CompanyName == "" {
		return shipper, nil
	}
	companyName := *note.CompanyName

	shipper.Contact.PersonName = &companyName
	shipper.Contact.CompanyName = &companyName

	company, err := a.directory.GetCompany(ctx, companyName)
	if err != nil {
		return participant.Participant{}, err
	}
	if company == nil {
		return shipper, nil
	}

	if present(company.PhoneNo) {
		shipper.Contact.PhoneNumber = copyOf(company.PhoneNo)
	}

	if present(company.Country) {
		shipper.Address.Country = copyOf(company.Country)
		if code, ok := a.countryCodes.CountryCode(*company.Country); ok {
			shipper.Address.CountryCode = &code
		}
	}

	ownAddress, err := a.directory.GetCompanyOwnAddress(ctx, companyName)
	if err != nil {
		return participant.Participant{}, err
	}
	if ownAddress == nil {
		return shipper, nil
	}

	a.applyAddressRow(&shipper, ownAddress)

	if present(ownAddress.State) && shipper.Address.Country != nil {
		if code, ok := a.stateCodes.StateCode(*shipper.Address.Country, *ownAddress.State); ok {
			shipper.Address.StateOrProvinceCode = &code
		}
	}

	return shipper, nil
}

// AssembleRecipient builds the recipient participant for a delivery note
// from the note's customer, the customer's shipping address, and the
// customer's primary contact.
//
// Field rules:
//   - The note's customer name fills PersonName; the customer row's
//     canonical identifier fills CompanyName.
//   - From the shipping address, when present: phone, email, street lines,
//     city, postal code, country/country code, and the state/province code
//     derived from the address's own country and state.
//   - From the primary contact, when present: only if no shipping-address
//     phone was found, PersonName is overwritten with "first last" and
//     PhoneNumber with the contact's phone. The contact's email is
//     appended to Emails regardless, without deduplication.
//
// Returns an ObjectNotFoundError when the delivery note or the customer
// row does not exist.
func (a ParticipantAssembler) AssembleRecipient(
	ctx context.Context,
	deliveryNoteID kernel.UUID,
) (participant.Participant, error) {
	recipient := participant.NewParticipant()

	note, err := a.directory.GetDeliveryNote(ctx, deliveryNoteID)
	if err != nil {
		return participant.Participant{}, err
	}

	customerName := note.CustomerName
	recipient.Contact.PersonName = &customerName

	customer, err := a.directory.GetCustomer(ctx, customerName)
	if err != nil {
		return participant.Participant{}, err
	}
	canonicalName := customer.Name
	recipient.Contact.CompanyName = &canonicalName

	shippingAddress, err := a.directory.GetShippingAddress(ctx, customerName)
	if err != nil {
		return participant.Participant{}, err
	}
	primaryContact, err := a.directory.GetPrimaryContact(ctx, customerName)
	if err != nil {
		return participant.Participant{}, err
	}

	if shippingAddress != nil {
		if present(shippingAddress.Phone) {
			recipient.Contact.PhoneNumber = copyOf(shippingAddress.Phone)
		}

		if present(shippingAddress.EmailID) {
			recipient.Contact.Emails = append(recipient.Contact.Emails, *shippingAddress.EmailID)
		}

		a.applyAddressRow(&recipient, shippingAddress)

		if present(shippingAddress.Country) {
			recipient.Address.Country = copyOf(shippingAddress.Country)
			if code, ok := a.countryCodes.CountryCode(*shippingAddress.Country); ok {
				recipient.Address.CountryCode = &code
			}
			if present(shippingAddress.State) {
				if code, ok := a.stateCodes.StateCode(*shippingAddress.Country, *shippingAddress.State); ok {
					recipient.Address.StateOrProvinceCode = &code
				}
			}
		}
	}

	if primaryContact != nil {
		if recipient.Contact.PhoneNumber == nil {
			fullName := strings.TrimSpace(
				stringOrEmpty(primaryContact.FirstName) + " " + stringOrEmpty(primaryContact.LastName))
			recipient.Contact.PersonName = &fullName
			recipient.Contact.PhoneNumber = copyOf(primaryContact.Phone)
		}

		if present(primaryContact.EmailID) {
			recipient.Contact.Emails = append(recipient.Contact.Emails, *primaryContact.EmailID)
		}
	}

	return recipient, nil
}

// applyAddressRow copies the shared address columns of a row onto the
// participant: non-empty street lines in source order, then city and
// postal code when non-empty.
func (a ParticipantAssembler) applyAddressRow(p *participant.Participant, row *ports.AddressRow) {
	if present(row.AddressLine1) {
		p.Address.StreetLines = append(p.Address.StreetLines, *row.AddressLine1)
	}
	if present(row.AddressLine2) {
		p.Address.StreetLines = append(p.Address.StreetLines, *row.AddressLine2)
	}
	if present(row.City) {
		p.Address.City = copyOf(row.City)
	}
	if present(row.PostalCode) {
		p.Address.PostalCode = copyOf(row.PostalCode)
	}
}

// present reports whether an optional column holds a non-empty value.
func present(s *string) bool {
	return s != nil && *s != ""
}

// copyOf returns an independent pointer to the value, so participants do
// not alias the row they were assembled from.
func copyOf(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// stringOrEmpty dereferences an optional column, treating nil as "".
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
