package participant

// Contact holds the person-level details of a shipment participant.
// Scalar fields are nil when the underlying data source had no value;
// an empty string is never used to represent absence.
type Contact struct {
	PersonName  *string
	CompanyName *string
	PhoneNumber *string

	// Emails preserves insertion order and may contain duplicates:
	// a shipping-address email and a primary-contact email are both
	// appended when present.
	Emails []string
}

// Address holds the postal details of a shipment participant.
// StreetLines carries at most two meaningful lines, in source order.
type Address struct {
	StreetLines         []string
	City                *string
	StateOrProvinceCode *string
	PostalCode          *string
	Country             *string
	CountryCode         *string
}

// Participant is a shipper's or recipient's contact and address bundle.
// It is an in-memory transfer object: constructed per request, populated
// by best-effort field lookups, and discarded once serialized.
type Participant struct {
	Contact Contact
	Address Address
}

// NewParticipant creates a participant with all fields absent and empty
// ordered sequences ready for appending.
func NewParticipant() Participant {
	return Participant{
		Contact: Contact{Emails: []string{}},
		Address: Address{StreetLines: []string{}},
	}
}
