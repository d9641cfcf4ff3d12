// Package participant provides the shipper/recipient transfer objects handed
// to carrier integrations.
//
// A Participant bundles a Contact and an Address the way carrier APIs expect
// them. All scalar fields are optional pointers so that "unknown" can be
// distinguished from an explicit empty value; ordered list fields (street
// lines, emails) default to empty slices.
//
// Participants are assembled fresh per request from relational rows and are
// never persisted by this package. They are plain value holders with no
// behavior beyond default construction.
package participant
