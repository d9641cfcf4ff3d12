package ports

// CountryCodeResolver translates country display names into ISO-style
// country codes. An unknown name resolves to ("", false); the assembler
// treats unresolvable codes as silently absent, never as an error.
type CountryCodeResolver interface {
	CountryCode(countryName string) (string, bool)
}

// StateCodeResolver translates a (country, state display name) pair into a
// carrier state/province code. Unknown pairs resolve to ("", false) and
// leave the field absent.
type StateCodeResolver interface {
	StateCode(country string, stateName string) (string, bool)
}
