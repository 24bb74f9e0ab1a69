// Package models defines the core domain models: Address, Employee,
// and the USState and JobRole enumerations.
package models

import (
	"github.com/cespare/xxhash/v2"
)

// Placeholder rendered in place of an unset state or job role.
const unsetPlaceholder = "N/A"

// Address defines an immutable postal address within the US.
// Address is comparable, so values can be used directly as map keys.
type Address struct {
	// streetAddress is e.g. "12345 Sample Street".
	streetAddress string
	city          string
	// state may be unset.
	state USState
	// zipCode is text so it can hold a ZIP+4 like "90210-1234".
	zipCode string
}

// NewAddress creates a fully initialized address.
// Street address, city and zip code are required; state may be unset.
func NewAddress(streetAddress, city string, state USState, zipCode string) (*Address, error) {
	if err := validateParams("an address", addressParams{
		StreetAddress: streetAddress,
		City:          city,
		State:         state,
		ZipCode:       zipCode,
	}); err != nil {
		return nil, err
	}
	return &Address{
		streetAddress: streetAddress,
		city:          city,
		state:         state,
		zipCode:       zipCode,
	}, nil
}

func (a *Address) StreetAddress() string { return a.streetAddress }

func (a *Address) City() string { return a.city }

func (a *Address) State() USState { return a.state }

func (a *Address) ZipCode() string { return a.zipCode }

// cityLine renders "<city>, <abbreviation> <zip>".
func (a *Address) cityLine() string {
	abbr := a.state.Abbreviation()
	if abbr == "" {
		abbr = unsetPlaceholder
	}
	return a.city + ", " + abbr + " " + a.zipCode
}

// String renders the address on two lines: street, then city, state and zip.
func (a *Address) String() string {
	return a.streetAddress + "\n" + a.cityLine()
}

// Equal reports whether both addresses hold the same field values.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}

// Hash returns a hash consistent with Equal.
func (a *Address) Hash() uint64 {
	if a == nil {
		return 0
	}
	d := xxhash.New()
	a.writeTo(d)
	return d.Sum64()
}

// writeTo feeds the fields into d, NUL-separated so that
// ("ab", "c") and ("a", "bc") hash differently.
func (a *Address) writeTo(d *xxhash.Digest) {
	for _, field := range []string{a.streetAddress, a.city, string(a.state), a.zipCode} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
}
