package kernel

import (
	"fmt"

	"procserve/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created through
// the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object for a service destination.
// Street and zip are required; the zip code must be five digits because
// serviceable areas are matched on zip. City and state are informational.
type Address struct {
	street string
	city   string
	state  string
	zip    string

	guard ConstructorGuard
}

// NewAddress creates a validated Address.
func NewAddress(street, city, state, zip string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if err := validateZip(zip); err != nil {
		return Address{}, err
	}

	return Address{
		street: street,
		city:   city,
		state:  state,
		zip:    zip,
		guard:  NewConstructorGuard(),
	}, nil
}

func validateZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	if len(zip) != 5 {
		return errs.NewValueIsInvalidErrorWithCause(
			"zip is invalid",
			fmt.Errorf("%q is not a five digit zip code", zip),
		)
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"zip is invalid",
				fmt.Errorf("%q is not a five digit zip code", zip),
			)
		}
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state of the address.
func (a Address) State() string {
	return a.state
}

// Zip returns the five digit zip code.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two addresses field by field.
// Addresses are value objects, so equality is structural.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zip == other.zip
}

// Validate checks that the Address was properly constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
