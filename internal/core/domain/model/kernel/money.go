package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"procserve/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoneyFromCents or ParseMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoneyFromCents or ParseMoney")

// Money is a value object for a non-negative monetary amount.
// Amounts are held in integer cents so that arithmetic is exact; the string
// form always carries two decimal places, matching the wire representation
// used at the API boundary.
//
// The zero value of Money is invalid; a constructed zero amount
// (NewMoneyFromCents(0)) is valid and distinct from it.
type Money struct {
	cents int64
	guard ConstructorGuard
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d cents is negative", cents),
		)
	}

	return Money{cents: cents, guard: NewConstructorGuard()}, nil
}

// ParseMoney parses a decimal string such as "450" or "450.50" into a Money
// amount. At most two fractional digits are accepted; more precision than the
// engine can represent is an error rather than a silent rounding.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && len(frac) > 2 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%q has more than two decimal places", s),
		)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}

	var fracCents int64
	if hasFrac {
		// Digits only: ParseInt would accept a sign here, turning "5.-5"
		// into 495 cents.
		for _, r := range frac {
			if r < '0' || r > '9' {
				return Money{}, errs.NewValueIsInvalidErrorWithCause(
					"amount is invalid",
					fmt.Errorf("%q has a malformed fractional part", s),
				)
			}
		}
		// "5" means 50 cents, "05" means 5 cents.
		padded := frac + strings.Repeat("0", 2-len(frac))
		fracCents, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
		}
	}

	if units < 0 || strings.HasPrefix(whole, "-") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%q is negative", s),
		)
	}

	return NewMoneyFromCents(units*100 + fracCents)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoneyFromCents(m.cents + other.cents)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the decimal representation with two decimal places,
// e.g. "450.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
