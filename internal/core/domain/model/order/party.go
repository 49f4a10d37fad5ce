package order

import (
	"fmt"

	"procserve/internal/pkg/errs"
)

// Party identifies which side of a negotiation performed an action.
// Counter-offers must strictly alternate between the two parties.
type Party int

const (
	// PartyUnknown represents an invalid or undefined party.
	PartyUnknown Party = iota

	// PartyProcessServer is the server proposing or countering a price.
	PartyProcessServer

	// PartyCustomer is the customer who placed the order.
	PartyCustomer
)

func getPartyStrings() map[Party]string {
	return map[Party]string{
		PartyUnknown:       "UNKNOWN",
		PartyProcessServer: "PROCESS_SERVER",
		PartyCustomer:      "CUSTOMER",
	}
}

// Validate checks if the Party value is valid.
func (p Party) Validate() error {
	if p != PartyProcessServer && p != PartyCustomer {
		return errs.NewValueIsInvalidErrorWithCause("party is invalid",
			fmt.Errorf("%d is not a valid party", p))
	}
	return nil
}

// String returns the wire token of the party, e.g. "PROCESS_SERVER".
func (p Party) String() string {
	if str, ok := getPartyStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// Opponent returns the other side of the negotiation.
func (p Party) Opponent() Party {
	switch p {
	case PartyProcessServer:
		return PartyCustomer
	case PartyCustomer:
		return PartyProcessServer
	default:
		return PartyUnknown
	}
}

// PartyFromString parses a wire token into a Party.
func PartyFromString(s string) (Party, error) {
	for party, str := range getPartyStrings() {
		if str == s && party != PartyUnknown {
			return party, nil
		}
	}
	return PartyUnknown, errs.NewValueIsInvalidErrorWithCause("party is invalid",
		fmt.Errorf("%q is not a valid party", s))
}
