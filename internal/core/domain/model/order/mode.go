package order

import (
	"fmt"

	"procserve/internal/pkg/errs"
)

// AssignmentMode determines how a recipient gets its process server:
// through the open bidding market or by direct guided assignment.
type AssignmentMode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown AssignmentMode = iota

	// BiddingMarket opens the recipient to bids from any eligible server.
	BiddingMarket

	// GuidedDirect assigns a designated server who quotes a price.
	GuidedDirect
)

func getModeStrings() map[AssignmentMode]string {
	return map[AssignmentMode]string{
		ModeUnknown:   "UNKNOWN",
		BiddingMarket: "BIDDING_MARKET",
		GuidedDirect:  "GUIDED_DIRECT",
	}
}

// Validate checks if the AssignmentMode value is valid.
func (m AssignmentMode) Validate() error {
	if m != BiddingMarket && m != GuidedDirect {
		return errs.NewValueIsInvalidErrorWithCause("assignment mode is invalid",
			fmt.Errorf("%d is not a valid assignment mode", m))
	}
	return nil
}

// String returns the wire token of the mode, e.g. "BIDDING_MARKET".
func (m AssignmentMode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// AssignmentModeFromString parses a wire token into an AssignmentMode.
func AssignmentModeFromString(s string) (AssignmentMode, error) {
	for mode, str := range getModeStrings() {
		if str == s && mode != ModeUnknown {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("assignment mode is invalid",
		fmt.Errorf("%q is not a valid assignment mode", s))
}
