package contact

import (
	"procserve/internal/pkg/errs"
)

// ActivationStatus tells whether a contact entry is backed by a registered
// process server or is still an email invitation.
type ActivationStatus int

const (
	// ActivationStatusUnknown is an invalid zero value.
	ActivationStatusUnknown ActivationStatus = iota
	// NotActivated marks an invited contact whose registration is pending.
	NotActivated
	// Activated marks a contact backed by a registered server profile.
	Activated
)

func getActivationStatusStrings() map[ActivationStatus]string {
	return map[ActivationStatus]string{
		NotActivated: "NOT_ACTIVATED",
		Activated:    "ACTIVATED",
	}
}

// Validate checks that the ActivationStatus is one of the known states.
func (s ActivationStatus) Validate() error {
	if _, ok := getActivationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("activation status is invalid")
	}
	return nil
}

// String returns the wire token for the status.
func (s ActivationStatus) String() string {
	return getActivationStatusStrings()[s]
}

// ActivationStatusFromString parses a wire token.
func ActivationStatusFromString(s string) (ActivationStatus, error) {
	for status, token := range getActivationStatusStrings() {
		if token == s {
			return status, nil
		}
	}
	return ActivationStatusUnknown, errs.NewValueIsInvalidError("activation status is invalid")
}
