package order

// ServiceOptions carries the per-recipient service flags. Each active flag
// adds a flat fee on top of the agreed price; the fee schedule itself lives
// in the pricing service, not here.
type ServiceOptions struct {
	ProcessService bool
	CertifiedMail  bool
	RushService    bool
	RemoteLocation bool
}

// Any reports whether at least one option is active.
func (o ServiceOptions) Any() bool {
	return o.ProcessService || o.CertifiedMail || o.RushService || o.RemoteLocation
}
