// Package order contains the Order aggregate for service-of-process
// coordination. An Order is placed by a customer and owns one or more
// Recipients, each a delivery destination with its own lifecycle.
//
// A Recipient is assigned a process server through one of two models:
//
//   - BiddingMarket: any eligible server proposes a price; the customer and a
//     proposing server may trade counter-offers until one side accepts.
//   - GuidedDirect: the customer designates a server up front; that server
//     quotes a price and the same negotiation rules apply.
//
// At most one bid per recipient ever reaches the accepted state. Acceptance
// freezes the bid and its recipient against further negotiation, records the
// assigned server and the agreed price, and hands the recipient over to
// delivery attempt tracking. Attempts are numbered contiguously from 1 and
// capped by the recipient's ceiling; a successful attempt completes the
// recipient, an exhausted ceiling fails it.
//
// Order status is always derived from recipient statuses. The only stored
// status fact is the cancellation record, which is terminal and overrides
// everything else.
//
// All mutations go through the aggregate root so that cancellation and
// cross-entity invariants are enforced in one place.
package order
