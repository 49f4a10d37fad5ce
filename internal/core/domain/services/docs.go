// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the service-of-process system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingCalculator: A domain service deriving recipient and order totals
//     from accepted bids, service-option fees and the processing surcharge
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
