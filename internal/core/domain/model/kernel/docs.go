// Package kernel provides core domain primitives for the process-service
// coordination engine. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a value object for monetary amounts with cent precision
//   - Address: a value object for a service destination with zip validation
//   - ConstructorGuard: a defensive pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
