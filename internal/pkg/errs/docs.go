// Package errs provides standardized error types for the process-service
// coordination engine. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//   - ConflictError: an operation violates an invariant given current state
//   - OutOfTurnError: a counter-offer breaks negotiation alternation
//   - UnauthorizedError: an actor is not entitled to act on an aggregate
//   - OrderCancelledError: an action arrived after the order was cancelled
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() []error method so errors.Is matches both the sentinel and,
//     when present, the wrapped cause
//
// The first four classify caller mistakes and surface as validation or
// not-found responses. The last four classify state-dependent outcomes of the
// negotiation and delivery lifecycle; callers branch on them with errors.Is
// to decide between refresh-and-retry and giving up.
package errs
