package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: amount", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: amount (cause: invalid format)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("attemptNumber", 4, 1, 3)

		assert.Equal(t, "attemptNumber", err.ParamName)
		assert.Equal(t, 4, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 3, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 4 is attemptNumber, min value is 1, max value is 3", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("destination")

		assert.Equal(t, "destination", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: destination", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("destination", cause)

		assert.Equal(t, "destination", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: destination (cause: missing required field)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("bid is already resolved")

		assert.Equal(t, "bid is already resolved", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict with current state: bid is already resolved", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("sibling bid accepted first")
		err := errs.NewConflictErrorWithCause("bid is already resolved", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict with current state: bid is already resolved (cause: sibling bid accepted first)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOutOfTurnError(t *testing.T) {
	t.Run("NewOutOfTurnError", func(t *testing.T) {
		err := errs.NewOutOfTurnError("customer")

		assert.Equal(t, "customer", err.Actor)
		assert.Equal(t, "out of turn: customer", err.Error())
		require.ErrorIs(t, err, errs.ErrOutOfTurn)
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("server 42")

		assert.Equal(t, "server 42", err.Actor)
		assert.Equal(t, "actor is not authorized: server 42", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestOrderCancelledError(t *testing.T) {
	t.Run("NewOrderCancelledError", func(t *testing.T) {
		err := errs.NewOrderCancelledError("abc-123")

		assert.Equal(t, "abc-123", err.OrderID)
		assert.Equal(t, "order is cancelled: abc-123", err.Error())
		require.ErrorIs(t, err, errs.ErrOrderCancelled)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrOutOfTurn)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrOrderCancelled)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict with current state", errs.ErrConflict.Error())
		assert.Equal(t, "out of turn", errs.ErrOutOfTurn.Error())
		assert.Equal(t, "actor is not authorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "order is cancelled", errs.ErrOrderCancelled.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("attempts", 4, 1, 3), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("destination"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("locked"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewOutOfTurnError("customer"), errs.ErrOutOfTurn)
		require.ErrorIs(t, errs.NewUnauthorizedError("server"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewOrderCancelledError("abc"), errs.ErrOrderCancelled)
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		cause := errors.New("no counter-offer to accept")

		require.ErrorIs(t, errs.NewConflictErrorWithCause("cannot accept", cause), cause)
		require.ErrorIs(t, errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause), cause)
		require.ErrorIs(t, errs.NewValueIsInvalidErrorWithCause("amount", cause), cause)
		require.ErrorIs(t, errs.NewValueIsRequiredErrorWithCause("destination", cause), cause)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeErrorWithCause("attempts", 4, 1, 3, cause), cause)
		require.ErrorIs(t, errs.NewOutOfTurnErrorWithCause("customer", cause), cause)
		require.ErrorIs(t, errs.NewUnauthorizedErrorWithCause("server", cause), cause)
		require.ErrorIs(t, errs.NewOrderCancelledErrorWithCause("abc", cause), cause)
	})

	t.Run("errors.As finds the concrete type through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", errs.NewConflictErrorWithCause("locked", errors.New("sibling won")))

		var conflict *errs.ConflictError
		require.ErrorAs(t, wrapped, &conflict)
		assert.Equal(t, "locked", conflict.Message)
	})
}
