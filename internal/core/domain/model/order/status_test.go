package order_test

import (
	"testing"

	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusOpen,
			order.StatusBidding,
			order.StatusAwaitingQuote,
			order.StatusAssigned,
			order.StatusInProgress,
			order.StatusCompleted,
			order.StatusFailed,
		}

		for _, status := range statuses {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire tokens", func(t *testing.T) {
		assert.Equal(t, "OPEN", order.StatusOpen.String())
		assert.Equal(t, "BIDDING", order.StatusBidding.String())
		assert.Equal(t, "AWAITING_QUOTE", order.StatusAwaitingQuote.String())
		assert.Equal(t, "ASSIGNED", order.StatusAssigned.String())
		assert.Equal(t, "IN_PROGRESS", order.StatusInProgress.String())
		assert.Equal(t, "COMPLETED", order.StatusCompleted.String())
		assert.Equal(t, "FAILED", order.StatusFailed.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatus_Predicates(t *testing.T) {
	t.Run("should mark only completed and failed as terminal", func(t *testing.T) {
		assert.True(t, order.StatusCompleted.IsTerminal())
		assert.True(t, order.StatusFailed.IsTerminal())
		assert.False(t, order.StatusOpen.IsTerminal())
		assert.False(t, order.StatusBidding.IsTerminal())
		assert.False(t, order.StatusAwaitingQuote.IsTerminal())
		assert.False(t, order.StatusAssigned.IsTerminal())
		assert.False(t, order.StatusInProgress.IsTerminal())
	})

	t.Run("should mark pre-assignment statuses as negotiable", func(t *testing.T) {
		assert.True(t, order.StatusOpen.IsNegotiable())
		assert.True(t, order.StatusBidding.IsNegotiable())
		assert.True(t, order.StatusAwaitingQuote.IsNegotiable())
		assert.False(t, order.StatusAssigned.IsNegotiable())
		assert.False(t, order.StatusInProgress.IsNegotiable())
		assert.False(t, order.StatusCompleted.IsNegotiable())
		assert.False(t, order.StatusFailed.IsNegotiable())
	})

	t.Run("should report accepted price from assignment onwards", func(t *testing.T) {
		assert.False(t, order.StatusBidding.HasAcceptedPrice())
		assert.True(t, order.StatusAssigned.HasAcceptedPrice())
		assert.True(t, order.StatusInProgress.HasAcceptedPrice())
		assert.True(t, order.StatusCompleted.HasAcceptedPrice())
		assert.True(t, order.StatusFailed.HasAcceptedPrice())
	})
}

func TestStatus_StartBidding(t *testing.T) {
	t.Run("should transition open to bidding", func(t *testing.T) {
		newStatus, err := order.StatusOpen.StartBidding()

		require.NoError(t, err)
		assert.Equal(t, order.StatusBidding, newStatus)
	})

	t.Run("should allow later bids while bidding", func(t *testing.T) {
		newStatus, err := order.StatusBidding.StartBidding()

		require.NoError(t, err)
		assert.Equal(t, order.StatusBidding, newStatus)
	})

	t.Run("should fail from assigned", func(t *testing.T) {
		_, err := order.StatusAssigned.StartBidding()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Contains(t, err.Error(), "ASSIGNED is not a valid status to start bidding")
	})

	t.Run("should fail from terminal statuses", func(t *testing.T) {
		_, err := order.StatusCompleted.StartBidding()
		require.Error(t, err)

		_, err = order.StatusFailed.StartBidding()
		require.Error(t, err)
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should assign from any negotiable status", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusOpen, order.StatusBidding, order.StatusAwaitingQuote} {
			newStatus, err := status.Assign()

			require.NoError(t, err, status.String())
			assert.Equal(t, order.StatusAssigned, newStatus)
		}
	})

	t.Run("should fail double assignment", func(t *testing.T) {
		_, err := order.StatusAssigned.Assign()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Contains(t, err.Error(), "already has an accepted bid")
	})
}

func TestStatus_AttemptTransitions(t *testing.T) {
	t.Run("should begin attempts from assigned", func(t *testing.T) {
		newStatus, err := order.StatusAssigned.BeginAttempt()

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, newStatus)
	})

	t.Run("should continue attempts while in progress", func(t *testing.T) {
		newStatus, err := order.StatusInProgress.BeginAttempt()

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, newStatus)
	})

	t.Run("should complete from assigned or in progress", func(t *testing.T) {
		newStatus, err := order.StatusAssigned.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, newStatus)

		newStatus, err = order.StatusInProgress.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, newStatus)
	})

	t.Run("should fail from assigned or in progress", func(t *testing.T) {
		newStatus, err := order.StatusAssigned.Fail()
		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, newStatus)

		newStatus, err = order.StatusInProgress.Fail()
		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, newStatus)
	})

	t.Run("should reject attempts before assignment", func(t *testing.T) {
		_, err := order.StatusBidding.BeginAttempt()
		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)

		_, err = order.StatusBidding.Complete()
		require.Error(t, err)

		_, err = order.StatusBidding.Fail()
		require.Error(t, err)
	})

	t.Run("should reject attempts after terminal status", func(t *testing.T) {
		_, err := order.StatusCompleted.BeginAttempt()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "COMPLETED is not a valid status to record an attempt")

		_, err = order.StatusFailed.Complete()
		require.Error(t, err)
	})
}
