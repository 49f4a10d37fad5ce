package commands_test

import (
	"testing"
	"time"

	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	recipients := []commands.RecipientSpec{
		{
			RecipientID: kernel.NewUUID(),
			Name:        "John Doe",
			Street:      "742 Evergreen Terrace",
			City:        "Springfield",
			State:       "IL",
			Zip:         "62704",
			Mode:        "BIDDING_MARKET",
			MaxAttempts: 3,
		},
	}
	deadline := time.Now().Add(14 * 24 * time.Hour)

	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		command, err := commands.NewCreateOrderCommand(
			orderID, kernel.NewUUID(), kernel.NewUUID(),
			deadline, "Summons and Complaint", "2026-CV-01482", recipients,
		)

		require.NoError(t, err)
		require.NoError(t, command.Validate())
		require.Equal(t, orderID, command.OrderID())
		require.Equal(t, "Summons and Complaint", command.Title())
		require.Len(t, command.Recipients(), 1)
	})

	t.Run("no recipients", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			deadline, "Summons and Complaint", "", nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrRecipientsAreRequired)
	})

	t.Run("zero deadline", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Time{}, "Summons and Complaint", "", recipients,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrDeadlineIsRequired)
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			deadline, "Summons and Complaint", "", recipients,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var command commands.CreateOrderCommand

		require.ErrorIs(t, command.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
