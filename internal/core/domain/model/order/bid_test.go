package order_test

import (
	"testing"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBid(t *testing.T) {
	validID := kernel.NewUUID()
	serverID := kernel.NewUUID()
	placedAt := time.Now()

	t.Run("should create pending bid with all valid parameters", func(t *testing.T) {
		amount := mustMoney(t, 35000)

		bid, err := order.NewBid(validID, serverID, amount, "same-day service", placedAt)

		require.NoError(t, err)
		require.NoError(t, bid.Validate())
		assert.True(t, bid.ID().IsEqual(validID))
		assert.True(t, bid.ServerID().IsEqual(serverID))
		assert.Equal(t, order.BidPending, bid.Status())
		assert.Equal(t, "same-day service", bid.Comment())
		assert.Nil(t, bid.Counter())
		assert.Equal(t, 0, bid.CounterRound())
		assert.Equal(t, placedAt, bid.PlacedAt())
		assert.Equal(t, placedAt, bid.LastActionAt())
	})

	t.Run("should start with the server's price on the table", func(t *testing.T) {
		amount := mustMoney(t, 35000)
		bid, _ := order.NewBid(validID, serverID, amount, "", placedAt)

		assert.Equal(t, order.PartyProcessServer, bid.LastCounterBy())
		assert.True(t, bid.CurrentAmount().IsEqual(amount))
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		bid, err := order.NewBid(validID, serverID, mustMoney(t, 0), "", placedAt)

		require.Error(t, err)
		assert.Nil(t, bid)
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "not greater than 0")
	})

	t.Run("should fail with invalid server ID", func(t *testing.T) {
		var invalidServer kernel.UUID

		bid, err := order.NewBid(validID, invalidServer, mustMoney(t, 35000), "", placedAt)

		require.Error(t, err)
		assert.Nil(t, bid)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestBid_CounterBy(t *testing.T) {
	placedAt := time.Now()

	newPendingBid := func(t *testing.T) *order.Bid {
		t.Helper()
		bid, err := order.NewBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 50000), "", placedAt)
		require.NoError(t, err)
		return bid
	}

	t.Run("should put the customer's counter on the table", func(t *testing.T) {
		bid := newPendingBid(t)
		counteredAt := placedAt.Add(time.Hour)

		err := bid.CounterBy(order.PartyCustomer, mustMoney(t, 45000), "too steep", 10, counteredAt)

		require.NoError(t, err)
		counter := bid.Counter()
		require.NotNil(t, counter)
		assert.Equal(t, order.PartyCustomer, counter.By())
		assert.Equal(t, int64(45000), counter.Amount().Cents())
		assert.Equal(t, "too steep", counter.Notes())
		assert.Equal(t, 1, counter.Round())
		assert.Equal(t, order.PartyCustomer, bid.LastCounterBy())
		assert.Equal(t, int64(45000), bid.CurrentAmount().Cents())
		assert.Equal(t, counteredAt, bid.LastActionAt())
		// The original proposal is preserved alongside the counter.
		assert.Equal(t, int64(50000), bid.Amount().Cents())
	})

	t.Run("should alternate between the parties", func(t *testing.T) {
		bid := newPendingBid(t)

		require.NoError(t, bid.CounterBy(order.PartyCustomer, mustMoney(t, 45000), "", 10, placedAt))
		require.NoError(t, bid.CounterBy(order.PartyProcessServer, mustMoney(t, 48000), "", 10, placedAt))
		require.NoError(t, bid.CounterBy(order.PartyCustomer, mustMoney(t, 46000), "", 10, placedAt))

		assert.Equal(t, 3, bid.CounterRound())
		assert.Equal(t, int64(46000), bid.CurrentAmount().Cents())
	})

	t.Run("should refuse the server countering its own proposal", func(t *testing.T) {
		bid := newPendingBid(t)

		err := bid.CounterBy(order.PartyProcessServer, mustMoney(t, 48000), "", 10, placedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.OutOfTurnError{}, err)
		assert.Contains(t, err.Error(), "PROCESS_SERVER")
	})

	t.Run("should refuse consecutive counters from the same party", func(t *testing.T) {
		bid := newPendingBid(t)
		require.NoError(t, bid.CounterBy(order.PartyCustomer, mustMoney(t, 45000), "", 10, placedAt))

		err := bid.CounterBy(order.PartyCustomer, mustMoney(t, 44000), "", 10, placedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.OutOfTurnError{}, err)
		assert.Equal(t, 1, bid.CounterRound())
	})

	t.Run("should stop at the round limit", func(t *testing.T) {
		bid := newPendingBid(t)
		require.NoError(t, bid.CounterBy(order.PartyCustomer, mustMoney(t, 45000), "", 2, placedAt))
		require.NoError(t, bid.CounterBy(order.PartyProcessServer, mustMoney(t, 48000), "", 2, placedAt))

		err := bid.CounterBy(order.PartyCustomer, mustMoney(t, 46000), "", 2, placedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Contains(t, err.Error(), "round limit")
		assert.Equal(t, 2, bid.CounterRound())
	})

	t.Run("should allow unlimited rounds when uncapped", func(t *testing.T) {
		bid := newPendingBid(t)
		parties := []order.Party{order.PartyCustomer, order.PartyProcessServer}

		for i := range 20 {
			err := bid.CounterBy(parties[i%2], mustMoney(t, int64(45000-i)), "", 0, placedAt)
			require.NoError(t, err)
		}

		assert.Equal(t, 20, bid.CounterRound())
	})

	t.Run("should refuse zero counter amount", func(t *testing.T) {
		bid := newPendingBid(t)

		err := bid.CounterBy(order.PartyCustomer, mustMoney(t, 0), "", 10, placedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount is invalid")
	})
}

func TestRestoreBid(t *testing.T) {
	placedAt := time.Now().Add(-time.Hour)
	lastActionAt := time.Now()

	t.Run("should restore a resolved bid with its counter-offer", func(t *testing.T) {
		bidID := kernel.NewUUID()
		serverID := kernel.NewUUID()
		counter, err := order.RestoreCounterOffer(order.PartyCustomer, mustMoney(t, 45000), "final offer", 3)
		require.NoError(t, err)

		bid, err := order.RestoreBid(
			bidID, serverID, mustMoney(t, 50000), "with rush",
			order.BidAccepted, &counter, placedAt, lastActionAt,
		)

		require.NoError(t, err)
		require.NoError(t, bid.Validate())
		assert.Equal(t, order.BidAccepted, bid.Status())
		assert.Equal(t, 3, bid.CounterRound())
		assert.Equal(t, order.PartyCustomer, bid.LastCounterBy())
		assert.Equal(t, placedAt, bid.PlacedAt())
		assert.Equal(t, lastActionAt, bid.LastActionAt())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		bid, err := order.RestoreBid(
			kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 50000), "",
			order.BidStatus(99), nil, placedAt, lastActionAt,
		)

		require.Error(t, err)
		assert.Nil(t, bid)
	})
}

func TestBid_Validate(t *testing.T) {
	t.Run("should fail validation for nil bid", func(t *testing.T) {
		var bid *order.Bid

		err := bid.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrBidIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value bid", func(t *testing.T) {
		var bid order.Bid

		err := bid.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrBidIsNotConstructed, err)
	})
}
