package order_test

import (
	"errors"
	"testing"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("742 Evergreen Terrace", "Springfield", "IL", "62704")
	require.NoError(t, err)
	return address
}

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return money
}

func marketRecipient(t *testing.T, maxAttempts int) *order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient(
		kernel.NewUUID(), 1, "John Doe", mustAddress(t),
		order.BiddingMarket, order.ServiceOptions{ProcessService: true}, maxAttempts, nil,
	)
	require.NoError(t, err)
	return recipient
}

func guidedRecipient(t *testing.T, serverID kernel.UUID) *order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient(
		kernel.NewUUID(), 1, "Jane Roe", mustAddress(t),
		order.GuidedDirect, order.ServiceOptions{}, 3, &serverID,
	)
	require.NoError(t, err)
	return recipient
}

// assignedRecipient returns a market recipient with one accepted bid from
// serverID at the given amount.
func assignedRecipient(t *testing.T, serverID kernel.UUID, cents int64, maxAttempts int) *order.Recipient {
	t.Helper()
	recipient := marketRecipient(t, maxAttempts)
	bidID := kernel.NewUUID()
	_, err := recipient.PlaceBid(bidID, serverID, mustMoney(t, cents), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, recipient.AcceptBid(bidID, time.Now()))
	return recipient
}

func TestNewRecipient(t *testing.T) {
	validID := kernel.NewUUID()
	serverID := kernel.NewUUID()

	t.Run("should create open bidding-market recipient", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "John Doe", mustAddress(t),
			order.BiddingMarket, order.ServiceOptions{RushService: true}, 3, nil,
		)

		require.NoError(t, err)
		require.NoError(t, recipient.Validate())
		assert.True(t, recipient.ID().IsEqual(validID))
		assert.Equal(t, order.StatusOpen, recipient.Status())
		assert.Equal(t, 3, recipient.MaxAttempts())
		assert.Nil(t, recipient.DesignatedServerID())
		assert.Nil(t, recipient.AssignedServerID())
		assert.Nil(t, recipient.AgreedPrice())
		assert.Empty(t, recipient.Bids())
	})

	t.Run("should create guided recipient awaiting a quote", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "Jane Roe", mustAddress(t),
			order.GuidedDirect, order.ServiceOptions{}, 3, &serverID,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusAwaitingQuote, recipient.Status())
		require.NotNil(t, recipient.DesignatedServerID())
		assert.True(t, recipient.DesignatedServerID().IsEqual(serverID))
	})

	t.Run("should fail guided recipient without designated server", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "Jane Roe", mustAddress(t),
			order.GuidedDirect, order.ServiceOptions{}, 3, nil,
		)

		require.Error(t, err)
		assert.Nil(t, recipient)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "designatedServerId")
	})

	t.Run("should fail market recipient with designated server", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "John Doe", mustAddress(t),
			order.BiddingMarket, order.ServiceOptions{}, 3, &serverID,
		)

		require.Error(t, err)
		assert.Nil(t, recipient)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should fail with zero sequence", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 0, "John Doe", mustAddress(t),
			order.BiddingMarket, order.ServiceOptions{}, 3, nil,
		)

		require.Error(t, err)
		assert.Nil(t, recipient)
		assert.Contains(t, err.Error(), "sequence is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "", mustAddress(t),
			order.BiddingMarket, order.ServiceOptions{}, 3, nil,
		)

		require.Error(t, err)
		assert.Nil(t, recipient)
		assert.Contains(t, err.Error(), "recipientName is required")
	})

	t.Run("should fail with zero maxAttempts", func(t *testing.T) {
		recipient, err := order.NewRecipient(
			validID, 1, "John Doe", mustAddress(t),
			order.BiddingMarket, order.ServiceOptions{}, 0, nil,
		)

		require.Error(t, err)
		assert.Nil(t, recipient)
		assert.Contains(t, err.Error(), "maxAttempts is invalid")
	})
}

func TestRecipient_PlaceBid(t *testing.T) {
	now := time.Now()

	t.Run("should move open market recipient to bidding on first bid", func(t *testing.T) {
		recipient := marketRecipient(t, 3)

		bid, err := recipient.PlaceBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 30000), "quick turnaround", now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusBidding, recipient.Status())
		assert.Equal(t, order.BidPending, bid.Status())
		assert.Len(t, recipient.Bids(), 1)
	})

	t.Run("should accept competing bids while bidding", func(t *testing.T) {
		recipient := marketRecipient(t, 3)

		_, err := recipient.PlaceBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 30000), "", now)
		require.NoError(t, err)
		_, err = recipient.PlaceBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 25000), "", now)
		require.NoError(t, err)

		assert.Len(t, recipient.Bids(), 2)
		assert.Equal(t, order.StatusBidding, recipient.Status())
	})

	t.Run("should reject bid on assigned recipient", func(t *testing.T) {
		recipient := assignedRecipient(t, kernel.NewUUID(), 30000, 3)

		_, err := recipient.PlaceBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 20000), "", now)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should accept quote from designated server on guided recipient", func(t *testing.T) {
		serverID := kernel.NewUUID()
		recipient := guidedRecipient(t, serverID)

		bid, err := recipient.PlaceBid(kernel.NewUUID(), serverID, mustMoney(t, 15000), "", now)

		require.NoError(t, err)
		assert.Equal(t, order.BidPending, bid.Status())
		// A guided quote does not open a bidding market.
		assert.Equal(t, order.StatusAwaitingQuote, recipient.Status())
	})

	t.Run("should reject quote from a non-designated server", func(t *testing.T) {
		recipient := guidedRecipient(t, kernel.NewUUID())
		stranger := kernel.NewUUID()

		bid, err := recipient.PlaceBid(kernel.NewUUID(), stranger, mustMoney(t, 15000), "", now)

		require.Error(t, err)
		assert.Nil(t, bid)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
		assert.Contains(t, err.Error(), stranger.String())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		recipient := marketRecipient(t, 3)

		_, err := recipient.PlaceBid(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 0), "", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount is invalid")
	})
}

func TestRecipient_AcceptBid(t *testing.T) {
	now := time.Now()

	t.Run("should assign recipient and reject losing bids", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		serverA := kernel.NewUUID()
		serverB := kernel.NewUUID()
		bidA := kernel.NewUUID()
		bidB := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidA, serverA, mustMoney(t, 30000), "", now)
		require.NoError(t, err)
		_, err = recipient.PlaceBid(bidB, serverB, mustMoney(t, 25000), "", now)
		require.NoError(t, err)

		require.NoError(t, recipient.AcceptBid(bidB, now))

		assert.Equal(t, order.StatusAssigned, recipient.Status())
		require.NotNil(t, recipient.AssignedServerID())
		assert.True(t, recipient.AssignedServerID().IsEqual(serverB))
		require.NotNil(t, recipient.AgreedPrice())
		assert.Equal(t, int64(25000), recipient.AgreedPrice().Cents())

		winner, err := recipient.BidByID(bidB)
		require.NoError(t, err)
		assert.Equal(t, order.BidAccepted, winner.Status())

		loser, err := recipient.BidByID(bidA)
		require.NoError(t, err)
		assert.Equal(t, order.BidRejected, loser.Status())
	})

	t.Run("should fail when another bid was already accepted", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidA := kernel.NewUUID()
		bidB := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidA, kernel.NewUUID(), mustMoney(t, 30000), "", now)
		require.NoError(t, err)
		_, err = recipient.PlaceBid(bidB, kernel.NewUUID(), mustMoney(t, 25000), "", now)
		require.NoError(t, err)
		require.NoError(t, recipient.AcceptBid(bidA, now))

		err = recipient.AcceptBid(bidB, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Contains(t, err.Error(), "already has an accepted bid")
	})

	t.Run("should fail for unknown bid", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		unknown := kernel.NewUUID()

		err := recipient.AcceptBid(unknown, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	})
}

func TestRecipient_Negotiation(t *testing.T) {
	now := time.Now()
	maxRounds := 10

	t.Run("should settle at the countered amount when the counter is accepted", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		serverID := kernel.NewUUID()
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, serverID, mustMoney(t, 50000), "", now)
		require.NoError(t, err)

		// Customer counters 500.00 down to 450.00.
		err = recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 45000), "meet in the middle", maxRounds, now)
		require.NoError(t, err)

		// The server accepts the customer's counter.
		err = recipient.AcceptCounter(bidID, order.PartyProcessServer, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusAssigned, recipient.Status())
		require.NotNil(t, recipient.AgreedPrice())
		assert.Equal(t, int64(45000), recipient.AgreedPrice().Cents())
	})

	t.Run("should refuse counter acceptance by the party that countered last", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 50000), "", now)
		require.NoError(t, err)
		require.NoError(t, recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 45000), "", maxRounds, now))

		err = recipient.AcceptCounter(bidID, order.PartyCustomer, now)

		require.Error(t, err)
		assert.IsType(t, &errs.OutOfTurnError{}, err)
	})

	t.Run("should refuse counter acceptance when no counter exists", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 50000), "", now)
		require.NoError(t, err)

		err = recipient.AcceptCounter(bidID, order.PartyCustomer, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.True(t, errors.Is(err, order.ErrNoCounterOffer))
	})

	t.Run("should enforce counter alternation", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 50000), "", now)
		require.NoError(t, err)
		require.NoError(t, recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 45000), "", maxRounds, now))

		err = recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 44000), "", maxRounds, now)

		require.Error(t, err)
		assert.IsType(t, &errs.OutOfTurnError{}, err)
	})

	t.Run("should refuse counters once the recipient is assigned", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()
		otherBid := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 50000), "", now)
		require.NoError(t, err)
		_, err = recipient.PlaceBid(otherBid, kernel.NewUUID(), mustMoney(t, 48000), "", now)
		require.NoError(t, err)
		require.NoError(t, recipient.AcceptBid(bidID, now))

		err = recipient.CounterBid(otherBid, order.PartyCustomer, mustMoney(t, 40000), "", maxRounds, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Contains(t, err.Error(), "no longer negotiating")
	})

	t.Run("should cap negotiation rounds", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 50000), "", now)
		require.NoError(t, err)

		require.NoError(t, recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 45000), "", 2, now))
		require.NoError(t, recipient.CounterBid(bidID, order.PartyProcessServer, mustMoney(t, 48000), "", 2, now))

		err = recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 46000), "", 2, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})
}

func TestRecipient_RecordAttempt(t *testing.T) {
	now := time.Now()

	t.Run("should complete after two failures and one success", func(t *testing.T) {
		serverID := kernel.NewUUID()
		recipient := assignedRecipient(t, serverID, 30000, 3)

		_, err := recipient.RecordAttempt(kernel.NewUUID(), serverID, false, "no answer", nil, now)
		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, recipient.Status())

		_, err = recipient.RecordAttempt(kernel.NewUUID(), serverID, false, "gated community", nil, now)
		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, recipient.Status())

		attempt, err := recipient.RecordAttempt(kernel.NewUUID(), serverID, true, "served at door", nil, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCompleted, recipient.Status())
		assert.Equal(t, 3, recipient.AttemptCount())
		assert.Equal(t, 3, attempt.Number())
		assert.True(t, attempt.WasSuccessful())
	})

	t.Run("should fail recipient when attempts are exhausted", func(t *testing.T) {
		serverID := kernel.NewUUID()
		recipient := assignedRecipient(t, serverID, 30000, 2)

		_, err := recipient.RecordAttempt(kernel.NewUUID(), serverID, false, "", nil, now)
		require.NoError(t, err)
		_, err = recipient.RecordAttempt(kernel.NewUUID(), serverID, false, "", nil, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusFailed, recipient.Status())
		assert.Equal(t, 2, recipient.AttemptCount())

		_, err = recipient.RecordAttempt(kernel.NewUUID(), serverID, false, "", nil, now)
		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
		assert.Equal(t, 2, recipient.AttemptCount())
	})

	t.Run("should refuse attempts from anyone but the assigned server", func(t *testing.T) {
		recipient := assignedRecipient(t, kernel.NewUUID(), 30000, 3)
		stranger := kernel.NewUUID()

		_, err := recipient.RecordAttempt(kernel.NewUUID(), stranger, true, "", nil, now)

		require.Error(t, err)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
		assert.Equal(t, 0, recipient.AttemptCount())
	})

	t.Run("should refuse attempts before assignment", func(t *testing.T) {
		recipient := marketRecipient(t, 3)

		_, err := recipient.RecordAttempt(kernel.NewUUID(), kernel.NewUUID(), true, "", nil, now)

		require.Error(t, err)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
	})

	t.Run("should record geolocation when provided", func(t *testing.T) {
		serverID := kernel.NewUUID()
		recipient := assignedRecipient(t, serverID, 30000, 3)
		geo := &order.Geolocation{Latitude: 39.7817, Longitude: -89.6501}

		attempt, err := recipient.RecordAttempt(kernel.NewUUID(), serverID, true, "", geo, now)

		require.NoError(t, err)
		require.NotNil(t, attempt.Geo())
		assert.InDelta(t, 39.7817, attempt.Geo().Latitude, 0.0001)
	})
}

func TestRecipient_ExpireStaleBids(t *testing.T) {
	now := time.Now()
	cutoff := now.Add(-time.Hour)

	t.Run("should reject pending bids older than the cutoff", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		staleBid := kernel.NewUUID()
		freshBid := kernel.NewUUID()

		_, err := recipient.PlaceBid(staleBid, kernel.NewUUID(), mustMoney(t, 30000), "", now.Add(-2*time.Hour))
		require.NoError(t, err)
		_, err = recipient.PlaceBid(freshBid, kernel.NewUUID(), mustMoney(t, 25000), "", now.Add(-time.Minute))
		require.NoError(t, err)

		expired := recipient.ExpireStaleBids(cutoff, now)

		require.Len(t, expired, 1)
		assert.True(t, expired[0].IsEqual(staleBid))

		stale, err := recipient.BidByID(staleBid)
		require.NoError(t, err)
		assert.Equal(t, order.BidRejected, stale.Status())

		fresh, err := recipient.BidByID(freshBid)
		require.NoError(t, err)
		assert.Equal(t, order.BidPending, fresh.Status())
	})

	t.Run("should keep a stale bid alive while its negotiation is active", func(t *testing.T) {
		recipient := marketRecipient(t, 3)
		bidID := kernel.NewUUID()

		_, err := recipient.PlaceBid(bidID, kernel.NewUUID(), mustMoney(t, 30000), "", now.Add(-2*time.Hour))
		require.NoError(t, err)
		// A recent counter refreshes the bid's last action.
		require.NoError(t, recipient.CounterBid(bidID, order.PartyCustomer, mustMoney(t, 28000), "", 10, now.Add(-time.Minute)))

		expired := recipient.ExpireStaleBids(cutoff, now)

		assert.Empty(t, expired)
	})

	t.Run("should not touch assigned recipients", func(t *testing.T) {
		serverID := kernel.NewUUID()
		recipient := assignedRecipient(t, serverID, 30000, 3)

		expired := recipient.ExpireStaleBids(now.Add(time.Hour), now)

		assert.Empty(t, expired)
		assert.Equal(t, order.StatusAssigned, recipient.Status())
	})
}

func TestRecipient_Validate(t *testing.T) {
	t.Run("should fail validation for nil recipient", func(t *testing.T) {
		var recipient *order.Recipient

		err := recipient.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrRecipientIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value recipient", func(t *testing.T) {
		var recipient order.Recipient

		err := recipient.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrRecipientIsNotConstructed, err)
	})
}
