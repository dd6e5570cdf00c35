package badgerdb_test

import (
	"context"
	"testing"

	"github.com/mintgate/payprocd/internal/core/domain"
	badgerdb "github.com/mintgate/payprocd/internal/infrastructure/db/badger"
	"github.com/stretchr/testify/require"
)

func testIdentifier(t *testing.T, value string) domain.PaymentIdentifier {
	t.Helper()
	id, err := domain.NewPaymentIdentifier(domain.KindPaymentHash, value)
	require.NoError(t, err)
	return id
}

func TestOutgoingPaymentRepository(t *testing.T) {
	repo, err := badgerdb.NewOutgoingPaymentRepository("", nil)
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	ctx := context.Background()

	t.Run("get unknown identifier", func(t *testing.T) {
		_, err := repo.Get(ctx, testIdentifier(t, "missing"))
		require.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("upsert and get", func(t *testing.T) {
		id := testIdentifier(t, "abc123")
		result := domain.PaymentResult{
			Identifier: id,
			Proof:      "preimage",
			Status:     domain.StatePending,
			TotalSpent: 1010,
			Unit:       "sat",
		}
		require.NoError(t, repo.Upsert(ctx, result))

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, result, *got)

		result.Status = domain.StatePaid
		require.NoError(t, repo.Upsert(ctx, result))

		got, err = repo.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, got.Status)
	})

	t.Run("get by states", func(t *testing.T) {
		fixtures := map[string]domain.QuoteState{
			"st-pending": domain.StatePending,
			"st-unknown": domain.StateUnknown,
			"st-paid":    domain.StatePaid,
			"st-failed":  domain.StateFailed,
		}
		for value, state := range fixtures {
			require.NoError(t, repo.Upsert(ctx, domain.PaymentResult{
				Identifier: testIdentifier(t, value),
				Status:     state,
				Unit:       "sat",
			}))
		}

		unresolved, err := repo.GetByStates(ctx, domain.StatePending, domain.StateUnknown)
		require.NoError(t, err)

		values := make(map[string]struct{})
		for _, result := range unresolved {
			values[result.Identifier.Value] = struct{}{}
		}
		require.Contains(t, values, "st-pending")
		require.Contains(t, values, "st-unknown")
		require.NotContains(t, values, "st-paid")
		require.NotContains(t, values, "st-failed")
	})
}

func TestIncomingNotificationRepository(t *testing.T) {
	repo, err := badgerdb.NewIncomingNotificationRepository("", nil)
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	ctx := context.Background()

	id := testIdentifier(t, "incoming1")

	notifications, err := repo.GetByIdentifier(ctx, id)
	require.NoError(t, err)
	require.Empty(t, notifications)

	first := domain.IncomingNotification{
		Identifier: id, Amount: 600, Unit: "sat", PaymentId: "part-1",
	}
	added, err := repo.Add(ctx, first)
	require.NoError(t, err)
	require.True(t, added)

	// Same (identifier, payment id) pair is a duplicate.
	added, err = repo.Add(ctx, first)
	require.NoError(t, err)
	require.False(t, added)

	second := domain.IncomingNotification{
		Identifier: id, Amount: 400, Unit: "sat", PaymentId: "part-2",
	}
	added, err = repo.Add(ctx, second)
	require.NoError(t, err)
	require.True(t, added)

	notifications, err = repo.GetByIdentifier(ctx, id)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	other := testIdentifier(t, "incoming2")
	notifications, err = repo.GetByIdentifier(ctx, other)
	require.NoError(t, err)
	require.Empty(t, notifications)
}
