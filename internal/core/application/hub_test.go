package application

import (
	"context"
	"testing"
	"time"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func receiveOne(
	t *testing.T, ch <-chan domain.IncomingNotification,
) domain.IncomingNotification {
	t.Helper()
	select {
	case notification, ok := <-ch:
		require.True(t, ok, "subscription channel closed unexpectedly")
		return notification
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return domain.IncomingNotification{}
	}
}

func requireSilent(t *testing.T, ch <-chan domain.IncomingNotification) {
	t.Helper()
	select {
	case notification := <-ch:
		t.Fatalf("unexpected notification for %s", notification.Identifier)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeIncoming(t *testing.T) {
	t.Run("delivers new settlements", func(t *testing.T) {
		svc, backend := newTestService(t)

		ch, detach, err := svc.SubscribeIncoming(context.Background())
		require.NoError(t, err)
		defer detach()

		id, err := domain.NewPaymentIdentifier(domain.KindPaymentHash, "aa11")
		require.NoError(t, err)

		// Give the hub time to open the upstream subscription.
		time.Sleep(50 * time.Millisecond)
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: id, Amount: 21, PaymentId: "p1",
		})

		got := receiveOne(t, ch)
		require.Equal(t, id, got.Identifier)
		require.EqualValues(t, 21, got.Amount)
	})

	t.Run("fan-out to multiple subscribers", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		ch1, detach1, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach1()
		ch2, detach2, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach2()

		id, _ := domain.NewPaymentIdentifier(domain.KindPaymentHash, "bb22")
		time.Sleep(50 * time.Millisecond)
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: id, Amount: 5, PaymentId: "p1",
		})

		require.Equal(t, id, receiveOne(t, ch1).Identifier)
		require.Equal(t, id, receiveOne(t, ch2).Identifier)
	})

	t.Run("late subscriber sees no replay", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		ch1, detach1, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach1()

		id, _ := domain.NewPaymentIdentifier(domain.KindPaymentHash, "cc33")
		time.Sleep(50 * time.Millisecond)
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: id, Amount: 7, PaymentId: "p1",
		})
		receiveOne(t, ch1)

		ch2, detach2, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach2()
		requireSilent(t, ch2)
	})

	t.Run("detach leaves other subscribers live", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		ch1, detach1, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		ch2, detach2, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach2()

		detach1()
		select {
		case _, ok := <-ch1:
			require.False(t, ok, "detached channel should be closed")
		case <-time.After(time.Second):
			t.Fatal("detached channel not closed")
		}

		id, _ := domain.NewPaymentIdentifier(domain.KindPaymentHash, "dd44")
		time.Sleep(50 * time.Millisecond)
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: id, Amount: 3, PaymentId: "p1",
		})
		require.Equal(t, id, receiveOne(t, ch2).Identifier)
	})

	t.Run("recovers settlements missed during an outage", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		// A created payment is watched, so reconnect sweeps cover it.
		created, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Amount: 1000},
		})
		require.NoError(t, err)

		ch, detach, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach()
		time.Sleep(50 * time.Millisecond)

		backend.DropSubscribers()
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: created.Identifier, Amount: 1000, PaymentId: "p1",
		})

		// The hub resubscribes and the reconcile sweep recovers the settlement.
		got := receiveOne(t, ch)
		require.Equal(t, created.Identifier, got.Identifier)

		// The sweep must not replay it on the next reconnect.
		backend.DropSubscribers()
		requireSilent(t, ch)
	})

	t.Run("pull-based check reaches attached subscribers", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		created, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Amount: 500},
		})
		require.NoError(t, err)

		ch, detach, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach()
		time.Sleep(50 * time.Millisecond)

		// The settlement lands while the push stream is down and the mint pulls
		// it before the hub has reconnected.
		backend.DropSubscribers()
		backend.InjectNotification(domain.IncomingNotification{
			Identifier: created.Identifier, Amount: 500, PaymentId: "p1",
		})
		notifications, err := svc.CheckIncomingPayment(ctx, created.Identifier)
		require.NoError(t, err)
		require.Len(t, notifications, 1)

		require.Equal(t, created.Identifier, receiveOne(t, ch).Identifier)

		// Neither the reconnect sweep nor a repeated check replays it.
		requireSilent(t, ch)
		_, err = svc.CheckIncomingPayment(ctx, created.Identifier)
		require.NoError(t, err)
		requireSilent(t, ch)
	})
}

func isWatched(svc *Service, id domain.PaymentIdentifier) bool {
	svc.hub.mu.Lock()
	defer svc.hub.mu.Unlock()
	_, ok := svc.hub.watched[id]
	return ok
}

func TestReconnectSweepScope(t *testing.T) {
	t.Run("settled identifiers leave the sweep", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		created, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Amount: 100},
		})
		require.NoError(t, err)
		require.True(t, isWatched(svc, created.Identifier))

		ch, detach, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach()
		time.Sleep(50 * time.Millisecond)

		backend.InjectNotification(domain.IncomingNotification{
			Identifier: created.Identifier, Amount: 100, PaymentId: "p1",
		})
		receiveOne(t, ch)
		require.False(t, isWatched(svc, created.Identifier))
	})

	t.Run("expired identifiers leave the sweep", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		expiry := time.Now().Add(-time.Minute)
		created, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Amount: 100, Expiry: &expiry},
		})
		require.NoError(t, err)
		require.True(t, isWatched(svc, created.Identifier))

		// The first sweep after connecting drops the expired entry.
		_, detach, err := svc.SubscribeIncoming(ctx)
		require.NoError(t, err)
		defer detach()
		require.Eventually(t, func() bool {
			return !isWatched(svc, created.Identifier)
		}, time.Second, 10*time.Millisecond)
	})
}
