package application

import (
	"context"
	"testing"
	"time"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/infrastructure/fake"
	"github.com/stretchr/testify/require"
)

func TestReconcilerSweep(t *testing.T) {
	t.Run("resolves pending payment settled on the rail", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, fake.TagSlow))
		target.Bolt11.Timeout = 50 * time.Millisecond
		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePending, res.Status)

		r := NewReconciler(svc, nil, time.Second, 0)
		r.sweep()

		recorded, err := svc.repoManager.OutgoingPayments().Get(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, recorded.Status)
	})

	t.Run("resolves pending payment unknown to the rail", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, fake.TagTimeout))
		target.Bolt11.Timeout = 50 * time.Millisecond
		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePending, res.Status)

		r := NewReconciler(svc, nil, time.Second, 0)
		r.sweep()

		recorded, err := svc.repoManager.OutgoingPayments().Get(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StateFailed, recorded.Status)
	})

	t.Run("terminal payments are not revisited", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(700, ""))
		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, res.Status)

		r := NewReconciler(svc, nil, time.Second, 0)
		r.sweep()
		require.Equal(t, 1, backend.PayAttempts(res.Identifier))
	})
}

func TestReconcilerAttemptBudget(t *testing.T) {
	svc, _ := newTestService(t)
	id, _ := domain.NewPaymentIdentifier(domain.KindPaymentHash, "ee55")

	r := NewReconciler(svc, nil, time.Second, 3)
	require.False(t, r.exhausted(id))
	r.bump(id)
	r.bump(id)
	require.False(t, r.exhausted(id))
	r.bump(id)
	require.True(t, r.exhausted(id))
	require.True(t, r.exhausted(id), "stays exhausted")

	r.forget(id)
	require.False(t, r.exhausted(id))

	unbounded := NewReconciler(svc, nil, time.Second, 0)
	for i := 0; i < 10; i++ {
		unbounded.bump(id)
	}
	require.False(t, unbounded.exhausted(id))
}
