package application

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/infrastructure/db"
	"github.com/mintgate/payprocd/internal/infrastructure/fake"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *fake.Backend) {
	t.Helper()
	repoManager, err := db.NewService(db.ServiceConfig{
		DbType:   "badger",
		DbConfig: []any{"", nil},
	})
	require.NoError(t, err)

	backend := fake.NewBackend(fake.Config{
		Unit:          "sat",
		Mpp:           true,
		Bolt12:        true,
		Amountless:    true,
		FeePercent:    1,
		ReserveFeeMin: 1,
	})

	svc, err := NewService(backend, repoManager, time.Second, 10*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(svc.Stop)
	return svc, backend
}

func bolt11Target(request string) domain.OutgoingPaymentTarget {
	return domain.OutgoingPaymentTarget{
		Bolt11: &domain.Bolt11OutgoingTarget{Request: request},
	}
}

func TestSettings(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.Settings()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(settings), &decoded))
	require.Equal(t, "sat", decoded["unit"])
	require.Equal(t, true, decoded["mpp"])
}

func TestGetPaymentQuote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("bolt11 invoice", func(t *testing.T) {
		quote, err := svc.GetPaymentQuote(ctx, bolt11Target(fake.Invoice(1000, "")), "sat", nil)
		require.NoError(t, err)
		require.EqualValues(t, 1000, quote.Amount)
		require.EqualValues(t, 10, quote.Fee)
		require.Equal(t, domain.StateUnpaid, quote.State)
		require.Equal(t, domain.KindPaymentHash, quote.Identifier.Kind)
	})

	t.Run("reserve fee floor", func(t *testing.T) {
		quote, err := svc.GetPaymentQuote(ctx, bolt11Target(fake.Invoice(10, "")), "sat", nil)
		require.NoError(t, err)
		require.EqualValues(t, 1, quote.Fee)
	})

	t.Run("amountless offer", func(t *testing.T) {
		target := domain.OutgoingPaymentTarget{
			Bolt12: &domain.Bolt12OutgoingTarget{Offer: fake.Offer(0, "")},
		}
		opts := &domain.MeltOptions{
			Amountless: &domain.AmountlessOptions{AmountMsat: 21000},
		}
		quote, err := svc.GetPaymentQuote(ctx, target, "sat", opts)
		require.NoError(t, err)
		require.EqualValues(t, 21, quote.Amount)
		require.Equal(t, domain.KindOfferId, quote.Identifier.Kind)
	})

	t.Run("conflicting melt options", func(t *testing.T) {
		target := bolt11Target(fake.Invoice(1000, ""))
		target.Bolt11.MeltOptions = &domain.MeltOptions{
			Mpp: &domain.MppOptions{Amount: 100},
		}
		opts := &domain.MeltOptions{Mpp: &domain.MppOptions{Amount: 200}}
		_, err := svc.GetPaymentQuote(ctx, target, "sat", opts)
		require.ErrorIs(t, err, domain.ErrConflictingOptions)
	})

	t.Run("malformed request", func(t *testing.T) {
		_, err := svc.GetPaymentQuote(ctx, bolt11Target("not a request"), "sat", nil)
		require.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestMakePayment(t *testing.T) {
	t.Run("settles and records", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, ""))
		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, res.Status)
		require.NotEmpty(t, res.Proof)
		require.EqualValues(t, 1010, res.TotalSpent)
		require.Equal(t, 1, backend.PayAttempts(res.Identifier))

		checked, err := svc.CheckOutgoingPayment(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, checked.Status)
	})

	t.Run("repeat call returns recorded result without paying again", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(500, ""))
		first, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)

		second, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, first.Proof, second.Proof)
		require.Equal(t, 1, backend.PayAttempts(first.Identifier))
	})

	t.Run("concurrent calls dispatch once", func(t *testing.T) {
		svc, backend := newTestService(t)
		target := bolt11Target(fake.Invoice(900, ""))

		const callers = 8
		results := make([]*domain.PaymentResult, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.MakePayment(context.Background(), target, 0, 0)
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			require.Equal(t, domain.StatePaid, results[i].Status)
		}
		require.Equal(t, 1, backend.PayAttempts(results[0].Identifier))
	})

	t.Run("fee ceiling rejects before the rail", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, ""))
		_, err := svc.MakePayment(ctx, target, 0, 5)
		require.ErrorIs(t, err, domain.ErrFeeExceeded)

		quote, err := svc.GetPaymentQuote(ctx, target, "sat", nil)
		require.NoError(t, err)
		require.Equal(t, 0, backend.PayAttempts(quote.Identifier))

		// Nothing was recorded: the quote can be retried with a higher ceiling.
		_, err = svc.CheckOutgoingPayment(ctx, quote.Identifier)
		require.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("target fee ceiling applies when stricter", func(t *testing.T) {
		svc, _ := newTestService(t)
		target := bolt11Target(fake.Invoice(1000, ""))
		target.Bolt11.MaxFee = 5

		_, err := svc.MakePayment(context.Background(), target, 0, 100)
		require.ErrorIs(t, err, domain.ErrFeeExceeded)
	})

	t.Run("partial above amount is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		target := bolt11Target(fake.Invoice(1000, ""))

		_, err := svc.MakePayment(context.Background(), target, 2000, 0)
		require.ErrorIs(t, err, domain.ErrAmountMismatch)
	})

	t.Run("partial amount in two places is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		target := bolt11Target(fake.Invoice(1000, ""))
		target.Bolt11.MeltOptions = &domain.MeltOptions{
			Mpp: &domain.MppOptions{Amount: 300},
		}

		_, err := svc.MakePayment(context.Background(), target, 400, 0)
		require.ErrorIs(t, err, domain.ErrConflictingOptions)
	})

	t.Run("conflicting partials rejected before quoting", func(t *testing.T) {
		svc, _ := newTestService(t)
		target := bolt11Target("fakeinvoice:garbage")
		target.Bolt11.MeltOptions = &domain.MeltOptions{
			Mpp: &domain.MppOptions{Amount: 300},
		}

		// The conflict wins over the malformed request: the rail is never asked.
		_, err := svc.MakePayment(context.Background(), target, 400, 0)
		require.ErrorIs(t, err, domain.ErrConflictingOptions)
	})

	t.Run("unroutable payment fails definitively", func(t *testing.T) {
		svc, backend := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, fake.TagFail))
		_, err := svc.MakePayment(ctx, target, 0, 0)
		require.ErrorIs(t, err, domain.ErrUnroutablePayment)

		quote, err := svc.GetPaymentQuote(ctx, target, "sat", nil)
		require.NoError(t, err)

		checked, err := svc.CheckOutgoingPayment(ctx, quote.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StateFailed, checked.Status)

		// A failed identifier is never retried; the mint must create a new quote.
		repeat, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StateFailed, repeat.Status)
		require.Equal(t, 1, backend.PayAttempts(quote.Identifier))
	})

	t.Run("timeout leaves payment pending", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, fake.TagTimeout))
		target.Bolt11.Timeout = 50 * time.Millisecond

		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePending, res.Status)

		// The rail has no trace of it: an explicit check resolves to failed.
		checked, err := svc.CheckOutgoingPayment(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StateFailed, checked.Status)
	})

	t.Run("timeout with late settlement resolves to paid", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		target := bolt11Target(fake.Invoice(1000, fake.TagSlow))
		target.Bolt11.Timeout = 50 * time.Millisecond

		res, err := svc.MakePayment(ctx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePending, res.Status)

		checked, err := svc.CheckOutgoingPayment(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, checked.Status)

		// Terminal observations are sticky.
		again, err := svc.CheckOutgoingPayment(ctx, res.Identifier)
		require.NoError(t, err)
		require.Equal(t, domain.StatePaid, again.Status)
	})

	t.Run("unclassified rail error yields unknown", func(t *testing.T) {
		svc, _ := newTestService(t)

		target := bolt11Target(fake.Invoice(1000, fake.TagError))
		res, err := svc.MakePayment(context.Background(), target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StateUnknown, res.Status)
	})

	t.Run("caller cancellation does not cancel the payment", func(t *testing.T) {
		svc, _ := newTestService(t)

		target := bolt11Target(fake.Invoice(1000, fake.TagSlow))
		target.Bolt11.Timeout = 100 * time.Millisecond

		callerCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		res, err := svc.MakePayment(callerCtx, target, 0, 0)
		require.NoError(t, err)
		require.Equal(t, domain.StatePending, res.Status)

		// The dispatch keeps running past the caller deadline and settles.
		require.Eventually(t, func() bool {
			checked, err := svc.CheckOutgoingPayment(context.Background(), res.Identifier)
			return err == nil && checked.Status == domain.StatePaid
		}, time.Second, 20*time.Millisecond)
	})
}

func TestCreateAndCheckIncomingPayment(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
		Bolt11: &domain.Bolt11IncomingOptions{Description: "order 42", Amount: 1000},
	})
	require.NoError(t, err)
	require.Equal(t, domain.KindPaymentHash, created.Identifier.Kind)
	require.NotEmpty(t, created.Request)

	notifications, err := svc.CheckIncomingPayment(ctx, created.Identifier)
	require.NoError(t, err)
	require.Empty(t, notifications)

	backend.InjectNotification(domain.IncomingNotification{
		Identifier: created.Identifier, Amount: 600, PaymentId: "part-1",
	})

	notifications, err = svc.CheckIncomingPayment(ctx, created.Identifier)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.EqualValues(t, 600, notifications[0].Amount)

	// Re-checking is idempotent.
	notifications, err = svc.CheckIncomingPayment(ctx, created.Identifier)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	// A second partial settlement accumulates alongside the first.
	backend.InjectNotification(domain.IncomingNotification{
		Identifier: created.Identifier, Amount: 400, PaymentId: "part-2",
	})
	notifications, err = svc.CheckIncomingPayment(ctx, created.Identifier)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.CreatePayment(ctx, "sat", domain.IncomingPaymentOptions{
		Bolt11: &domain.Bolt11IncomingOptions{Description: "no amount"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.CreatePayment(ctx, "usd", domain.IncomingPaymentOptions{
		Bolt11: &domain.Bolt11IncomingOptions{Amount: 10},
	})
	require.ErrorIs(t, err, domain.ErrUnsupportedMethod)
}
