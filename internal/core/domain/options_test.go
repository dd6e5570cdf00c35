package domain_test

import (
	"testing"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestIncomingPaymentOptionsValidate(t *testing.T) {
	t.Run("bolt11 requires amount", func(t *testing.T) {
		opts := domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Description: "test"},
		}
		require.ErrorIs(t, opts.Validate(), domain.ErrInvalidAmount)

		opts.Bolt11.Amount = 21
		require.NoError(t, opts.Validate())
	})

	t.Run("bolt12 allows open amount", func(t *testing.T) {
		opts := domain.IncomingPaymentOptions{
			Bolt12: &domain.Bolt12IncomingOptions{},
		}
		require.NoError(t, opts.Validate())
	})

	t.Run("exactly one variant", func(t *testing.T) {
		require.ErrorIs(
			t, domain.IncomingPaymentOptions{}.Validate(), domain.ErrInvalidRequest,
		)
		both := domain.IncomingPaymentOptions{
			Bolt11: &domain.Bolt11IncomingOptions{Amount: 21},
			Bolt12: &domain.Bolt12IncomingOptions{},
		}
		require.ErrorIs(t, both.Validate(), domain.ErrInvalidRequest)
	})
}

func TestMeltOptionsValidate(t *testing.T) {
	both := domain.MeltOptions{
		Mpp:        &domain.MppOptions{Amount: 10},
		Amountless: &domain.AmountlessOptions{AmountMsat: 10000},
	}
	require.ErrorIs(t, both.Validate(), domain.ErrConflictingOptions)

	var none *domain.MeltOptions
	require.Zero(t, none.PartialAmount())
	require.EqualValues(t, 10, domain.MeltOptions{
		Mpp: &domain.MppOptions{Amount: 10},
	}.Mpp.Amount)
}

func TestOutgoingPaymentTargetValidate(t *testing.T) {
	require.ErrorIs(
		t, domain.OutgoingPaymentTarget{}.Validate(), domain.ErrInvalidRequest,
	)

	target := domain.OutgoingPaymentTarget{
		Bolt11: &domain.Bolt11OutgoingTarget{Request: "fakeinvoice:21:deadbeef"},
	}
	require.NoError(t, target.Validate())
	require.Equal(t, "fakeinvoice:21:deadbeef", target.Request())

	withOpts := target.WithMeltOptions(&domain.MeltOptions{
		Mpp: &domain.MppOptions{Amount: 10},
	})
	require.EqualValues(t, 10, withOpts.MeltOptions().PartialAmount())
	require.Nil(t, target.MeltOptions(), "original target is not mutated")
}
