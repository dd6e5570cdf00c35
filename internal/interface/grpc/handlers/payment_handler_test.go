package handlers

import (
	"errors"
	"testing"
	"time"

	pb "github.com/mintgate/payprocd/api-spec/protobuf/gen/go/payproc/v1"
	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestParsePaymentIdentifier(t *testing.T) {
	t.Run("valid hash identifier", func(t *testing.T) {
		id, err := parsePaymentIdentifier(&pb.PaymentIdentifier{
			Kind: pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_PAYMENT_HASH,
			Id:   &pb.PaymentIdentifier_Hash{Hash: "abcd"},
		})
		require.NoError(t, err)
		require.Equal(t, domain.KindPaymentHash, id.Kind)
		require.Equal(t, "abcd", id.Value)
	})

	t.Run("valid custom id", func(t *testing.T) {
		id, err := parsePaymentIdentifier(&pb.PaymentIdentifier{
			Kind: pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_CUSTOM_ID,
			Id:   &pb.PaymentIdentifier_CustomId{CustomId: "quote-7"},
		})
		require.NoError(t, err)
		require.Equal(t, domain.KindCustomId, id.Kind)
		require.Equal(t, "quote-7", id.Value)
	})

	t.Run("missing identifier", func(t *testing.T) {
		_, err := parsePaymentIdentifier(nil)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := parsePaymentIdentifier(&pb.PaymentIdentifier{
			Id: &pb.PaymentIdentifier_Hash{Hash: "abcd"},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := parsePaymentIdentifier(&pb.PaymentIdentifier{
			Kind: pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_LABEL,
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestPaymentIdentifierProtoRoundTrip(t *testing.T) {
	for _, id := range []domain.PaymentIdentifier{
		{Kind: domain.KindPaymentHash, Value: "aa"},
		{Kind: domain.KindBolt12PaymentHash, Value: "bb"},
		{Kind: domain.KindOfferId, Value: "cc"},
		{Kind: domain.KindLabel, Value: "dd"},
		{Kind: domain.KindCustomId, Value: "ee"},
	} {
		proto := toPaymentIdentifierProto(id)
		if id.IsHash() {
			require.Equal(t, id.Value, proto.GetHash())
		} else {
			require.Equal(t, id.Value, proto.GetCustomId())
		}

		parsed, err := parsePaymentIdentifier(proto)
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}
}

func TestParseIncomingOptions(t *testing.T) {
	t.Run("bolt11 with expiry", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		opts, err := parseIncomingOptions(&pb.IncomingPaymentOptions{
			Options: &pb.IncomingPaymentOptions_Bolt11{
				Bolt11: &pb.Bolt11IncomingOptions{
					Description: "order 42",
					Amount:      1000,
					ExpiryUnix:  uint64(expiry.Unix()),
				},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, opts.Bolt11)
		require.Nil(t, opts.Bolt12)
		require.EqualValues(t, 1000, opts.Bolt11.Amount)
		require.NotNil(t, opts.Bolt11.Expiry)
		require.True(t, opts.Bolt11.Expiry.Equal(expiry))
	})

	t.Run("bolt11 without amount", func(t *testing.T) {
		_, err := parseIncomingOptions(&pb.IncomingPaymentOptions{
			Options: &pb.IncomingPaymentOptions_Bolt11{
				Bolt11: &pb.Bolt11IncomingOptions{},
			},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing options", func(t *testing.T) {
		_, err := parseIncomingOptions(nil)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestParseTarget(t *testing.T) {
	t.Run("bolt11 with melt options", func(t *testing.T) {
		target, err := parseTarget(&pb.OutgoingPaymentTarget{
			Target: &pb.OutgoingPaymentTarget_Bolt11{
				Bolt11: &pb.Bolt11OutgoingTarget{
					Request:        "fakeinvoice:1000:ff",
					MaxFee:         10,
					TimeoutSeconds: 30,
					MeltOptions: &pb.MeltOptions{
						Options: &pb.MeltOptions_Mpp{Mpp: &pb.MppOptions{Amount: 300}},
					},
				},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, target.Bolt11)
		require.EqualValues(t, 10, target.MaxFee())
		require.Equal(t, 30*time.Second, target.Timeout())
		require.EqualValues(t, 300, target.MeltOptions().PartialAmount())
	})

	t.Run("bolt12 with invoice", func(t *testing.T) {
		target, err := parseTarget(&pb.OutgoingPaymentTarget{
			Target: &pb.OutgoingPaymentTarget_Bolt12{
				Bolt12: &pb.Bolt12OutgoingTarget{
					Offer:   "fakeoffer:0:aa",
					Invoice: "fakeinvoice:21:bb",
				},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, target.Bolt12)
		require.Equal(t, "fakeinvoice:21:bb", target.Bolt12.Invoice)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := parseTarget(nil)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := parseTarget(&pb.OutgoingPaymentTarget{
			Target: &pb.OutgoingPaymentTarget_Bolt11{
				Bolt11: &pb.Bolt11OutgoingTarget{},
			},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestToStatusError(t *testing.T) {
	for err, expected := range map[error]codes.Code{
		domain.ErrInvalidRequest:     codes.InvalidArgument,
		domain.ErrInvalidAmount:      codes.InvalidArgument,
		domain.ErrConflictingOptions: codes.InvalidArgument,
		domain.ErrAmountMismatch:     codes.InvalidArgument,
		domain.ErrUnsupportedMethod:  codes.Unimplemented,
		domain.ErrFeeExceeded:        codes.FailedPrecondition,
		domain.ErrPaymentNotFound:    codes.NotFound,
		domain.ErrUnroutablePayment:  codes.Unavailable,
		domain.ErrBackendUnavailable: codes.Unavailable,
	} {
		require.Equal(t, expected, status.Code(toStatusError(err)), err.Error())
	}

	// Unclassified errors pass through untouched.
	plain := errors.New("boom")
	require.Equal(t, plain, toStatusError(plain))
}

func TestToQuoteStateProto(t *testing.T) {
	require.Equal(t, pb.QuoteState_QUOTE_STATE_PAID, toQuoteStateProto(domain.StatePaid))
	require.Equal(t, pb.QuoteState_QUOTE_STATE_PENDING, toQuoteStateProto(domain.StatePending))
	require.Equal(t, pb.QuoteState_QUOTE_STATE_FAILED, toQuoteStateProto(domain.StateFailed))
	require.Equal(t, pb.QuoteState_QUOTE_STATE_ISSUED, toQuoteStateProto(domain.StateIssued))
}
