package ports

import (
	"context"

	"github.com/mintgate/payprocd/internal/core/domain"
)

// BackendSettings describes the capabilities of a payment rail. The mint uses
// it to decide unit and method support; the processor treats it as opaque.
type BackendSettings struct {
	Unit               string `json:"unit"`
	Mpp                bool   `json:"mpp"`
	Bolt12             bool   `json:"bolt12"`
	Amountless         bool   `json:"amountless"`
	InvoiceDescription bool   `json:"invoice_description"`
}

// PaymentBackend is the contract every concrete payment rail satisfies,
// including the deterministic fake rail used in tests. Implementations own
// reconnect and backoff on transport loss; callers only ever observe a closed
// subscription channel and reconcile with CheckIncoming on resubscribe.
type PaymentBackend interface {
	// Settings is side-effect free.
	Settings() BackendSettings

	// CreateIncomingPayment issues a payable request on the rail. Fails with
	// domain.ErrUnsupportedMethod if the rail cannot produce the requested
	// shape and domain.ErrInvalidAmount if the amount violates rail limits.
	CreateIncomingPayment(ctx context.Context, unit string, opts domain.IncomingPaymentOptions) (*domain.CreatePaymentResult, error)

	// QuoteOutgoingPayment estimates the cost of a target. Fails with
	// domain.ErrUnroutablePayment when no route or fee can be estimated and
	// domain.ErrInvalidRequest on malformed encodings.
	QuoteOutgoingPayment(ctx context.Context, target domain.OutgoingPaymentTarget, unit string) (*domain.PaymentQuote, error)

	// PayOutgoing executes the payment. The engine, not the adapter, enforces
	// at-most-one-terminal-settlement per identifier.
	PayOutgoing(ctx context.Context, target domain.OutgoingPaymentTarget, maxFee, partialAmount uint64) (*domain.PaymentResult, error)

	// CheckIncoming returns every settlement the rail has observed for the
	// identifier; MPP may produce multiple.
	CheckIncoming(ctx context.Context, id domain.PaymentIdentifier) ([]domain.IncomingNotification, error)

	// CheckOutgoing returns the rail's current answer for an outgoing payment.
	// A definitive "no such payment" is domain.ErrPaymentNotFound.
	CheckOutgoing(ctx context.Context, id domain.PaymentIdentifier) (*domain.PaymentResult, error)

	// SubscribeIncoming opens a stream of incoming settlements, live until the
	// context is cancelled or the transport is lost, signalled by channel close.
	SubscribeIncoming(ctx context.Context) (<-chan domain.IncomingNotification, error)
}
