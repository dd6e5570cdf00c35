package domain

import (
	"context"
	"time"
)

// CreatePaymentResult is the payable request issued by the rail. Request is
// the rail-specific encoding (invoice or offer) and is opaque to the core.
type CreatePaymentResult struct {
	Identifier PaymentIdentifier
	Request    string
	Expiry     *time.Time
}

// PaymentQuote is a non-binding estimate of the cost to fulfill an outgoing
// payment target. Quotes are never cached or mutated; a stale quote is the
// caller's problem.
type PaymentQuote struct {
	Identifier  PaymentIdentifier
	Amount      uint64
	Fee         uint64
	State       QuoteState
	Unit        string
	MeltOptions *MeltOptions
}

// PaymentResult is the binding outcome of executing a payment. Proof is
// present only on success.
type PaymentResult struct {
	Identifier PaymentIdentifier
	Proof      string
	Status     QuoteState
	TotalSpent uint64
	Unit       string
}

// IncomingNotification records one immutable fact: this amount arrived
// against this identifier. PaymentId disambiguates multiple partial
// settlements against the same identifier (MPP receiving side).
type IncomingNotification struct {
	Identifier PaymentIdentifier
	Amount     uint64
	Unit       string
	PaymentId  string
}

// OutgoingPaymentRepository persists the authoritative state-machine value
// per identifier. Implementations must be crash-consistent: the duplicate
// payment guard depends on Upsert surviving a restart.
type OutgoingPaymentRepository interface {
	Get(ctx context.Context, id PaymentIdentifier) (*PaymentResult, error)
	Upsert(ctx context.Context, result PaymentResult) error
	GetByStates(ctx context.Context, states ...QuoteState) ([]PaymentResult, error)
	Close()
}

// IncomingNotificationRepository stores the accumulated settlements observed
// per identifier. Add is idempotent on (identifier, payment id).
type IncomingNotificationRepository interface {
	Add(ctx context.Context, notification IncomingNotification) (added bool, err error)
	GetByIdentifier(ctx context.Context, id PaymentIdentifier) ([]IncomingNotification, error)
	Close()
}
