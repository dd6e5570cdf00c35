package domain

import "fmt"

type IdentifierKind int

const (
	KindUnspecified IdentifierKind = iota
	KindPaymentHash
	KindOfferId
	KindLabel
	KindBolt12PaymentHash
	KindCustomId
)

func (k IdentifierKind) String() string {
	switch k {
	case KindPaymentHash:
		return "payment_hash"
	case KindOfferId:
		return "offer_id"
	case KindLabel:
		return "label"
	case KindBolt12PaymentHash:
		return "bolt12_payment_hash"
	case KindCustomId:
		return "custom_id"
	default:
		return "unspecified"
	}
}

// PaymentIdentifier addresses a payment across backend types. The (Kind, Value)
// pair is the sole key used for deduplication and lookup everywhere; two
// identifiers are equal iff both fields match exactly.
type PaymentIdentifier struct {
	Kind  IdentifierKind
	Value string
}

func NewPaymentIdentifier(kind IdentifierKind, value string) (PaymentIdentifier, error) {
	if kind == KindUnspecified {
		return PaymentIdentifier{}, fmt.Errorf("missing identifier kind")
	}
	if len(value) <= 0 {
		return PaymentIdentifier{}, fmt.Errorf("missing identifier value")
	}
	return PaymentIdentifier{Kind: kind, Value: value}, nil
}

// Key returns the storage key for the identifier.
func (id PaymentIdentifier) Key() string {
	return fmt.Sprintf("%s:%s", id.Kind, id.Value)
}

func (id PaymentIdentifier) String() string {
	return id.Key()
}

// IsHash reports whether the identifier value is a payment hash rather than an
// opaque id string.
func (id PaymentIdentifier) IsHash() bool {
	return id.Kind == KindPaymentHash || id.Kind == KindBolt12PaymentHash
}
