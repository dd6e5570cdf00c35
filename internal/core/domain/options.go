package domain

import "time"

type Bolt11IncomingOptions struct {
	Description string
	Amount      uint64
	Expiry      *time.Time
}

type Bolt12IncomingOptions struct {
	Description string
	// Amount is optional: zero means an open-amount offer.
	Amount uint64
	Expiry *time.Time
}

// IncomingPaymentOptions is a tagged variant: exactly one of Bolt11 or Bolt12
// is set.
type IncomingPaymentOptions struct {
	Bolt11 *Bolt11IncomingOptions
	Bolt12 *Bolt12IncomingOptions
}

func (o IncomingPaymentOptions) Validate() error {
	if (o.Bolt11 == nil) == (o.Bolt12 == nil) {
		return ErrInvalidRequest
	}
	if o.Bolt11 != nil && o.Bolt11.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}

type MppOptions struct {
	// Amount is the partial amount of the request to pay, in the payment unit.
	Amount uint64
}

type AmountlessOptions struct {
	// AmountMsat is the explicit amount to pay an amountless request, in msat.
	AmountMsat uint64
}

// MeltOptions is a tagged variant: at most one of Mpp or Amountless may
// accompany a quote or payment request.
type MeltOptions struct {
	Mpp        *MppOptions
	Amountless *AmountlessOptions
}

func (o MeltOptions) Validate() error {
	if o.Mpp != nil && o.Amountless != nil {
		return ErrConflictingOptions
	}
	return nil
}

// PartialAmount returns the MPP partial amount, or zero when not set.
func (o *MeltOptions) PartialAmount() uint64 {
	if o == nil || o.Mpp == nil {
		return 0
	}
	return o.Mpp.Amount
}

type Bolt11OutgoingTarget struct {
	Request string
	// MaxFee is an absolute fee ceiling in the payment unit; zero means unbounded.
	MaxFee      uint64
	Timeout     time.Duration
	MeltOptions *MeltOptions
}

type Bolt12OutgoingTarget struct {
	Offer   string
	MaxFee  uint64
	Timeout time.Duration
	// Invoice already fetched for the offer, if any.
	Invoice     string
	MeltOptions *MeltOptions
}

// OutgoingPaymentTarget is a tagged variant: exactly one of Bolt11 or Bolt12
// is set.
type OutgoingPaymentTarget struct {
	Bolt11 *Bolt11OutgoingTarget
	Bolt12 *Bolt12OutgoingTarget
}

func (t OutgoingPaymentTarget) Validate() error {
	if (t.Bolt11 == nil) == (t.Bolt12 == nil) {
		return ErrInvalidRequest
	}
	if t.Bolt11 != nil && len(t.Bolt11.Request) <= 0 {
		return ErrInvalidRequest
	}
	if t.Bolt12 != nil && len(t.Bolt12.Offer) <= 0 {
		return ErrInvalidRequest
	}
	if opts := t.MeltOptions(); opts != nil {
		return opts.Validate()
	}
	return nil
}

// Request returns the rail-specific payable string embedded in the target.
func (t OutgoingPaymentTarget) Request() string {
	if t.Bolt11 != nil {
		return t.Bolt11.Request
	}
	if t.Bolt12 != nil {
		return t.Bolt12.Offer
	}
	return ""
}

func (t OutgoingPaymentTarget) MeltOptions() *MeltOptions {
	if t.Bolt11 != nil {
		return t.Bolt11.MeltOptions
	}
	if t.Bolt12 != nil {
		return t.Bolt12.MeltOptions
	}
	return nil
}

// WithMeltOptions returns a copy of the target carrying the given options.
func (t OutgoingPaymentTarget) WithMeltOptions(opts *MeltOptions) OutgoingPaymentTarget {
	if t.Bolt11 != nil {
		cp := *t.Bolt11
		cp.MeltOptions = opts
		return OutgoingPaymentTarget{Bolt11: &cp}
	}
	if t.Bolt12 != nil {
		cp := *t.Bolt12
		cp.MeltOptions = opts
		return OutgoingPaymentTarget{Bolt12: &cp}
	}
	return t
}

func (t OutgoingPaymentTarget) MaxFee() uint64 {
	if t.Bolt11 != nil {
		return t.Bolt11.MaxFee
	}
	if t.Bolt12 != nil {
		return t.Bolt12.MaxFee
	}
	return 0
}

func (t OutgoingPaymentTarget) Timeout() time.Duration {
	if t.Bolt11 != nil {
		return t.Bolt11.Timeout
	}
	if t.Bolt12 != nil {
		return t.Bolt12.Timeout
	}
	return 0
}
