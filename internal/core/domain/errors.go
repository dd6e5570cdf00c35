package domain

import "fmt"

var (
	// ErrUnsupportedMethod is returned when the rail cannot produce the
	// requested payment shape.
	ErrUnsupportedMethod = fmt.Errorf("unsupported payment method")
	// ErrInvalidAmount is returned when a requested amount violates rail limits.
	ErrInvalidAmount = fmt.Errorf("invalid amount")
	// ErrInvalidRequest is returned on malformed target encodings.
	ErrInvalidRequest = fmt.Errorf("invalid payment request")
	// ErrUnroutablePayment is returned when the rail cannot estimate a route or fee.
	ErrUnroutablePayment = fmt.Errorf("unroutable payment")
	// ErrConflictingOptions is returned when melt options are set both on the
	// target and at the request level.
	ErrConflictingOptions = fmt.Errorf("conflicting melt options")
	// ErrFeeExceeded is returned before any adapter payment call when the
	// quoted fee already exceeds the caller's ceiling.
	ErrFeeExceeded = fmt.Errorf("fee exceeds maximum")
	// ErrAmountMismatch is returned when a partial amount exceeds the full
	// request amount.
	ErrAmountMismatch = fmt.Errorf("amount mismatch")
	// ErrPaymentTimeout is non-terminal: the identifier moves to PENDING and
	// only a later check may resolve it.
	ErrPaymentTimeout = fmt.Errorf("payment timed out")
	// ErrBackendUnavailable is non-terminal: it maps to UNKNOWN if a payment
	// may already have been dispatched, otherwise it is surfaced directly.
	ErrBackendUnavailable = fmt.Errorf("payment backend unavailable")
	// ErrPaymentNotFound is the rail's explicit "no such payment" answer.
	ErrPaymentNotFound = fmt.Errorf("payment not found")
)
