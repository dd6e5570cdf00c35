package domain

import "fmt"

type QuoteState int

const (
	StateUnpaid QuoteState = iota
	StatePaid
	StatePending
	StateUnknown
	StateFailed
	// StateIssued is set by the mint after token issuance; the processor only
	// ever reads it back from storage.
	StateIssued
)

func (s QuoteState) String() string {
	switch s {
	case StateUnpaid:
		return "UNPAID"
	case StatePaid:
		return "PAID"
	case StatePending:
		return "PENDING"
	case StateUnknown:
		return "UNKNOWN"
	case StateFailed:
		return "FAILED"
	case StateIssued:
		return "ISSUED"
	default:
		return fmt.Sprintf("QuoteState(%d)", int(s))
	}
}

func ParseQuoteState(s string) (QuoteState, error) {
	switch s {
	case "UNPAID":
		return StateUnpaid, nil
	case "PAID":
		return StatePaid, nil
	case "PENDING":
		return StatePending, nil
	case "UNKNOWN":
		return StateUnknown, nil
	case "FAILED":
		return StateFailed, nil
	case "ISSUED":
		return StateIssued, nil
	default:
		return StateUnknown, fmt.Errorf("unknown quote state %q", s)
	}
}

// IsTerminal reports whether the state can no longer change from the
// processor's point of view.
func (s QuoteState) IsTerminal() bool {
	return s == StatePaid || s == StateFailed || s == StateIssued
}

// CanTransition reports whether moving from s to next follows a permitted
// edge. The state machine only moves forward: a Paid or Failed observation is
// sticky and is never overwritten by a later Pending or Unknown read.
func (s QuoteState) CanTransition(next QuoteState) bool {
	if s == next {
		return false
	}
	switch s {
	case StateUnpaid:
		return next == StatePaid || next == StatePending || next == StateFailed
	case StatePending:
		return next == StatePaid || next == StateFailed || next == StateUnknown
	case StateUnknown:
		return next == StatePaid || next == StateFailed
	case StatePaid:
		return next == StateIssued
	default:
		return false
	}
}
