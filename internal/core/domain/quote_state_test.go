package domain_test

import (
	"testing"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestQuoteStateTransitions(t *testing.T) {
	allowed := map[domain.QuoteState][]domain.QuoteState{
		domain.StateUnpaid:  {domain.StatePaid, domain.StatePending, domain.StateFailed},
		domain.StatePending: {domain.StatePaid, domain.StateFailed, domain.StateUnknown},
		domain.StateUnknown: {domain.StatePaid, domain.StateFailed},
		domain.StatePaid:    {domain.StateIssued},
		domain.StateFailed:  {},
		domain.StateIssued:  {},
	}
	all := []domain.QuoteState{
		domain.StateUnpaid, domain.StatePaid, domain.StatePending,
		domain.StateUnknown, domain.StateFailed, domain.StateIssued,
	}

	for from, nexts := range allowed {
		permitted := make(map[domain.QuoteState]struct{})
		for _, next := range nexts {
			permitted[next] = struct{}{}
		}
		for _, to := range all {
			_, ok := permitted[to]
			require.Equal(
				t, ok, from.CanTransition(to),
				"transition %s -> %s", from, to,
			)
		}
	}
}

func TestQuoteStateTerminal(t *testing.T) {
	require.True(t, domain.StatePaid.IsTerminal())
	require.True(t, domain.StateFailed.IsTerminal())
	require.True(t, domain.StateIssued.IsTerminal())
	require.False(t, domain.StateUnpaid.IsTerminal())
	require.False(t, domain.StatePending.IsTerminal())
	require.False(t, domain.StateUnknown.IsTerminal())
}

func TestParseQuoteState(t *testing.T) {
	for _, state := range []domain.QuoteState{
		domain.StateUnpaid, domain.StatePaid, domain.StatePending,
		domain.StateUnknown, domain.StateFailed, domain.StateIssued,
	} {
		parsed, err := domain.ParseQuoteState(state.String())
		require.NoError(t, err)
		require.Equal(t, state, parsed)
	}

	_, err := domain.ParseQuoteState("paid")
	require.Error(t, err)
}
