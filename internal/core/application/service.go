package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

// Service orchestrates calls into the selected payment backend and maps the
// heterogeneous backend results into the unified quote state machine. It owns
// the authoritative state-machine value per identifier; per-identifier
// outgoing execution is serialized, everything else proceeds without blocking.
type Service struct {
	backend     ports.PaymentBackend
	repoManager ports.RepoManager
	hub         *Hub
	payTimeout  time.Duration

	mu       sync.Mutex
	inflight map[domain.PaymentIdentifier]*inflightPayment
}

type inflightPayment struct {
	done chan struct{}
	res  *domain.PaymentResult
	err  error
}

func NewService(
	backend ports.PaymentBackend,
	repoManager ports.RepoManager,
	payTimeout time.Duration,
	subscribeRetryDelay time.Duration,
) (*Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("missing payment backend")
	}
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}

	hub := newHub(backend, repoManager, subscribeRetryDelay)
	return &Service{
		backend:     backend,
		repoManager: repoManager,
		hub:         hub,
		payTimeout:  payTimeout,
		inflight:    make(map[domain.PaymentIdentifier]*inflightPayment),
	}, nil
}

func (s *Service) Stop() {
	s.hub.stop()
	s.repoManager.Close()
}

// Settings returns the backend capabilities as an opaque JSON blob.
func (s *Service) Settings() (string, error) {
	buf, err := json.Marshal(s.backend.Settings())
	if err != nil {
		return "", fmt.Errorf("failed to serialize backend settings: %w", err)
	}
	return string(buf), nil
}

// CreatePayment issues an incoming payment request on the rail. No state
// machine is involved until funds actually move; the identifier is only
// registered with the subscription hub so reconnect sweeps cover it.
func (s *Service) CreatePayment(
	ctx context.Context, unit string, opts domain.IncomingPaymentOptions,
) (*domain.CreatePaymentResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result, err := s.backend.CreateIncomingPayment(ctx, unit, opts)
	if err != nil {
		return nil, err
	}

	s.hub.watch(result.Identifier, result.Expiry)
	return result, nil
}

// GetPaymentQuote delegates to the backend and returns the quote unmodified.
// Quotes are never cached or mutated; a stale quote is the caller's problem.
// At most one of the target-embedded and request-level melt options may be
// set.
func (s *Service) GetPaymentQuote(
	ctx context.Context, target domain.OutgoingPaymentTarget, unit string, opts *domain.MeltOptions,
) (*domain.PaymentQuote, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if opts != nil {
		if target.MeltOptions() != nil {
			return nil, domain.ErrConflictingOptions
		}
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		target = target.WithMeltOptions(opts)
	}

	return s.backend.QuoteOutgoingPayment(ctx, target, unit)
}

// MakePayment executes an outgoing payment. Exactly one call to the backend's
// PayOutgoing is made per identifier: concurrent and repeated calls for the
// same identifier observe the single in-flight or recorded result instead of
// re-issuing the payment. Validation errors are rejected before any backend
// payment call and leave no record.
func (s *Service) MakePayment(
	ctx context.Context, target domain.OutgoingPaymentTarget, partialAmount, maxFeeAmount uint64,
) (*domain.PaymentResult, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if partialAmount > 0 && target.MeltOptions().PartialAmount() > 0 {
		return nil, domain.ErrConflictingOptions
	}
	partial := partialAmount
	if partial == 0 {
		partial = target.MeltOptions().PartialAmount()
	}

	unit := s.backend.Settings().Unit
	quote, err := s.backend.QuoteOutgoingPayment(ctx, target, unit)
	if err != nil {
		return nil, err
	}

	if partial > 0 && partial > quote.Amount {
		return nil, fmt.Errorf(
			"%w: partial amount %d exceeds request amount %d",
			domain.ErrAmountMismatch, partial, quote.Amount,
		)
	}

	// The request-level ceiling and the target-embedded one are both absolute;
	// the stricter of the two applies. The backend's own fee enforcement is a
	// second, authoritative check.
	maxFee := maxFeeAmount
	if t := target.MaxFee(); t > 0 && (maxFee == 0 || t < maxFee) {
		maxFee = t
	}
	if maxFee > 0 && quote.Fee > maxFee {
		return nil, fmt.Errorf(
			"%w: quoted fee %d exceeds maximum %d", domain.ErrFeeExceeded, quote.Fee, maxFee,
		)
	}

	id := quote.Identifier

	s.mu.Lock()
	if fl, ok := s.inflight[id]; ok {
		s.mu.Unlock()
		return s.awaitInflight(ctx, id, fl, unit)
	}

	existing, err := s.repoManager.OutgoingPayments().Get(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to load payment state for %s: %w", id, err)
	}
	if existing != nil {
		// A prior call already reached the rail; return its result instead of
		// paying again, whatever state it is in.
		s.mu.Unlock()
		return existing, nil
	}

	fl := &inflightPayment{done: make(chan struct{})}
	s.inflight[id] = fl
	s.mu.Unlock()

	if err := s.record(ctx, domain.PaymentResult{
		Identifier: id, Status: domain.StatePending, Unit: unit,
	}); err != nil {
		s.mu.Lock()
		delete(s.inflight, id)
		s.mu.Unlock()
		close(fl.done)
		return nil, err
	}

	go s.dispatch(fl, id, target, partial, maxFee, unit)

	return s.awaitInflight(ctx, id, fl, unit)
}

// awaitInflight waits for the single in-flight execution. A caller timeout
// abandons only the wait: the payment itself is never cancelled once
// dispatched, and the identifier stays PENDING until a check resolves it.
func (s *Service) awaitInflight(
	ctx context.Context, id domain.PaymentIdentifier, fl *inflightPayment, unit string,
) (*domain.PaymentResult, error) {
	select {
	case <-fl.done:
		return fl.res, fl.err
	case <-ctx.Done():
		return &domain.PaymentResult{Identifier: id, Status: domain.StatePending, Unit: unit}, nil
	}
}

// dispatch runs on its own context so the in-flight payment survives caller
// cancellation.
func (s *Service) dispatch(
	fl *inflightPayment, id domain.PaymentIdentifier,
	target domain.OutgoingPaymentTarget, partialAmount, maxFee uint64, unit string,
) {
	timeout := s.payTimeout
	if t := target.Timeout(); t > 0 {
		timeout = t
	}
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := s.backend.PayOutgoing(ctx, target, maxFee, partialAmount)

	recordCtx := context.Background()
	switch {
	case err == nil:
		if recErr := s.record(recordCtx, *res); recErr != nil {
			log.WithError(recErr).Errorf("failed to record payment result for %s", id)
		}
		fl.res = res
	case errors.Is(err, domain.ErrPaymentTimeout), errors.Is(err, context.DeadlineExceeded):
		// Timeout never means failure. Only an explicit check may resolve it.
		pending := domain.PaymentResult{Identifier: id, Status: domain.StatePending, Unit: unit}
		if recErr := s.record(recordCtx, pending); recErr != nil {
			log.WithError(recErr).Errorf("failed to record pending state for %s", id)
		}
		fl.res = &pending
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnroutablePayment),
		errors.Is(err, domain.ErrFeeExceeded):
		// The rail refused before dispatching anything: definitive failure.
		failed := domain.PaymentResult{Identifier: id, Status: domain.StateFailed, Unit: unit}
		if recErr := s.record(recordCtx, failed); recErr != nil {
			log.WithError(recErr).Errorf("failed to record failed state for %s", id)
		}
		fl.res = &failed
		fl.err = err
	default:
		// The payment may already have been dispatched; preserve the ambiguity.
		log.WithError(err).Warnf("payment %s in unknown state after backend error", id)
		unknown := domain.PaymentResult{Identifier: id, Status: domain.StateUnknown, Unit: unit}
		if recErr := s.record(recordCtx, unknown); recErr != nil {
			log.WithError(recErr).Errorf("failed to record unknown state for %s", id)
		}
		fl.res = &unknown
	}

	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()
	close(fl.done)
}

// CheckIncomingPayment returns the accumulated settlements observed for the
// identifier to date, reconciling with the rail's pull-based ground truth
// first. Supports MPP reassembly and idempotent re-query by the mint.
// Settlements the pull discovers first go through the hub, so subscribers
// still receive them even when the check beats the push stream.
func (s *Service) CheckIncomingPayment(
	ctx context.Context, id domain.PaymentIdentifier,
) ([]domain.IncomingNotification, error) {
	notifications, err := s.backend.CheckIncoming(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		log.WithError(err).Warnf("failed to check incoming payment %s, serving stored state", id)
	}
	for _, n := range notifications {
		if _, err := s.hub.publish(ctx, n); err != nil {
			return nil, fmt.Errorf("failed to store notification for %s: %w", id, err)
		}
	}

	return s.repoManager.IncomingNotifications().GetByIdentifier(ctx, id)
}

// CheckOutgoingPayment returns the current outcome for an identifier,
// re-querying the rail when the recorded state is still non-terminal. A
// terminal observation is sticky: later PENDING or UNKNOWN reads never
// overwrite it.
func (s *Service) CheckOutgoingPayment(
	ctx context.Context, id domain.PaymentIdentifier,
) (*domain.PaymentResult, error) {
	repo := s.repoManager.OutgoingPayments()
	recorded, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recorded.Status.IsTerminal() {
		return recorded, nil
	}

	fresh, err := s.backend.CheckOutgoing(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			// Explicit rail answer: the payment definitively does not exist.
			failed := domain.PaymentResult{
				Identifier: id, Status: domain.StateFailed, Unit: recorded.Unit,
			}
			if recErr := s.record(ctx, failed); recErr != nil {
				return nil, recErr
			}
			return &failed, nil
		}
		// Ambiguity is preserved, never collapsed into failure.
		return recorded, nil
	}

	if !recorded.Status.CanTransition(fresh.Status) {
		return recorded, nil
	}
	if err := s.record(ctx, *fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// SubscribeIncoming attaches a listener to the subscription hub. The returned
// channel carries every notification published after attach; the detach
// function drops the listener without affecting others.
func (s *Service) SubscribeIncoming(
	ctx context.Context,
) (<-chan domain.IncomingNotification, func(), error) {
	return s.hub.subscribe(ctx)
}

// record persists a state observation, enforcing forward-only transitions.
func (s *Service) record(ctx context.Context, res domain.PaymentResult) error {
	repo := s.repoManager.OutgoingPayments()
	existing, err := repo.Get(ctx, res.Identifier)
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		return fmt.Errorf("failed to load payment state for %s: %w", res.Identifier, err)
	}
	if existing != nil && !existing.Status.CanTransition(res.Status) {
		log.Debugf(
			"ignoring stale %s observation for %s, already %s",
			res.Status, res.Identifier, existing.Status,
		)
		return nil
	}
	if err := repo.Upsert(ctx, res); err != nil {
		return fmt.Errorf("failed to store payment state for %s: %w", res.Identifier, err)
	}
	return nil
}
