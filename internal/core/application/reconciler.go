package application

import (
	"context"
	"sync"
	"time"

	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

// Reconciler periodically resolves outgoing payments stuck in PENDING or
// UNKNOWN by re-checking them against the rail. Identifiers that exhaust the
// attempt budget are left in their current state and dropped from the sweep;
// an explicit CheckOutgoingPayment call can still resolve them later.
type Reconciler struct {
	svc         *Service
	scheduler   ports.SchedulerService
	interval    time.Duration
	maxAttempts int

	mu       sync.Mutex
	attempts map[domain.PaymentIdentifier]int
}

// NewReconciler builds a reconciler sweeping at the given interval.
// maxAttempts <= 0 means unbounded.
func NewReconciler(
	svc *Service, scheduler ports.SchedulerService,
	interval time.Duration, maxAttempts int,
) *Reconciler {
	return &Reconciler{
		svc:         svc,
		scheduler:   scheduler,
		interval:    interval,
		maxAttempts: maxAttempts,
		attempts:    make(map[domain.PaymentIdentifier]int),
	}
}

func (r *Reconciler) Start() error {
	if err := r.scheduler.ScheduleRecurring(r.interval, r.sweep); err != nil {
		return err
	}
	r.scheduler.Start()
	return nil
}

func (r *Reconciler) Stop() {
	r.scheduler.Stop()
}

func (r *Reconciler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	unresolved, err := r.svc.repoManager.OutgoingPayments().GetByStates(
		ctx, domain.StatePending, domain.StateUnknown,
	)
	if err != nil {
		log.WithError(err).Error("failed to list unresolved payments")
		return
	}

	for _, payment := range unresolved {
		id := payment.Identifier
		if r.exhausted(id) {
			continue
		}

		res, err := r.svc.CheckOutgoingPayment(ctx, id)
		if err != nil {
			log.WithError(err).Warnf("failed to reconcile payment %s", id)
			r.bump(id)
			continue
		}
		if res.Status.IsTerminal() {
			log.Debugf("reconciled payment %s to %s", id, res.Status)
			r.forget(id)
			continue
		}
		r.bump(id)
	}
}

func (r *Reconciler) exhausted(id domain.PaymentIdentifier) bool {
	if r.maxAttempts <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attempts[id] < r.maxAttempts {
		return false
	}
	if r.attempts[id] == r.maxAttempts {
		// Log once, then stay silent for this identifier.
		r.attempts[id]++
		log.Warnf(
			"payment %s still unresolved after %d attempts, giving up", id, r.maxAttempts,
		)
	}
	return true
}

func (r *Reconciler) bump(id domain.PaymentIdentifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[id]++
}

func (r *Reconciler) forget(id domain.PaymentIdentifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
}
