package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

// Hub fans incoming settlement notifications out to any number of
// subscribers. A single upstream subscription to the backend is shared by all
// of them, opened when the first subscriber attaches and torn down when the
// last one detaches. Every notification, whether it arrives over the push
// stream, a reconnect sweep or a pull-based check, goes through publish:
// the repository drops duplicates, everything new is fanned out.
type Hub struct {
	backend     ports.PaymentBackend
	repoManager ports.RepoManager
	retryDelay  time.Duration

	mu        sync.Mutex
	listeners map[string]*listener
	watched   map[domain.PaymentIdentifier]*time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	stopped   bool
}

// listener decouples fan-out from consumption: publish appends to the queue
// and never blocks, the drain goroutine forwards to the subscriber at its own
// pace. A slow subscriber grows its own queue without delaying the others.
type listener struct {
	id     string
	mu     sync.Mutex
	queue  []domain.IncomingNotification
	notify chan struct{}
	out    chan domain.IncomingNotification
	done   chan struct{}
}

func newListener() *listener {
	return &listener{
		id:     uuid.NewString(),
		notify: make(chan struct{}, 1),
		out:    make(chan domain.IncomingNotification),
		done:   make(chan struct{}),
	}
}

func (l *listener) push(notification domain.IncomingNotification) {
	l.mu.Lock()
	l.queue = append(l.queue, notification)
	l.mu.Unlock()
	select {
	case l.notify <- struct{}{}:
	default:
	}
}

func (l *listener) run() {
	defer close(l.out)
	for {
		select {
		case <-l.done:
			return
		case <-l.notify:
		}

		l.mu.Lock()
		pending := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, notification := range pending {
			select {
			case l.out <- notification:
			case <-l.done:
				return
			}
		}
	}
}

func newHub(
	backend ports.PaymentBackend, repoManager ports.RepoManager, retryDelay time.Duration,
) *Hub {
	if retryDelay <= 0 {
		retryDelay = 5 * time.Second
	}
	return &Hub{
		backend:     backend,
		repoManager: repoManager,
		retryDelay:  retryDelay,
		listeners:   make(map[string]*listener),
		watched:     make(map[domain.PaymentIdentifier]*time.Time),
	}
}

// watch registers an identifier for inclusion in reconnect sweeps. The entry
// is dropped once a settlement is observed for it or its expiry passes, so
// the sweep stays bounded to identifiers with open interest.
func (h *Hub) watch(id domain.PaymentIdentifier, expiry *time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.watched[id] = expiry
}

// subscribe attaches a new listener and returns its channel together with a
// detach function. The channel is closed on detach and on hub shutdown.
func (h *Hub) subscribe(
	ctx context.Context,
) (<-chan domain.IncomingNotification, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil, nil, domain.ErrBackendUnavailable
	}

	l := newListener()
	h.listeners[l.id] = l
	go l.run()

	if h.cancel == nil {
		upstreamCtx, cancel := context.WithCancel(context.Background())
		h.cancel = cancel
		h.wg.Add(1)
		go h.runUpstream(upstreamCtx)
	}

	detach := func() { h.removeListener(l.id) }
	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				h.removeListener(l.id)
			case <-l.done:
			}
		}()
	}
	return l.out, detach, nil
}

func (h *Hub) removeListener(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.listeners[id]
	if !ok {
		return
	}
	delete(h.listeners, id)
	close(l.done)

	if len(h.listeners) == 0 && h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// runUpstream keeps the shared backend subscription alive, reconnecting with
// a fixed delay. After every (re)connect it reconciles watched identifiers
// against the rail so settlements missed during an outage are recovered; the
// repository dedupe keeps the sweep from replaying anything.
func (h *Hub) runUpstream(ctx context.Context) {
	defer h.wg.Done()
	for {
		if ctx.Err() != nil {
			return
		}
		ch, err := h.backend.SubscribeIncoming(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to subscribe to incoming payments, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.retryDelay):
			}
			continue
		}

		h.reconcile(ctx)

		for notification := range ch {
			if _, err := h.publish(ctx, notification); err != nil {
				log.WithError(err).Errorf(
					"failed to store notification for %s", notification.Identifier,
				)
			}
		}
		if ctx.Err() != nil {
			return
		}
		log.Warn("incoming payment subscription lost, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(h.retryDelay):
		}
	}
}

func (h *Hub) reconcile(ctx context.Context) {
	h.mu.Lock()
	now := time.Now()
	ids := make([]domain.PaymentIdentifier, 0, len(h.watched))
	for id, expiry := range h.watched {
		if expiry != nil && now.After(*expiry) {
			delete(h.watched, id)
			continue
		}
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		notifications, err := h.backend.CheckIncoming(ctx, id)
		if err != nil {
			log.WithError(err).Warnf("failed to reconcile incoming payment %s", id)
			continue
		}
		for _, notification := range notifications {
			if _, err := h.publish(ctx, notification); err != nil {
				log.WithError(err).Errorf(
					"failed to store notification for %s", notification.Identifier,
				)
			}
		}
	}
}

// publish stores the notification and, when it is new, fans it out to every
// attached listener. The repository is the single dedupe point; the fan-out
// happens iff the store accepted the notification, so no delivery path can
// suppress another.
func (h *Hub) publish(
	ctx context.Context, notification domain.IncomingNotification,
) (bool, error) {
	added, err := h.repoManager.IncomingNotifications().Add(ctx, notification)
	if err != nil {
		return false, err
	}
	if !added {
		return false, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watched, notification.Identifier)
	for _, l := range h.listeners {
		l.push(notification)
	}
	return true, nil
}

func (h *Hub) stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	listeners := h.listeners
	h.listeners = make(map[string]*listener)
	h.mu.Unlock()

	for _, l := range listeners {
		close(l.done)
	}
	h.wg.Wait()
}
