package fake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/core/ports"
)

// Request tags controlling how the fake rail behaves when paying. An untagged
// request settles immediately.
const (
	// TagFail makes PayOutgoing fail with ErrUnroutablePayment.
	TagFail = "fail"
	// TagTimeout makes PayOutgoing block until the context expires, leaving no
	// trace on the rail.
	TagTimeout = "timeout"
	// TagSlow makes PayOutgoing block until the context expires but settle the
	// payment anyway, so a later check observes it as paid.
	TagSlow = "slow"
	// TagError makes PayOutgoing fail with an unclassified error.
	TagError = "error"
)

const (
	invoicePrefix = "fakeinvoice"
	offerPrefix   = "fakeoffer"
)

type Config struct {
	Unit          string
	Mpp           bool
	Bolt12        bool
	Amountless    bool
	FeePercent    float64
	ReserveFeeMin uint64
}

// Backend is a deterministic in-process payment rail. It honors the full
// backend contract, including failure and timeout behavior selectable per
// request, and is the rail the test suites run against.
type Backend struct {
	cfg Config

	mu          sync.Mutex
	outgoing    map[string]domain.PaymentResult
	incoming    map[string][]domain.IncomingNotification
	subscribers map[string]chan domain.IncomingNotification
	payAttempts map[string]int
}

func NewBackend(cfg Config) *Backend {
	if cfg.Unit == "" {
		cfg.Unit = "sat"
	}
	return &Backend{
		cfg:         cfg,
		outgoing:    make(map[string]domain.PaymentResult),
		incoming:    make(map[string][]domain.IncomingNotification),
		subscribers: make(map[string]chan domain.IncomingNotification),
		payAttempts: make(map[string]int),
	}
}

func (b *Backend) Settings() ports.BackendSettings {
	return ports.BackendSettings{
		Unit:               b.cfg.Unit,
		Mpp:                b.cfg.Mpp,
		Bolt12:             b.cfg.Bolt12,
		Amountless:         b.cfg.Amountless,
		InvoiceDescription: true,
	}
}

// Invoice builds a payable request for the given amount. The tag selects the
// rail behavior when the invoice is paid; pass an empty tag for a request
// that settles immediately.
func Invoice(amount uint64, tag string) string {
	return encodeRequest(invoicePrefix, amount, tag)
}

// Offer builds a reusable offer request. A zero amount yields an amountless
// offer.
func Offer(amount uint64, tag string) string {
	return encodeRequest(offerPrefix, amount, tag)
}

func encodeRequest(prefix string, amount uint64, tag string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%s", prefix, amount, tag)))
	if tag == "" {
		return fmt.Sprintf("%s:%d:%s", prefix, amount, hex.EncodeToString(hash[:]))
	}
	return fmt.Sprintf("%s:%d:%s:%s", prefix, amount, hex.EncodeToString(hash[:]), tag)
}

type parsedRequest struct {
	prefix string
	amount uint64
	hash   string
	tag    string
}

func parseRequest(request string) (*parsedRequest, error) {
	parts := strings.Split(request, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%w: malformed request %q", domain.ErrInvalidRequest, request)
	}
	if parts[0] != invoicePrefix && parts[0] != offerPrefix {
		return nil, fmt.Errorf("%w: unknown request prefix %q", domain.ErrInvalidRequest, parts[0])
	}
	amount, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed amount in %q", domain.ErrInvalidRequest, request)
	}
	if len(parts[2]) != 64 {
		return nil, fmt.Errorf("%w: malformed hash in %q", domain.ErrInvalidRequest, request)
	}
	parsed := &parsedRequest{prefix: parts[0], amount: amount, hash: parts[2]}
	if len(parts) == 4 {
		parsed.tag = parts[3]
	}
	return parsed, nil
}

func (b *Backend) fee(amount uint64) uint64 {
	fee := uint64(math.Ceil(float64(amount) * b.cfg.FeePercent / 100))
	if fee < b.cfg.ReserveFeeMin {
		fee = b.cfg.ReserveFeeMin
	}
	return fee
}

func (b *Backend) CreateIncomingPayment(
	ctx context.Context, unit string, opts domain.IncomingPaymentOptions,
) (*domain.CreatePaymentResult, error) {
	if unit != "" && unit != b.cfg.Unit {
		return nil, fmt.Errorf("%w: unsupported unit %s", domain.ErrUnsupportedMethod, unit)
	}

	if opts.Bolt12 != nil {
		if !b.cfg.Bolt12 {
			return nil, fmt.Errorf("%w: bolt12 not supported", domain.ErrUnsupportedMethod)
		}
		request := Offer(opts.Bolt12.Amount, "")
		parsed, _ := parseRequest(request)
		id, err := domain.NewPaymentIdentifier(domain.KindOfferId, parsed.hash)
		if err != nil {
			return nil, err
		}
		return &domain.CreatePaymentResult{Identifier: id, Request: request}, nil
	}

	// Uniqueness comes from the nonce, not the amount.
	nonce := uuid.NewString()
	hash := sha256.Sum256([]byte(fmt.Sprintf(
		"%s:%d:%s:%s", b.cfg.Unit, opts.Bolt11.Amount, opts.Bolt11.Description, nonce,
	)))
	hashHex := hex.EncodeToString(hash[:])
	request := fmt.Sprintf("%s:%d:%s", invoicePrefix, opts.Bolt11.Amount, hashHex)

	id, err := domain.NewPaymentIdentifier(domain.KindPaymentHash, hashHex)
	if err != nil {
		return nil, err
	}
	return &domain.CreatePaymentResult{
		Identifier: id,
		Request:    request,
		Expiry:     opts.Bolt11.Expiry,
	}, nil
}

func (b *Backend) QuoteOutgoingPayment(
	ctx context.Context, target domain.OutgoingPaymentTarget, unit string,
) (*domain.PaymentQuote, error) {
	if unit != "" && unit != b.cfg.Unit {
		return nil, fmt.Errorf("%w: unsupported unit %s", domain.ErrUnsupportedMethod, unit)
	}

	parsed, err := parseRequest(target.Request())
	if err != nil {
		return nil, err
	}

	kind := domain.KindPaymentHash
	if parsed.prefix == offerPrefix {
		if !b.cfg.Bolt12 {
			return nil, fmt.Errorf("%w: bolt12 not supported", domain.ErrUnsupportedMethod)
		}
		kind = domain.KindOfferId
	}
	id, err := domain.NewPaymentIdentifier(kind, parsed.hash)
	if err != nil {
		return nil, err
	}

	amount := parsed.amount
	melt := target.MeltOptions()
	if amount == 0 {
		if melt == nil || melt.Amountless == nil {
			return nil, fmt.Errorf(
				"%w: amountless request needs an explicit amount", domain.ErrInvalidAmount,
			)
		}
		if !b.cfg.Amountless {
			return nil, fmt.Errorf("%w: amountless not supported", domain.ErrUnsupportedMethod)
		}
		amount = melt.Amountless.AmountMsat / 1000
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: zero amount", domain.ErrInvalidAmount)
	}

	state := domain.StateUnpaid
	b.mu.Lock()
	if res, ok := b.outgoing[id.Key()]; ok {
		state = res.Status
	}
	b.mu.Unlock()

	return &domain.PaymentQuote{
		Identifier:  id,
		Amount:      amount,
		Fee:         b.fee(amount),
		State:       state,
		Unit:        b.cfg.Unit,
		MeltOptions: melt,
	}, nil
}

func (b *Backend) PayOutgoing(
	ctx context.Context, target domain.OutgoingPaymentTarget, maxFee, partialAmount uint64,
) (*domain.PaymentResult, error) {
	quote, err := b.QuoteOutgoingPayment(ctx, target, b.cfg.Unit)
	if err != nil {
		return nil, err
	}
	if maxFee > 0 && quote.Fee > maxFee {
		return nil, fmt.Errorf(
			"%w: fee %d exceeds maximum %d", domain.ErrFeeExceeded, quote.Fee, maxFee,
		)
	}
	amount := quote.Amount
	if partialAmount > 0 {
		if !b.cfg.Mpp {
			return nil, fmt.Errorf("%w: mpp not supported", domain.ErrUnsupportedMethod)
		}
		if partialAmount > amount {
			return nil, fmt.Errorf("%w: partial exceeds amount", domain.ErrInvalidAmount)
		}
		amount = partialAmount
	}

	b.mu.Lock()
	b.payAttempts[quote.Identifier.Key()]++
	b.mu.Unlock()

	parsed, _ := parseRequest(target.Request())
	switch parsed.tag {
	case TagFail:
		return nil, fmt.Errorf("%w: no route to destination", domain.ErrUnroutablePayment)
	case TagError:
		return nil, fmt.Errorf("rail connection reset while paying %s", quote.Identifier)
	case TagTimeout:
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentTimeout, quote.Identifier)
	case TagSlow:
		// The rail settles even though the caller gave up waiting.
		b.settleOutgoing(quote.Identifier, parsed.hash, amount)
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentTimeout, quote.Identifier)
	}

	result := b.settleOutgoing(quote.Identifier, parsed.hash, amount)
	return &result, nil
}

func (b *Backend) settleOutgoing(
	id domain.PaymentIdentifier, hash string, amount uint64,
) domain.PaymentResult {
	preimage := sha256.Sum256([]byte("preimage:" + hash))
	result := domain.PaymentResult{
		Identifier: id,
		Proof:      hex.EncodeToString(preimage[:]),
		Status:     domain.StatePaid,
		TotalSpent: amount + b.fee(amount),
		Unit:       b.cfg.Unit,
	}
	b.mu.Lock()
	b.outgoing[id.Key()] = result
	b.mu.Unlock()
	return result
}

func (b *Backend) CheckIncoming(
	ctx context.Context, id domain.PaymentIdentifier,
) ([]domain.IncomingNotification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	notifications := make([]domain.IncomingNotification, len(b.incoming[id.Key()]))
	copy(notifications, b.incoming[id.Key()])
	return notifications, nil
}

func (b *Backend) CheckOutgoing(
	ctx context.Context, id domain.PaymentIdentifier,
) (*domain.PaymentResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	res, ok := b.outgoing[id.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}
	return &res, nil
}

func (b *Backend) SubscribeIncoming(
	ctx context.Context,
) (<-chan domain.IncomingNotification, error) {
	ch := make(chan domain.IncomingNotification, 16)
	subId := uuid.NewString()
	b.mu.Lock()
	b.subscribers[subId] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if sub, ok := b.subscribers[subId]; ok {
			delete(b.subscribers, subId)
			close(sub)
		}
		b.mu.Unlock()
	}()

	return ch, nil
}

// InjectNotification settles an incoming payment on the fake rail, making it
// visible to both subscribers and CheckIncoming.
func (b *Backend) InjectNotification(notification domain.IncomingNotification) {
	if notification.Unit == "" {
		notification.Unit = b.cfg.Unit
	}
	b.mu.Lock()
	key := notification.Identifier.Key()
	b.incoming[key] = append(b.incoming[key], notification)
	subs := make([]chan domain.IncomingNotification, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- notification:
		default:
		}
	}
}

// PayAttempts returns how many times PayOutgoing reached the rail for the
// identifier.
func (b *Backend) PayAttempts(id domain.PaymentIdentifier) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.payAttempts[id.Key()]
}

// DropSubscribers simulates transport loss: every live subscription channel
// is closed without cancelling the subscriber contexts.
func (b *Backend) DropSubscribers() {
	b.mu.Lock()
	subs := b.subscribers
	b.subscribers = make(map[string]chan domain.IncomingNotification)
	b.mu.Unlock()
	for _, sub := range subs {
		close(sub)
	}
}

var _ ports.PaymentBackend = (*Backend)(nil)
