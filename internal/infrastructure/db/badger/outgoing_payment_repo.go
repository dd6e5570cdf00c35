package badgerdb

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const (
	outgoingPaymentDir = "outgoing"
)

type outgoingPaymentRepository struct {
	store *badgerhold.Store
}

func NewOutgoingPaymentRepository(
	baseDir string, logger badger.Logger,
) (domain.OutgoingPaymentRepository, error) {
	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, outgoingPaymentDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open outgoing payment store: %s", err)
	}
	return &outgoingPaymentRepository{store}, nil
}

func (r *outgoingPaymentRepository) Get(
	ctx context.Context, id domain.PaymentIdentifier,
) (*domain.PaymentResult, error) {
	var row outgoingPaymentRow
	err := r.store.Get(id.Key(), &row)
	if err == badgerhold.ErrNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outgoing payment: %w", err)
	}

	result, err := row.toResult()
	if err != nil {
		return nil, fmt.Errorf("failed to convert row to payment result: %w", err)
	}
	return &result, nil
}

func (r *outgoingPaymentRepository) Upsert(
	ctx context.Context, result domain.PaymentResult,
) error {
	return r.store.Upsert(result.Identifier.Key(), toOutgoingPaymentRow(result))
}

func (r *outgoingPaymentRepository) GetByStates(
	ctx context.Context, states ...domain.QuoteState,
) ([]domain.PaymentResult, error) {
	wanted := make([]interface{}, 0, len(states))
	for _, state := range states {
		wanted = append(wanted, state.String())
	}

	var rows []outgoingPaymentRow
	if err := r.store.Find(
		&rows, badgerhold.Where("Status").In(wanted...),
	); err != nil {
		return nil, fmt.Errorf("failed to get outgoing payments by state: %w", err)
	}

	results := make([]domain.PaymentResult, 0, len(rows))
	for _, row := range rows {
		result, err := row.toResult()
		if err != nil {
			return nil, fmt.Errorf("failed to convert row to payment result: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *outgoingPaymentRepository) Close() {
	// nolint:all
	r.store.Close()
}

type outgoingPaymentRow struct {
	Key        string `badgerhold:"key"`
	Kind       int
	Value      string
	Proof      string
	Status     string
	TotalSpent uint64
	Unit       string
}

func toOutgoingPaymentRow(result domain.PaymentResult) outgoingPaymentRow {
	return outgoingPaymentRow{
		Key:        result.Identifier.Key(),
		Kind:       int(result.Identifier.Kind),
		Value:      result.Identifier.Value,
		Proof:      result.Proof,
		Status:     result.Status.String(),
		TotalSpent: result.TotalSpent,
		Unit:       result.Unit,
	}
}

func (r *outgoingPaymentRow) toResult() (domain.PaymentResult, error) {
	status, err := domain.ParseQuoteState(r.Status)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	return domain.PaymentResult{
		Identifier: domain.PaymentIdentifier{
			Kind:  domain.IdentifierKind(r.Kind),
			Value: r.Value,
		},
		Proof:      r.Proof,
		Status:     status,
		TotalSpent: r.TotalSpent,
		Unit:       r.Unit,
	}, nil
}
