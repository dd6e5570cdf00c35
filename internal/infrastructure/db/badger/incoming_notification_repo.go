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
	incomingNotificationDir = "incoming"
)

type incomingNotificationRepository struct {
	store *badgerhold.Store
}

func NewIncomingNotificationRepository(
	baseDir string, logger badger.Logger,
) (domain.IncomingNotificationRepository, error) {
	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, incomingNotificationDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open incoming notification store: %s", err)
	}
	return &incomingNotificationRepository{store}, nil
}

// Add stores a notification keyed on (identifier, payment id); a duplicate is
// reported as not added, without error.
func (r *incomingNotificationRepository) Add(
	ctx context.Context, notification domain.IncomingNotification,
) (bool, error) {
	row := toIncomingNotificationRow(notification)
	err := r.store.Insert(row.Key, row)
	if err == badgerhold.ErrKeyExists {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to store incoming notification: %w", err)
	}
	return true, nil
}

func (r *incomingNotificationRepository) GetByIdentifier(
	ctx context.Context, id domain.PaymentIdentifier,
) ([]domain.IncomingNotification, error) {
	var rows []incomingNotificationRow
	if err := r.store.Find(
		&rows, badgerhold.Where("IdentifierKey").Eq(id.Key()),
	); err != nil {
		return nil, fmt.Errorf("failed to get incoming notifications: %w", err)
	}

	notifications := make([]domain.IncomingNotification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toNotification())
	}
	return notifications, nil
}

func (r *incomingNotificationRepository) Close() {
	// nolint:all
	r.store.Close()
}

type incomingNotificationRow struct {
	Key           string `badgerhold:"key"`
	IdentifierKey string
	Kind          int
	Value         string
	Amount        uint64
	Unit          string
	PaymentId     string
}

func toIncomingNotificationRow(n domain.IncomingNotification) incomingNotificationRow {
	idKey := n.Identifier.Key()
	return incomingNotificationRow{
		Key:           fmt.Sprintf("%s/%s", idKey, n.PaymentId),
		IdentifierKey: idKey,
		Kind:          int(n.Identifier.Kind),
		Value:         n.Identifier.Value,
		Amount:        n.Amount,
		Unit:          n.Unit,
		PaymentId:     n.PaymentId,
	}
}

func (r *incomingNotificationRow) toNotification() domain.IncomingNotification {
	return domain.IncomingNotification{
		Identifier: domain.PaymentIdentifier{
			Kind:  domain.IdentifierKind(r.Kind),
			Value: r.Value,
		},
		Amount:    r.Amount,
		Unit:      r.Unit,
		PaymentId: r.PaymentId,
	}
}
