package db

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mintgate/payprocd/internal/core/domain"
	"github.com/mintgate/payprocd/internal/core/ports"
	badgerdb "github.com/mintgate/payprocd/internal/infrastructure/db/badger"
)

var (
	allowedTypes = strings.Join([]string{"badger"}, ",")
)

type ServiceConfig struct {
	DbType   string
	DbConfig []any
}

type service struct {
	outgoingPaymentRepo      domain.OutgoingPaymentRepository
	incomingNotificationRepo domain.IncomingNotificationRepository
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	var (
		outgoingPaymentRepo      domain.OutgoingPaymentRepository
		incomingNotificationRepo domain.IncomingNotificationRepository
		err                      error
	)

	switch config.DbType {
	case "badger":
		if len(config.DbConfig) != 2 {
			return nil, fmt.Errorf("badger db config must have 2 elements, got %d", len(config.DbConfig))
		}
		baseDir, ok := config.DbConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid base directory")
		}
		var logger badger.Logger
		if config.DbConfig[1] != nil {
			logger, ok = config.DbConfig[1].(badger.Logger)
			if !ok {
				return nil, fmt.Errorf("invalid logger")
			}
		}
		outgoingPaymentRepo, err = badgerdb.NewOutgoingPaymentRepository(baseDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open outgoing payment db: %s", err)
		}
		incomingNotificationRepo, err = badgerdb.NewIncomingNotificationRepository(baseDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open incoming notification db: %s", err)
		}

	default:
		return nil, fmt.Errorf("unsupported db type %s, please select one of %s", config.DbType, allowedTypes)
	}

	return &service{
		outgoingPaymentRepo:      outgoingPaymentRepo,
		incomingNotificationRepo: incomingNotificationRepo,
	}, nil
}

func (s *service) OutgoingPayments() domain.OutgoingPaymentRepository {
	return s.outgoingPaymentRepo
}

func (s *service) IncomingNotifications() domain.IncomingNotificationRepository {
	return s.incomingNotificationRepo
}

func (s *service) Close() {
	s.outgoingPaymentRepo.Close()
	s.incomingNotificationRepo.Close()
}
