package ports

import "github.com/mintgate/payprocd/internal/core/domain"

type RepoManager interface {
	OutgoingPayments() domain.OutgoingPaymentRepository
	IncomingNotifications() domain.IncomingNotificationRepository
	Close()
}
