package port

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
)

//go:generate mockgen -source=notify.go -destination=mock/notify.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
}

type NoticeReader interface {
	// NoticesAfter returns notices newer than seq that waiterID may see.
	NoticesAfter(seq uint64, waiterID uint64) []domain.Notice
}

type EventPublisher interface {
	PublishTransactionFinalized(ctx context.Context, tx *domain.Transaction) error
}
