package port

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
)

// FeedListener receives the full set of unviewed orders on every change.
type FeedListener interface {
	OnOrders(orders []*domain.Order)
	OnFeedError(err error)
}

// OrderFeed delivers unviewed orders to listener until ctx is done.
type OrderFeed interface {
	SubscribeUnviewed(ctx context.Context, listener FeedListener) error
}
