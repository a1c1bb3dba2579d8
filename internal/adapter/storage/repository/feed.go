package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/adapter/storage"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"go.uber.org/zap"
)

// ordersChannel is raised by the order_with_table trigger on every write.
const ordersChannel = "order_with_table_changed"

// OrderFeed turns Postgres notifications into full unviewed-order snapshots.
type OrderFeed struct {
	db         *storage.DB
	repo       *Repository
	retryPause time.Duration
	logger     *zap.Logger
}

func NewOrderFeed(db *storage.DB, repo *Repository, retryPause time.Duration, log *zap.Logger) *OrderFeed {
	return &OrderFeed{
		db:         db,
		repo:       repo,
		retryPause: retryPause,
		logger:     log,
	}
}

// SubscribeUnviewed blocks until ctx is done. A broken subscription is
// reported to listener and re-established after the retry pause.
func (f *OrderFeed) SubscribeUnviewed(ctx context.Context, listener port.FeedListener) error {
	for {
		err := f.listen(ctx, listener)
		if ctx.Err() != nil {
			return nil
		}
		listener.OnFeedError(err)

		f.logger.Debug("Pause before resubscribe", zap.Duration("pause", f.retryPause))
		r := time.NewTimer(f.retryPause)
		select {
		case <-r.C:
		case <-ctx.Done():
			r.Stop()
			return nil
		}
	}
}

func (f *OrderFeed) listen(ctx context.Context, listener port.FeedListener) error {
	conn, err := f.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(context.Background(), "UNLISTEN "+ordersChannel)
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+ordersChannel); err != nil {
		return fmt.Errorf("listen %s: %w", ordersChannel, err)
	}
	f.logger.Debug("Subscribed to order changes")

	if err := f.deliver(ctx, listener); err != nil {
		return err
	}
	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return fmt.Errorf("wait for order change: %w", err)
		}
		if err := f.deliver(ctx, listener); err != nil {
			return err
		}
	}
}

func (f *OrderFeed) deliver(ctx context.Context, listener port.FeedListener) error {
	orders, err := f.repo.ListUnviewedOrders(ctx)
	if err != nil {
		return fmt.Errorf("list unviewed orders: %w", err)
	}
	listener.OnOrders(orders)
	return nil
}
