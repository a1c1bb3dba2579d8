package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"go.uber.org/zap"
)

// Feed holds the latest snapshot of unviewed orders. A snapshot is replaced
// as a whole on every delivery and never modified afterwards.
type Feed struct {
	mu       sync.RWMutex
	version  uint64
	orders   []domain.Order
	notifier port.Notifier
	logger   *zap.Logger
}

func NewFeed(notifier port.Notifier, logger *zap.Logger) *Feed {
	return &Feed{
		orders:   []domain.Order{},
		notifier: notifier,
		logger:   logger,
	}
}

func (f *Feed) OnOrders(orders []*domain.Order) {
	rebuilt := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		rebuilt = append(rebuilt, *o)
	}

	f.mu.Lock()
	f.orders = rebuilt
	f.version++
	version := f.version
	f.mu.Unlock()

	f.logger.Debug("feed rebuilt",
		zap.Uint64("version", version),
		zap.Int("orders", len(rebuilt)))
}

// OnFeedError keeps the current snapshot and tells the waiter.
func (f *Feed) OnFeedError(err error) {
	f.logger.Error("feed delivery", zap.Error(err))
	f.notifier.Notify(context.Background(), domain.ErrorNotice(msgFeedError))
}

func (f *Feed) Snapshot() port.FeedSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return port.FeedSnapshot{
		Version: f.version,
		Orders:  slices.Clone(f.orders),
	}
}

// Lookup finds the order a waiter picked. When the client sent the id it
// rendered, the order must still be in the snapshot; the index is only a hint.
// Without an id the index is trusted only against the same snapshot version.
func (f *Feed) Lookup(req port.SelectRequest) (domain.Order, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	inRange := req.Index >= 0 && req.Index < len(f.orders)

	if req.OrderID == "" {
		if !inRange || req.Version != f.version {
			return domain.Order{}, false
		}
		return f.orders[req.Index], true
	}

	if inRange && f.orders[req.Index].ID == req.OrderID {
		return f.orders[req.Index], true
	}
	for _, o := range f.orders {
		if o.ID == req.OrderID {
			return o, true
		}
	}
	return domain.Order{}, false
}
