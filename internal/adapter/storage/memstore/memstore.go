// Package memstore is an in-process document store with the same semantics
// as the Postgres repository: store-assigned ids, insertion-ordered queries,
// atomic batch updates and change notification for the order feed.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	orders       []*domain.Order
	catalog      []*domain.CatalogEntry
	transactions []*domain.Transaction
	waiters      map[string]*domain.Waiter
	lastWaiterID uint64

	subMu       sync.Mutex
	subscribers map[chan struct{}]struct{}
}

func New() *Store {
	return &Store{
		waiters:     make(map[string]*domain.Waiter),
		subscribers: make(map[chan struct{}]struct{}),
	}
}

func (s *Store) CreateWaiter(ctx context.Context, waiter *domain.Waiter) (*domain.Waiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.waiters[waiter.Login]; ok {
		return nil, domain.ErrConflictingData
	}
	s.lastWaiterID++
	stored := *waiter
	stored.ID = s.lastWaiterID
	s.waiters[stored.Login] = &stored

	out := stored
	return &out, nil
}

func (s *Store) GetWaiterByLogin(ctx context.Context, login string) (*domain.Waiter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.waiters[login]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	out := *w
	return &out, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	stored := *order
	stored.ID = domain.OrderID(uuid.NewString())
	s.orders = append(s.orders, &stored)
	out := stored
	s.mu.Unlock()

	s.changed()
	return &out, nil
}

func (s *Store) ListUnviewedOrders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if o.IsViewed {
			continue
		}
		out := *o
		list = append(list, &out)
	}
	return list, nil
}

// MarkOrdersViewed fails without touching anything when one of ids is unknown.
func (s *Store) MarkOrdersViewed(ctx context.Context, ids ...domain.OrderID) error {
	if len(ids) == 0 {
		return domain.ErrNoUpdatedData
	}

	s.mu.Lock()
	batch := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(s.orders, func(o *domain.Order) bool { return o.ID == id })
		if i < 0 {
			s.mu.Unlock()
			return domain.ErrDataNotFound
		}
		batch = append(batch, s.orders[i])
	}
	for _, o := range batch {
		o.IsViewed = true
	}
	s.mu.Unlock()

	s.changed()
	return nil
}

func (s *Store) CreateCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	stored.ID = uuid.NewString()
	s.catalog = append(s.catalog, &stored)

	out := stored
	return &out, nil
}

func (s *Store) ListCatalogEntriesByFoodName(ctx context.Context, foodName string) ([]*domain.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.CatalogEntry, 0)
	for _, e := range s.catalog {
		if e.FoodName != foodName {
			continue
		}
		out := *e
		list = append(list, &out)
	}
	return list, nil
}

func (s *Store) AppendTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *tx
	stored.ID = uuid.NewString()
	s.transactions = append(s.transactions, &stored)

	out := stored
	return &out, nil
}

// ListTransactions returns newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Transaction, 0, len(s.transactions))
	for i := len(s.transactions) - 1; i >= 0; i-- {
		out := *s.transactions[i]
		list = append(list, &out)
	}
	return list, nil
}

// SubscribeUnviewed delivers the current unviewed orders, then the full set
// again after every order change, until ctx is done.
func (s *Store) SubscribeUnviewed(ctx context.Context, listener port.FeedListener) error {
	signal := make(chan struct{}, 1)

	s.subMu.Lock()
	s.subscribers[signal] = struct{}{}
	s.subMu.Unlock()

	defer func() {
		s.subMu.Lock()
		delete(s.subscribers, signal)
		s.subMu.Unlock()
	}()

	signal <- struct{}{}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-signal:
			orders, err := s.ListUnviewedOrders(ctx)
			if err != nil {
				listener.OnFeedError(err)
				continue
			}
			listener.OnOrders(orders)
		}
	}
}

func (s *Store) changed() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
