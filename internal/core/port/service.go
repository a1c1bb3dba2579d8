package port

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
)

type FeedSnapshot struct {
	Version uint64
	Orders  []domain.Order
}

// SelectRequest identifies the order a waiter picked. Version is the
// snapshot version the client rendered; it must match when OrderID is empty.
type SelectRequest struct {
	Index   int
	OrderID domain.OrderID
	Version uint64
}

// Selection is the result of picking an order. Transaction and Viewed report
// the two follow-up tasks; nothing waits for them.
type Selection struct {
	Handoff     domain.DetailHandoff
	Transaction <-chan error
	Viewed      <-chan error
}

type Service interface {
	RegisterWaiter(ctx context.Context, waiter *domain.Waiter) (*domain.Waiter, error)
	LoginWaiter(ctx context.Context, login string, password string) (string, error)

	PendingOrders() FeedSnapshot
	SelectOrder(ctx context.Context, waiter *domain.Waiter, req SelectRequest) (*Selection, error)

	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	AddCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error)
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
}
