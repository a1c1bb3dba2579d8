package port

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Waiter
	CreateWaiter(ctx context.Context, waiter *domain.Waiter) (*domain.Waiter, error)
	GetWaiterByLogin(ctx context.Context, login string) (*domain.Waiter, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListUnviewedOrders(ctx context.Context) ([]*domain.Order, error)
	// MarkOrdersViewed sets the viewed flag of every listed order in one
	// atomic batch.
	MarkOrdersViewed(ctx context.Context, ids ...domain.OrderID) error

	// Catalog
	CreateCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error)
	// ListCatalogEntriesByFoodName returns exact name matches in insertion order.
	ListCatalogEntriesByFoodName(ctx context.Context, foodName string) ([]*domain.CatalogEntry, error)

	// Transaction
	AppendTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
}
