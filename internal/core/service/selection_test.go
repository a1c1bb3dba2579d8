package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/adapter/worker"
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/MikeRez0/waiterdesk/internal/core/port/mock"
	"github.com/MikeRez0/waiterdesk/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startPool(t *testing.T) *worker.Pool {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	pool, err := worker.NewPool(8, time.Second, zap.NewNop())
	require.NoError(t, err)
	pool.Start(ctx, 2)

	t.Cleanup(func() {
		cancel()
		pool.Wait()
	})
	return pool
}

func waitResult(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("task did not report")
		return nil
	}
}

func TestService_SelectOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	events := mock.NewMockEventPublisher(mockCtrl)

	s, err := service.NewService(repo, mock.NewMockTokenService(mockCtrl), notifier, events, startPool(t), zap.NewNop())
	require.NoError(t, err)

	orders := []*domain.Order{
		{ID: "o-1", FoodName: "Soup", Quantity: 1, TableNumber: "1", CustomerName: "Ann"},
		{ID: "o-2", FoodName: "Burger", Quantity: 3, TableNumber: "4", CustomerName: "Bob", CustomerPhoneNumber: "555"},
	}
	s.FeedListener().OnOrders(orders)

	repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
		Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: numberPrice(t, "10")}}, nil)
	repo.EXPECT().AppendTransaction(gomock.Any(), totalMatcher{unit: "10", total: "30"}).
		DoAndReturn(func(_ context.Context, trx *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, uint64(9), trx.WaiterID)
			return trx, nil
		})
	repo.EXPECT().MarkOrdersViewed(gomock.Any(), domain.OrderID("o-2")).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), infoNotice(9, "Transaction finalized successfully"))
	notifier.EXPECT().Notify(gomock.Any(), infoNotice(9, "Order marked as viewed"))
	events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(nil)

	waiter := &domain.Waiter{ID: 9, Name: "Nina"}
	sel, err := s.SelectOrder(context.Background(), waiter, port.SelectRequest{Index: 1, OrderID: "o-2"})
	require.NoError(t, err)

	assert.Equal(t, domain.DetailHandoff{
		WaiterID:            9,
		WaiterName:          "Nina",
		OrderID:             "o-2",
		FoodName:            "Burger",
		TableNumber:         "4",
		Quantity:            3,
		CustomerName:        "Bob",
		CustomerPhoneNumber: "555",
	}, sel.Handoff)

	assert.NoError(t, waitResult(t, sel.Transaction))
	assert.NoError(t, waitResult(t, sel.Viewed))
}

func TestService_SelectOrderTasksAreIndependent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	s, err := service.NewService(repo, mock.NewMockTokenService(mockCtrl), notifier,
		mock.NewMockEventPublisher(mockCtrl), startPool(t), zap.NewNop())
	require.NoError(t, err)

	s.FeedListener().OnOrders([]*domain.Order{{ID: "o-1", FoodName: "Ghost", Quantity: 1, CustomerName: "Ann"}})

	repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Ghost").Return(nil, nil)
	repo.EXPECT().MarkOrdersViewed(gomock.Any(), domain.OrderID("o-1")).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), errorNotice(1, "Food item not found in FoodItems collection"))
	notifier.EXPECT().Notify(gomock.Any(), infoNotice(1, "Order marked as viewed"))

	sel, err := s.SelectOrder(context.Background(), &domain.Waiter{ID: 1}, port.SelectRequest{Index: 0, Version: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, waitResult(t, sel.Transaction), domain.ErrFoodNotFound)
	assert.NoError(t, waitResult(t, sel.Viewed))
}

func TestService_SelectOrderStale(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// no repository or notifier calls are expected for a stale pick
	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	s, err := service.NewService(repo, mock.NewMockTokenService(mockCtrl), notifier,
		mock.NewMockEventPublisher(mockCtrl), startPool(t), zap.NewNop())
	require.NoError(t, err)

	// rendered at version 1, then o-1 left the feed
	s.FeedListener().OnOrders([]*domain.Order{
		{ID: "o-1", FoodName: "Soup", Quantity: 1, CustomerName: "Ann"},
		{ID: "o-2", FoodName: "Burger", Quantity: 1, CustomerName: "Bob"},
	})
	s.FeedListener().OnOrders([]*domain.Order{{ID: "o-2", FoodName: "Burger", Quantity: 1, CustomerName: "Bob"}})
	waiter := &domain.Waiter{ID: 1}

	tests := []struct {
		name string
		req  port.SelectRequest
	}{
		{"index past end", port.SelectRequest{Index: 1, Version: 2}},
		{"negative index", port.SelectRequest{Index: -1}},
		{"order gone", port.SelectRequest{Index: 0, OrderID: "o-1"}},
		{"index from rebuilt snapshot", port.SelectRequest{Index: 0, Version: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := s.SelectOrder(context.Background(), waiter, tt.req)
			assert.Equal(t, domain.ErrStaleSelection, err)
			assert.Nil(t, sel)
		})
	}

	_, err = s.SelectOrder(context.Background(), nil, port.SelectRequest{Index: 0})
	assert.Equal(t, domain.ErrBadRequest, err)
}
