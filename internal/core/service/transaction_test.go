package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port/mock"
	"github.com/MikeRez0/waiterdesk/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// totalMatcher checks the priced transaction handed to the repository.
type totalMatcher struct {
	unit  string
	total string
}

func (m totalMatcher) Matches(x interface{}) bool {
	trx, ok := x.(*domain.Transaction)
	return ok && trx.UnitPrice.String() == m.unit && trx.TotalPrice.String() == m.total
}

func (m totalMatcher) String() string {
	return fmt.Sprintf("transaction priced %s, total %s", m.unit, m.total)
}

func numberPrice(t *testing.T, s string) domain.Price {
	t.Helper()
	d, err := decimal.Parse(s)
	require.NoError(t, err)
	return domain.NumberPrice(d)
}

func TestService_FinalizeTransaction(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger := zap.NewNop()

	type prepare func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher)

	saved := func(_ context.Context, trx *domain.Transaction) (*domain.Transaction, error) {
		out := *trx
		out.ID = "t-1"
		return &out, nil
	}

	tests := []struct {
		name     string
		order    domain.Order
		mock     prepare
		expError error
		expTotal string
	}{
		{
			name:  "Number price",
			order: domain.Order{ID: "o-1", FoodName: "Burger", Quantity: 3},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: numberPrice(t, "10")}}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), totalMatcher{unit: "10", total: "30"}).DoAndReturn(saved)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Transaction finalized successfully"))
				events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(nil)
			},
			expTotal: "30",
		},
		{
			name:  "Numeric string price",
			order: domain.Order{ID: "o-2", FoodName: "Pasta", Quantity: 2},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Pasta").
					Return([]*domain.CatalogEntry{{FoodName: "Pasta", Price: domain.TextPrice("12.50")}}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), totalMatcher{unit: "12.50", total: "25.00"}).DoAndReturn(saved)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Transaction finalized successfully"))
				events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(nil)
			},
			expTotal: "25.00",
		},
		{
			name:  "Exact cents",
			order: domain.Order{ID: "o-3", FoodName: "Mint", Quantity: 3},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Mint").
					Return([]*domain.CatalogEntry{{FoodName: "Mint", Price: domain.TextPrice("0.10")}}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), totalMatcher{unit: "0.10", total: "0.30"}).DoAndReturn(saved)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Transaction finalized successfully"))
				events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(nil)
			},
			expTotal: "0.30",
		},
		{
			name:  "First of several entries",
			order: domain.Order{ID: "o-4", FoodName: "Tea", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Tea").
					Return([]*domain.CatalogEntry{
						{FoodName: "Tea", Price: numberPrice(t, "2")},
						{FoodName: "Tea", Price: numberPrice(t, "99")},
					}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), totalMatcher{unit: "2", total: "2"}).DoAndReturn(saved)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Transaction finalized successfully"))
				events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(nil)
			},
			expTotal: "2",
		},
		{
			name:  "Event publish fails",
			order: domain.Order{ID: "o-5", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: numberPrice(t, "10")}}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(saved)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Transaction finalized successfully"))
				events.EXPECT().PublishTransactionFinalized(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			expTotal: "10",
		},
		{
			name:  "Malformed string price",
			order: domain.Order{ID: "o-6", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: domain.TextPrice("N/A")}}, nil)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Invalid food price for Burger"))
			},
			expError: domain.ErrPriceMalformed,
		},
		{
			name:  "Number beyond decimal range",
			order: domain.Order{ID: "o-12", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: domain.ParsePrice([]byte("123456789012345678901234"))}}, nil)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Invalid food price for Burger"))
			},
			expError: domain.ErrPriceMalformed,
		},
		{
			name:  "Absent price",
			order: domain.Order{ID: "o-7", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger"}}, nil)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Invalid or missing food price for Burger"))
			},
			expError: domain.ErrPriceMissing,
		},
		{
			name:  "Unsupported price type",
			order: domain.Order{ID: "o-8", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: domain.ParsePrice([]byte("true"))}}, nil)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Invalid or missing food price for Burger"))
			},
			expError: domain.ErrPriceMissing,
		},
		{
			name:  "Food not in catalog",
			order: domain.Order{ID: "o-9", FoodName: "Ghost", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Ghost").Return(nil, nil)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Food item not found in FoodItems collection"))
			},
			expError: domain.ErrFoodNotFound,
		},
		{
			name:  "Catalog query fails",
			order: domain.Order{ID: "o-10", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").Return(nil, domain.ErrInternal)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Error fetching food price"))
			},
			expError: domain.ErrInternal,
		},
		{
			name:  "Append fails",
			order: domain.Order{ID: "o-11", FoodName: "Burger", Quantity: 1},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, events *mock.MockEventPublisher) {
				repo.EXPECT().ListCatalogEntriesByFoodName(gomock.Any(), "Burger").
					Return([]*domain.CatalogEntry{{FoodName: "Burger", Price: numberPrice(t, "10")}}, nil)
				repo.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInternal)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Error finalizing transaction"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			events := mock.NewMockEventPublisher(mockCtrl)
			test.mock(repo, notifier, events)

			s, err := service.NewService(repo, mock.NewMockTokenService(mockCtrl), notifier, events, nil, logger)
			require.NoError(t, err)

			trx, err := s.FinalizeTransaction(context.Background(), test.order, 7)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, trx)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "t-1", trx.ID)
			assert.Equal(t, test.order.ID, trx.OrderID)
			assert.Equal(t, uint64(7), trx.WaiterID)
			assert.Equal(t, test.expTotal, trx.TotalPrice.String())
		})
	}
}

func TestService_MarkOrderViewed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger := zap.NewNop()

	tests := []struct {
		name     string
		order    domain.Order
		mock     prepareMocks
		expError error
	}{
		{
			name:  "Marked",
			order: domain.Order{ID: "o-1"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				repo.EXPECT().MarkOrdersViewed(gomock.Any(), domain.OrderID("o-1")).Return(nil)
				notifier.EXPECT().Notify(gomock.Any(), infoNotice(7, "Order marked as viewed"))
			},
		},
		{
			name:  "Missing id",
			order: domain.Order{FoodName: "Burger"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Invalid order ID"))
			},
			expError: domain.ErrInvalidOrderID,
		},
		{
			name:  "Write fails",
			order: domain.Order{ID: "o-2"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				repo.EXPECT().MarkOrdersViewed(gomock.Any(), domain.OrderID("o-2")).Return(domain.ErrDataNotFound)
				notifier.EXPECT().Notify(gomock.Any(), errorNotice(7, "Error marking order as viewed"))
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewService(repo, mock.NewMockTokenService(mockCtrl), notifier, mock.NewMockEventPublisher(mockCtrl), nil, logger)
			require.NoError(t, err)

			err = s.MarkOrderViewed(context.Background(), test.order, 7)
			assert.Equal(t, test.expError, err)
		})
	}
}
