package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"go.uber.org/zap"
)

// FinalizeTransaction prices order from the catalog and appends the resulting
// transaction. Every outcome is reported to the waiter; nothing is retried.
func (s *Service) FinalizeTransaction(ctx context.Context, order domain.Order, waiterID uint64) (*domain.Transaction, error) {
	entries, err := s.repo.ListCatalogEntriesByFoodName(ctx, order.FoodName)
	if err != nil {
		s.logger.Error("Fetch food price", zap.String("food", order.FoodName), zap.Error(err))
		s.notifier.Notify(ctx, domain.ErrorNotice(msgPriceFetchFailed).To(waiterID))
		return nil, err
	}
	if len(entries) == 0 {
		s.notifier.Notify(ctx, domain.ErrorNotice(msgFoodNotFound).To(waiterID))
		return nil, domain.ErrFoodNotFound
	}

	// first by insertion order
	unit, err := entries[0].Price.Unit()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPriceMalformed):
			s.notifier.Notify(ctx, domain.ErrorNotice(fmt.Sprintf(msgPriceMalformedFmt, order.FoodName)).To(waiterID))
		default:
			s.notifier.Notify(ctx, domain.ErrorNotice(fmt.Sprintf(msgPriceMissingFmt, order.FoodName)).To(waiterID))
		}
		return nil, err
	}

	tx, err := domain.NewTransaction(order, unit, waiterID)
	if err != nil {
		s.logger.Error("Price order", zap.String("order", string(order.ID)), zap.Error(err))
		s.notifier.Notify(ctx, domain.ErrorNotice(msgTransactionFailed).To(waiterID))
		return nil, err
	}

	saved, err := s.repo.AppendTransaction(ctx, tx)
	if err != nil {
		s.logger.Error("Append transaction", zap.String("order", string(order.ID)), zap.Error(err))
		s.notifier.Notify(ctx, domain.ErrorNotice(msgTransactionFailed).To(waiterID))
		return nil, err
	}
	s.notifier.Notify(ctx, domain.InfoNotice(msgTransactionDone).To(waiterID))

	if err := s.events.PublishTransactionFinalized(ctx, saved); err != nil {
		s.logger.Warn("Publish transaction event", zap.String("transaction", saved.ID), zap.Error(err))
	}

	return saved, nil
}
