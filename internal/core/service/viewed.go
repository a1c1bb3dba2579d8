package service

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"go.uber.org/zap"
)

// MarkOrderViewed flips the viewed flag of order in a single batch write and
// reports the outcome to waiterID.
func (s *Service) MarkOrderViewed(ctx context.Context, order domain.Order, waiterID uint64) error {
	if order.ID == "" {
		s.notifier.Notify(ctx, domain.ErrorNotice(msgInvalidOrderID).To(waiterID))
		return domain.ErrInvalidOrderID
	}

	err := s.repo.MarkOrdersViewed(ctx, order.ID)
	if err != nil {
		s.logger.Error("Mark order viewed", zap.String("order", string(order.ID)), zap.Error(err))
		s.notifier.Notify(ctx, domain.ErrorNotice(msgOrderViewedFailed).To(waiterID))
		return err
	}

	s.notifier.Notify(ctx, domain.InfoNotice(msgOrderViewed).To(waiterID))
	return nil
}
