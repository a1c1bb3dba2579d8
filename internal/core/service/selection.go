package service

import (
	"context"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"go.uber.org/zap"
)

// SelectOrder hands the picked order over to the detail view and starts the
// transaction and viewed-flag tasks. The two tasks are not coordinated: either
// may fail while the other succeeds.
func (s *Service) SelectOrder(ctx context.Context, waiter *domain.Waiter, req port.SelectRequest) (*port.Selection, error) {
	if waiter == nil {
		return nil, domain.ErrBadRequest
	}

	order, ok := s.feed.Lookup(req)
	if !ok {
		s.logger.Debug("stale selection",
			zap.Int("index", req.Index),
			zap.String("order", string(req.OrderID)))
		return nil, domain.ErrStaleSelection
	}

	waiterID := waiter.ID

	return &port.Selection{
		Handoff: domain.NewDetailHandoff(waiter, order),
		Transaction: s.tasks.Submit(ctx, "finalize transaction", func(ctx context.Context) error {
			_, err := s.FinalizeTransaction(ctx, order, waiterID)
			return err
		}),
		Viewed: s.tasks.Submit(ctx, "mark order viewed", func(ctx context.Context) error {
			return s.MarkOrderViewed(ctx, order, waiterID)
		}),
	}, nil
}
