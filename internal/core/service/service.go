package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/MikeRez0/waiterdesk/internal/core/utils"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	notifier     port.Notifier
	events       port.EventPublisher
	tasks        port.TaskRunner
	feed         *Feed
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	notifier port.Notifier, events port.EventPublisher,
	tasks port.TaskRunner, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		notifier:     notifier,
		events:       events,
		tasks:        tasks,
		feed:         NewFeed(notifier, logger.Named("Feed")),
		logger:       logger,
	}, nil
}

// RunFeed keeps the pending snapshot in sync with source until ctx is done.
func (s *Service) RunFeed(ctx context.Context, source port.OrderFeed) error {
	return source.SubscribeUnviewed(ctx, s.feed)
}

// FeedListener exposes the snapshot holder to feed adapters.
func (s *Service) FeedListener() port.FeedListener {
	return s.feed
}

func (s *Service) PendingOrders() port.FeedSnapshot {
	return s.feed.Snapshot()
}

func (s *Service) RegisterWaiter(ctx context.Context, waiter *domain.Waiter) (*domain.Waiter, error) {
	exWaiter, err := s.repo.GetWaiterByLogin(ctx, waiter.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get waiter", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exWaiter != nil {
		return nil, domain.ErrConflictingData
	}

	newWaiter, err := s.repo.CreateWaiter(ctx, waiter)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create waiter", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newWaiter, nil
}

func (s *Service) LoginWaiter(ctx context.Context, login string, password string) (string, error) {
	waiter, err := s.repo.GetWaiterByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, waiter.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(waiter)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.ID = ""
	order.IsViewed = false
	order.CreatedAt = time.Now()

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}
	return newOrder, nil
}

func (s *Service) AddCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	if entry.FoodName == "" {
		return nil, domain.ErrBadRequest
	}
	entry.CreatedAt = time.Now()

	newEntry, err := s.repo.CreateCatalogEntry(ctx, entry)
	if err != nil {
		s.logger.Error("Create catalog entry", zap.Error(err))
		return nil, err
	}
	return newEntry, nil
}

func (s *Service) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	list, err := s.repo.ListTransactions(ctx)
	if err != nil {
		s.logger.Error("List transactions", zap.Error(err))
		return nil, err
	}
	return list, nil
}
