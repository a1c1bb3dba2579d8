package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/waiterdesk/internal/adapter/auth"
	"github.com/MikeRez0/waiterdesk/internal/adapter/cache"
	"github.com/MikeRez0/waiterdesk/internal/adapter/config"
	"github.com/MikeRez0/waiterdesk/internal/adapter/events"
	"github.com/MikeRez0/waiterdesk/internal/adapter/handler/http"
	"github.com/MikeRez0/waiterdesk/internal/adapter/logger"
	"github.com/MikeRez0/waiterdesk/internal/adapter/notify"
	"github.com/MikeRez0/waiterdesk/internal/adapter/storage"
	"github.com/MikeRez0/waiterdesk/internal/adapter/storage/memstore"
	"github.com/MikeRez0/waiterdesk/internal/adapter/storage/repository"
	"github.com/MikeRez0/waiterdesk/internal/adapter/worker"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/MikeRez0/waiterdesk/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, feed, closeStore, err := openStore(ctx, conf, log)
	if err != nil {
		log.Error("store error", zap.Error(err))
		return
	}
	defer closeStore()

	if conf.Cache.RedisAddress != "" {
		cached, err := cache.NewCatalogCache(ctx, repo, conf.Cache.RedisAddress, conf.Cache.TTL, log.Named("Cache"))
		if err != nil {
			log.Error("catalog cache creating error", zap.Error(err))
			return
		}
		defer cached.Close()
		repo = cached
	}

	var forward []port.Notifier
	if conf.Broker.AMQPURL != "" {
		broadcaster, err := notify.NewBroadcaster(conf.Broker.AMQPURL, log.Named("Broadcast"))
		if err != nil {
			log.Error("notice broadcaster creating error", zap.Error(err))
			return
		}
		defer broadcaster.Close()
		forward = append(forward, broadcaster)
	}
	hub := notify.NewHub(conf.App.NoticeBuffer, log.Named("Notice"), forward...)

	var publisher port.EventPublisher = events.Noop{}
	if len(conf.Broker.KafkaBrokers) > 0 {
		kafka, err := events.NewKafkaPublisher(conf.Broker.KafkaBrokers, conf.Broker.KafkaTopic, log.Named("Events"))
		if err != nil {
			log.Error("event publisher creating error", zap.Error(err))
			return
		}
		defer kafka.Close()
		publisher = kafka
	}

	tokenService, err := auth.New(conf.App.TokenLifetime)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	pool, err := worker.NewPool(conf.Tasks.QueueSize, conf.Tasks.Timeout, log.Named("Tasks"))
	if err != nil {
		log.Error("task pool creating error", zap.Error(err))
		return
	}
	pool.Start(ctx, conf.Tasks.Workers)
	defer pool.Wait()

	svc, err := service.NewService(repo, tokenService, hub, publisher, pool, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	go func() {
		if err := svc.RunFeed(ctx, feed); err != nil {
			log.Error("order feed stopped", zap.Error(err))
		}
	}()

	waiterHandler, err := http.NewWaiterHandler(svc, log.Named("Waiter handler"))
	if err != nil {
		log.Error("waiter handler creating error", zap.Error(err))
		return
	}
	pendingHandler, err := http.NewPendingHandler(svc, log.Named("Pending handler"))
	if err != nil {
		log.Error("pending handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	catalogHandler, err := http.NewCatalogHandler(svc, log.Named("Catalog handler"))
	if err != nil {
		log.Error("catalog handler creating error", zap.Error(err))
		return
	}
	transactionHandler, err := http.NewTransactionHandler(svc, log.Named("Transaction handler"))
	if err != nil {
		log.Error("transaction handler creating error", zap.Error(err))
		return
	}
	notificationHandler, err := http.NewNotificationHandler(hub, log.Named("Notification handler"))
	if err != nil {
		log.Error("notification handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, log.Named("Router"), tokenService,
		waiterHandler, pendingHandler, orderHandler, catalogHandler,
		transactionHandler, notificationHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("waiter desk started", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(ctx)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		stop()
		return
	}
	log.Info("waiter desk stopped")
}

// openStore picks Postgres when a DSN is configured and the in-memory store
// otherwise.
func openStore(ctx context.Context, conf *config.Config, log *zap.Logger) (
	port.Repository, port.OrderFeed, func(), error) {
	if conf.Database.DSN == "" {
		log.Warn("no database configured, using in-memory store")
		store := memstore.New()
		return store, store, func() {}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf.Database, log.Named("DB"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database error: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("repository creating error: %w", err)
	}
	feed := repository.NewOrderFeed(db, repo, conf.Feed.RetryPause, log.Named("Feed"))

	return repo, feed, db.Close, nil
}
