package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/adapter/config"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
	addr string
}

func NewRouter(
	conf *config.HTTP,
	logger *zap.Logger,
	tokenService port.TokenService,
	waiterHandler *WaiterHandler,
	pendingHandler *PendingHandler,
	orderHandler *OrderHandler,
	catalogHandler *CatalogHandler,
	transactionHandler *TransactionHandler,
	notificationHandler *NotificationHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	auth := authCheck(NewHandler(logger), tokenService)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		waiter := api.Group("/waiter")
		{
			waiter.POST("/register", waiterHandler.RegisterWaiter)
			waiter.POST("/login", waiterHandler.LoginWaiter)
		}

		api.POST("/orders", orderHandler.CreateOrder)

		desk := api.Group("")
		{
			desk.Use(auth)
			desk.GET("/pending", pendingHandler.ListPending)
			desk.POST("/pending/select", pendingHandler.SelectOrder)
			desk.GET("/notifications", notificationHandler.ListNotifications)
			desk.GET("/transactions", transactionHandler.ListTransactions)
			desk.POST("/food-items", catalogHandler.AddFoodItem)
		}
	}

	return &Router{Engine: router, addr: conf.HostString}, nil
}

// Serve starts the HTTP server and shuts it down when ctx is done.
func (r *Router) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
