package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderRequest struct {
	FoodName            string `json:"foodName"`
	Quantity            int    `json:"quantity"`
	TableNumber         string `json:"tableNumber"`
	UserName            string `json:"userName"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`
}

type orderResponse struct {
	ID                  string    `json:"id"`
	FoodName            string    `json:"foodName"`
	Quantity            int       `json:"quantity"`
	TableNumber         string    `json:"tableNumber"`
	UserName            string    `json:"userName"`
	CustomerPhoneNumber string    `json:"customerPhoneNumber"`
	IsViewed            bool      `json:"isViewed"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateOrder takes a customer order for a table. It shows up in the pending
// feed once the store reports the change.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := orderRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.PlaceOrder(ctx, &domain.Order{
		FoodName:            req.FoodName,
		Quantity:            req.Quantity,
		TableNumber:         req.TableNumber,
		CustomerName:        req.UserName,
		CustomerPhoneNumber: req.CustomerPhoneNumber,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderResponse{
		ID:                  string(order.ID),
		FoodName:            order.FoodName,
		Quantity:            order.Quantity,
		TableNumber:         order.TableNumber,
		UserName:            order.CustomerName,
		CustomerPhoneNumber: order.CustomerPhoneNumber,
		IsViewed:            order.IsViewed,
		CreatedAt:           order.CreatedAt,
	}, http.StatusCreated)
}
