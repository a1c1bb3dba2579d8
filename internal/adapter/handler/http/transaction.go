package http

import (
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	Handler
	service port.Service
}

func NewTransactionHandler(service port.Service, logger *zap.Logger) (*TransactionHandler, error) {
	return &TransactionHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type transactionResponse struct {
	ID                  string      `json:"id"`
	OrderID             string      `json:"orderId"`
	WaiterID            uint64      `json:"waiterId"`
	FoodName            string      `json:"foodName"`
	UnitPrice           jsonDecimal `json:"unitPrice"`
	Quantity            int         `json:"quantity"`
	TotalPrice          jsonDecimal `json:"totalPrice"`
	CustomerName        string      `json:"customerName"`
	CustomerPhoneNumber string      `json:"customerPhoneNumber"`
	CreatedAt           time.Time   `json:"createdAt"`
}

func (th *TransactionHandler) ListTransactions(ctx *gin.Context) {
	list, err := th.service.ListTransactions(ctx)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	result := make([]transactionResponse, 0, len(list))
	for _, t := range list {
		result = append(result, transactionResponse{
			ID:                  t.ID,
			OrderID:             string(t.OrderID),
			WaiterID:            t.WaiterID,
			FoodName:            t.FoodName,
			UnitPrice:           jsonDecimal(t.UnitPrice),
			Quantity:            t.Quantity,
			TotalPrice:          jsonDecimal(t.TotalPrice),
			CustomerName:        t.CustomerName,
			CustomerPhoneNumber: t.CustomerPhoneNumber,
			CreatedAt:           t.CreatedAt,
		})
	}

	th.handleSuccess(ctx, result)
}
