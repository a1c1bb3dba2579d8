package http

import (
	"context"
	"net/http"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PendingHandler struct {
	Handler
	service port.Service
}

func NewPendingHandler(service port.Service, logger *zap.Logger) (*PendingHandler, error) {
	return &PendingHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type pendingOrderResponse struct {
	Index               int    `json:"index"`
	ID                  string `json:"id"`
	FoodName            string `json:"foodName"`
	Quantity            int    `json:"quantity"`
	TableNumber         string `json:"tableNumber"`
	UserName            string `json:"userName"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`
}

type pendingResponse struct {
	Version uint64                 `json:"version"`
	Orders  []pendingOrderResponse `json:"orders"`
}

func (ph *PendingHandler) ListPending(ctx *gin.Context) {
	snap := ph.service.PendingOrders()

	result := pendingResponse{
		Version: snap.Version,
		Orders:  make([]pendingOrderResponse, 0, len(snap.Orders)),
	}
	for i, o := range snap.Orders {
		result.Orders = append(result.Orders, pendingOrderResponse{
			Index:               i,
			ID:                  string(o.ID),
			FoodName:            o.FoodName,
			Quantity:            o.Quantity,
			TableNumber:         o.TableNumber,
			UserName:            o.CustomerName,
			CustomerPhoneNumber: o.CustomerPhoneNumber,
		})
	}

	ph.handleSuccess(ctx, result)
}

type selectRequest struct {
	Index   *int   `json:"index" binding:"required"`
	OrderID string `json:"orderId"`
	Version uint64 `json:"version"`
}

type selectQuery struct {
	Wait bool `form:"wait"`
}

type handoffResponse struct {
	WaiterID            uint64 `json:"waiterId"`
	WaiterName          string `json:"waiterName"`
	OrderID             string `json:"orderId"`
	FoodName            string `json:"foodName"`
	TableNumber         string `json:"tableNumber"`
	Quantity            int    `json:"quantity"`
	CustomerName        string `json:"customerName"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`
}

type taskOutcome struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type selectResponse struct {
	Handoff     handoffResponse `json:"handoff"`
	Transaction *taskOutcome    `json:"transaction,omitempty"`
	Viewed      *taskOutcome    `json:"viewed,omitempty"`
}

// SelectOrder picks one pending order. The task outcomes are only reported
// when the caller asks to wait for them with ?wait=true.
func (ph *PendingHandler) SelectOrder(ctx *gin.Context) {
	req := selectRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	query := selectQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	sel, err := ph.service.SelectOrder(ctx.Request.Context(), currentWaiter(ctx), port.SelectRequest{
		Index:   *req.Index,
		OrderID: domain.OrderID(req.OrderID),
		Version: req.Version,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	h := sel.Handoff
	resp := selectResponse{Handoff: handoffResponse{
		WaiterID:            h.WaiterID,
		WaiterName:          h.WaiterName,
		OrderID:             string(h.OrderID),
		FoodName:            h.FoodName,
		TableNumber:         h.TableNumber,
		Quantity:            h.Quantity,
		CustomerName:        h.CustomerName,
		CustomerPhoneNumber: h.CustomerPhoneNumber,
	}}

	if query.Wait {
		reqCtx := ctx.Request.Context()
		resp.Transaction = awaitTask(reqCtx, sel.Transaction)
		resp.Viewed = awaitTask(reqCtx, sel.Viewed)
	}

	ph.handleSuccessWithStatus(ctx, resp, http.StatusOK)
}

func awaitTask(ctx context.Context, ch <-chan error) *taskOutcome {
	select {
	case err := <-ch:
		if err != nil {
			return &taskOutcome{Error: err.Error()}
		}
		return &taskOutcome{OK: true}
	case <-ctx.Done():
		return &taskOutcome{Error: ctx.Err().Error()}
	}
}
